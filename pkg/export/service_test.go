package export

import (
	"bytes"
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jordanlanch/outreachhq/ent/enttest"
)

func TestWriteProspectsExcel(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()

	service := NewService(client)
	ctx := context.Background()

	p, err := client.Prospect.Create().
		SetCompanyName("Acme Tech").
		SetIndustry("Technology").
		SetEmail("jordan@acmetech.com").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Engagement.Create().
		SetProspectID(p.ID).
		SetKind("email").
		SetContent("hello").
		SetEngagementScore(3.0).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Engagement.Create().
		SetProspectID(p.ID).
		SetKind("call").
		SetContent("{}").
		SetEngagementScore(2.0).
		Save(ctx)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, service.WriteProspectsExcel(ctx, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Prospects")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Company Name", rows[0][1])
	assert.Equal(t, "Acme Tech", rows[1][1])
	assert.Equal(t, "2", rows[1][7])
	assert.Equal(t, "5", rows[1][8])
}
