package jobs

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/outreachhq/ent/enttest"
	"github.com/jordanlanch/outreachhq/pkg/metrics"
)

func TestRefreshStats(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()

	m := metrics.New()
	cm := NewCronManager(client, m, nil)
	ctx := context.Background()

	p, err := client.Prospect.Create().
		SetCompanyName("Acme Tech").
		SetIndustry("Technology").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Engagement.Create().
		SetProspectID(p.ID).
		SetKind("email").
		SetContent("hello").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, cm.RefreshStats(ctx))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProspectsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EngagementsTotal))

	require.NoError(t, cm.SetupJobs())
	cm.Start()
	cm.Stop()
}
