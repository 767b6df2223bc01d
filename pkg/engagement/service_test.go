package engagement

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/ent/enttest"
	"github.com/jordanlanch/outreachhq/pkg/domain"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createTestProspect(t *testing.T, client *ent.Client, name string) *ent.Prospect {
	p, err := client.Prospect.Create().
		SetCompanyName(name).
		SetIndustry("Technology").
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func TestHistory(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	p := createTestProspect(t, client, "Acme Tech")

	older, err := client.Engagement.Create().
		SetProspectID(p.ID).
		SetKind("email").
		SetContent("{}").
		SetSentAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	newer, err := client.Engagement.Create().
		SetProspectID(p.ID).
		SetKind("call").
		SetContent("{}").
		SetSentAt(time.Now().Add(-1 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	t.Run("Newest first", func(t *testing.T) {
		items, err := service.History(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, newer.ID, items[0].ID)
		assert.Equal(t, older.ID, items[1].ID)
	})

	t.Run("Unknown prospect", func(t *testing.T) {
		_, err := service.History(ctx, 99999)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Empty history is fine", func(t *testing.T) {
		other := createTestProspect(t, client, "Quiet Corp")
		items, err := service.History(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestTrackEvent(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	p := createTestProspect(t, client, "Acme Tech")

	e, err := client.Engagement.Create().
		SetProspectID(p.ID).
		SetKind("email").
		SetContent("{}").
		Save(ctx)
	require.NoError(t, err)

	t.Run("Open adds 1 and sets the flag", func(t *testing.T) {
		updated, err := service.TrackEvent(ctx, e.ID, EventOpen)
		require.NoError(t, err)
		assert.True(t, updated.Opened)
		assert.InDelta(t, 1.0, updated.EngagementScore, 0.001)
	})

	t.Run("Click adds 2", func(t *testing.T) {
		updated, err := service.TrackEvent(ctx, e.ID, EventClick)
		require.NoError(t, err)
		assert.True(t, updated.Clicked)
		assert.InDelta(t, 3.0, updated.EngagementScore, 0.001)
	})

	t.Run("Reply adds 5 and marks responded", func(t *testing.T) {
		updated, err := service.TrackEvent(ctx, e.ID, EventReply)
		require.NoError(t, err)
		assert.True(t, updated.Responded)
		assert.InDelta(t, 8.0, updated.EngagementScore, 0.001)
	})

	t.Run("Events are repeatable and additive", func(t *testing.T) {
		updated, err := service.TrackEvent(ctx, e.ID, EventOpen)
		require.NoError(t, err)
		assert.InDelta(t, 9.0, updated.EngagementScore, 0.001)
	})

	t.Run("Unknown event", func(t *testing.T) {
		_, err := service.TrackEvent(ctx, e.ID, "forward")
		require.Error(t, err)
		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("Unknown engagement", func(t *testing.T) {
		_, err := service.TrackEvent(ctx, 99999, EventOpen)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}
