package calls

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/ent/enttest"
	"github.com/jordanlanch/outreachhq/pkg/domain"
	"github.com/jordanlanch/outreachhq/pkg/personalization"
)

// mockCallProvider records initiated calls and can be made to fail.
type mockCallProvider struct {
	calls []string
	err   error
}

func (m *mockCallProvider) InitiateCall(_ context.Context, _, to string) (*CallResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.calls = append(m.calls, to)
	return &CallResult{CallID: "CA123", Status: "initiated"}, nil
}

// stubScriptGenerator returns a fixed script.
type stubScriptGenerator struct {
	script *personalization.CallScript
}

func (s *stubScriptGenerator) GenerateCallScript(_ context.Context, _ *ent.Prospect, _ []*ent.Engagement) *personalization.CallScript {
	return s.script
}

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func testScript() *personalization.CallScript {
	return &personalization.CallScript{
		Title:  "Call Script for Acme Tech",
		Script: "Hello, may I speak with Jordan? [[PAUSE]]",
	}
}

func createTestProspect(t *testing.T, client *ent.Client, phoneNumber string) *ent.Prospect {
	p, err := client.Prospect.Create().
		SetCompanyName("Acme Tech").
		SetIndustry("Technology").
		SetContactPerson("Jordan Smith").
		SetPhone(phoneNumber).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func newTestService(client *ent.Client, provider CallProvider) *Service {
	return NewService(client, &stubScriptGenerator{script: testScript()}, provider, "+12125550100", nil)
}

func TestPlaceCall(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	provider := &mockCallProvider{}
	service := newTestService(client, provider)
	ctx := context.Background()

	p := createTestProspect(t, client, "(212) 555-0123")

	var placedHookCalls int
	service.OnPlaced = func() { placedHookCalls++ }

	result, err := service.PlaceCall(ctx, p.ID)
	require.NoError(t, err)

	t.Run("Dials the normalized number", func(t *testing.T) {
		require.Len(t, provider.calls, 1)
		assert.Equal(t, "+12125550123", provider.calls[0])
		assert.Equal(t, "CA123", result.CallID)
	})

	t.Run("Records the engagement with base score", func(t *testing.T) {
		e := result.Engagement
		assert.Equal(t, "call", e.Kind)
		assert.True(t, e.Opened)
		assert.InDelta(t, 2.0, e.EngagementScore, 0.001)
		assert.Equal(t, "Call script: Call Script for Acme Tech", e.Notes)

		var stored personalization.CallScript
		require.NoError(t, json.Unmarshal([]byte(e.Content), &stored))
		assert.Contains(t, stored.Script, "[[PAUSE]]")
	})

	t.Run("Fires the hook", func(t *testing.T) {
		assert.Equal(t, 1, placedHookCalls)
	})
}

func TestPlaceCall_MissingPhone(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	provider := &mockCallProvider{}
	service := newTestService(client, provider)

	p := createTestProspect(t, client, "")

	_, err := service.PlaceCall(context.Background(), p.ID)
	require.Error(t, err)
	assert.True(t, domain.IsMissingContactInfo(err))
	assert.Empty(t, provider.calls)
}

func TestPlaceCall_InvalidPhone(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, &mockCallProvider{})

	p := createTestProspect(t, client, "12345")

	_, err := service.PlaceCall(context.Background(), p.ID)
	require.Error(t, err)
	assert.True(t, domain.IsBadRequest(err))
}

func TestPlaceCall_ProviderFailureLeavesNoEngagement(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	provider := &mockCallProvider{err: errors.New("trunk unavailable")}
	service := newTestService(client, provider)
	ctx := context.Background()

	p := createTestProspect(t, client, "(212) 555-0123")

	_, err := service.PlaceCall(ctx, p.ID)
	require.Error(t, err)
	assert.True(t, domain.IsDeliveryFailure(err))

	count, err := client.Engagement.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpdateOutcome(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, &mockCallProvider{})
	ctx := context.Background()

	p := createTestProspect(t, client, "(212) 555-0123")

	placeCall := func(t *testing.T) int {
		placed, err := service.PlaceCall(ctx, p.ID)
		require.NoError(t, err)
		return placed.Engagement.ID
	}

	t.Run("Connected adds 3", func(t *testing.T) {
		updated, err := service.UpdateOutcome(ctx, placeCall(t), Outcome{Connected: true, Notes: "spoke briefly"})
		require.NoError(t, err)
		assert.InDelta(t, 5.0, updated.EngagementScore, 0.001)
		assert.False(t, updated.Responded)
		assert.Contains(t, updated.Notes, "\nOutcome: spoke briefly")
	})

	t.Run("Interested adds 5 and marks responded", func(t *testing.T) {
		updated, err := service.UpdateOutcome(ctx, placeCall(t), Outcome{Interested: true})
		require.NoError(t, err)
		assert.InDelta(t, 7.0, updated.EngagementScore, 0.001)
		assert.True(t, updated.Responded)
		assert.Contains(t, updated.Notes, "\nOutcome: No notes")
	})

	t.Run("Connected and interested apply together", func(t *testing.T) {
		updated, err := service.UpdateOutcome(ctx, placeCall(t), Outcome{
			Connected:  true,
			Interested: true,
			Notes:      "connected, wants a quote",
		})
		require.NoError(t, err)
		assert.InDelta(t, 10.0, updated.EngagementScore, 0.001)
		assert.True(t, updated.Responded)
		assert.Equal(t, 1, strings.Count(updated.Notes, "Outcome:"))
	})

	t.Run("No connection leaves the score alone", func(t *testing.T) {
		updated, err := service.UpdateOutcome(ctx, placeCall(t), Outcome{Notes: "left voicemail"})
		require.NoError(t, err)
		assert.InDelta(t, 2.0, updated.EngagementScore, 0.001)
		assert.False(t, updated.Responded)
		assert.Contains(t, updated.Notes, "\nOutcome: left voicemail")
	})

	t.Run("Rejects non-call engagements", func(t *testing.T) {
		emailEng, err := client.Engagement.Create().
			SetProspectID(p.ID).
			SetKind("email").
			SetContent("{}").
			Save(ctx)
		require.NoError(t, err)

		_, err = service.UpdateOutcome(ctx, emailEng.ID, Outcome{Connected: true})
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}
