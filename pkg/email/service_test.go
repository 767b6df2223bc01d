package email

import (
	"context"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/ent/enttest"
	"github.com/jordanlanch/outreachhq/pkg/domain"
	"github.com/jordanlanch/outreachhq/pkg/personalization"
)

// mockProvider records sent messages and can be made to fail.
type mockProvider struct {
	sent []Message
	err  error
}

func (m *mockProvider) Send(_ context.Context, msg Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

// stubGenerator returns fixed content and records the history it was given.
type stubGenerator struct {
	email       *personalization.EmailContent
	advice      string
	lastHistory []*ent.Engagement
}

func (s *stubGenerator) GenerateEmail(_ context.Context, _ *ent.Prospect, history []*ent.Engagement) *personalization.EmailContent {
	s.lastHistory = history
	return s.email
}

func (s *stubGenerator) GenerateAdvice(_ context.Context, _ *ent.Prospect, _ *personalization.EmailContent) string {
	return s.advice
}

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func testIdentity() SenderIdentity {
	return SenderIdentity{
		Name:  "Insurance Specialist",
		Email: "insurance@youragency.com",
		Phone: "(555) 123-4567",
	}
}

func testContent() *personalization.EmailContent {
	return &personalization.EmailContent{
		Subject: "Custom Insurance Solutions for Acme Tech",
		Body:    "Hi Jordan,\n\nLet's talk coverage.",
	}
}

func createTestProspect(t *testing.T, client *ent.Client, email string) *ent.Prospect {
	p, err := client.Prospect.Create().
		SetCompanyName("Acme Tech").
		SetIndustry("Technology").
		SetContactPerson("Jordan Smith").
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func TestSend(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	provider := &mockProvider{}
	gen := &stubGenerator{email: testContent(), advice: "Follow up in 3 days by phone."}
	service := NewService(client, gen, provider, testIdentity(), nil)
	ctx := context.Background()

	p := createTestProspect(t, client, "jordan@acmetech.com")

	var sentHookCalls int
	service.OnSent = func() { sentHookCalls++ }

	result, err := service.Send(ctx, p.ID)
	require.NoError(t, err)

	t.Run("Dispatches rendered message", func(t *testing.T) {
		require.Len(t, provider.sent, 1)
		msg := provider.sent[0]
		assert.Equal(t, "jordan@acmetech.com", msg.ToEmail)
		assert.Equal(t, "Custom Insurance Solutions for Acme Tech", msg.Subject)
		assert.Equal(t, "Hi Jordan,\n\nLet's talk coverage.", msg.TextBody)
		assert.Contains(t, msg.HTMLBody, "Hi Jordan,<br>")
		assert.Contains(t, msg.HTMLBody, "Insurance Specialist<br>")
		assert.Contains(t, msg.HTMLBody, "Phone: (555) 123-4567<br>")
		assert.Contains(t, msg.HTMLBody, "confidential")
	})

	t.Run("Records the engagement", func(t *testing.T) {
		require.NotNil(t, result.Engagement)
		assert.Equal(t, "email", result.Engagement.Kind)
		assert.Equal(t, "Subject: Custom Insurance Solutions for Acme Tech", result.Engagement.Notes)
		assert.Equal(t, "Hi Jordan,\n\nLet's talk coverage.", result.Engagement.Content)
		assert.False(t, result.Engagement.Opened)
		assert.Zero(t, result.Engagement.EngagementScore)
	})

	t.Run("Returns advice and fires the hook", func(t *testing.T) {
		assert.Equal(t, "Follow up in 3 days by phone.", result.Advice)
		assert.Equal(t, 1, sentHookCalls)
	})

	t.Run("History flows into generation on the next send", func(t *testing.T) {
		_, err := service.Send(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, gen.lastHistory, 1)
		assert.Equal(t, "email", gen.lastHistory[0].Kind)
	})
}

func TestSend_MissingEmail(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	provider := &mockProvider{}
	service := NewService(client, &stubGenerator{email: testContent()}, provider, testIdentity(), nil)
	ctx := context.Background()

	p := createTestProspect(t, client, "")

	_, err := service.Send(ctx, p.ID)
	require.Error(t, err)
	assert.True(t, domain.IsMissingContactInfo(err))
	assert.Empty(t, provider.sent)
}

func TestSend_DeliveryFailureLeavesNoEngagement(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	provider := &mockProvider{err: errors.New("smtp down")}
	service := NewService(client, &stubGenerator{email: testContent()}, provider, testIdentity(), nil)
	ctx := context.Background()

	p := createTestProspect(t, client, "jordan@acmetech.com")

	_, err := service.Send(ctx, p.ID)
	require.Error(t, err)
	assert.True(t, domain.IsDeliveryFailure(err))

	count, err := client.Engagement.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSend_UnknownProspect(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, &stubGenerator{email: testContent()}, &mockProvider{}, testIdentity(), nil)

	_, err := service.Send(context.Background(), 99999)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestGenerate_DoesNotDispatchOrRecord(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	provider := &mockProvider{}
	service := NewService(client, &stubGenerator{email: testContent()}, provider, testIdentity(), nil)
	ctx := context.Background()

	p := createTestProspect(t, client, "jordan@acmetech.com")

	content, err := service.Generate(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Custom Insurance Solutions for Acme Tech", content.Subject)

	assert.Empty(t, provider.sent)
	count, err := client.Engagement.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
