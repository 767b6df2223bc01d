package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/ent/enttest"
	"github.com/jordanlanch/outreachhq/pkg/ai/llm"
	"github.com/jordanlanch/outreachhq/pkg/cache"
	"github.com/jordanlanch/outreachhq/pkg/domain"
	"github.com/jordanlanch/outreachhq/pkg/email"
	"github.com/jordanlanch/outreachhq/pkg/personalization"
	"github.com/jordanlanch/outreachhq/pkg/prospects"
)

// failingCompleter always fails, forcing the generator onto its templates.
type failingCompleter struct{}

func (failingCompleter) Chat(context.Context, llm.ChatRequest) (*llm.ChatResponse, error) {
	return nil, errors.New("model unavailable")
}

// failingProvider fails for one specific recipient.
type failingProvider struct {
	failFor string
	sent    []string
}

func (p *failingProvider) Send(_ context.Context, msg email.Message) error {
	if msg.ToEmail == p.failFor {
		return assert.AnError
	}
	p.sent = append(p.sent, msg.ToEmail)
	return nil
}

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func setupTestCache(t *testing.T) *cache.Client {
	mr := miniredis.RunT(t)
	return &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
}

// newTestService wires a full workflow stack on sqlite with a generator
// that always falls back to templates (nil completer is never reached
// because the fake always errors before the API call).
func newTestService(t *testing.T, client *ent.Client, provider email.Provider, cacheClient *cache.Client) (*Service, *prospects.Service) {
	prospectSvc := prospects.NewService(client, nil)

	gen := personalization.NewGenerator(failingCompleter{}, nil)
	emailSvc := email.NewService(client, gen, provider, email.SenderIdentity{
		Name:  "Insurance Specialist",
		Email: "insurance@youragency.com",
		Phone: "(555) 123-4567",
	}, nil)

	return NewService(prospectSvc, emailSvc, gen, cacheClient, nil), prospectSvc
}

func createProspect(t *testing.T, svc *prospects.Service, name, industry, emailAddr string) *ent.Prospect {
	p, err := svc.Create(context.Background(), prospects.CreateProspectRequest{
		CompanyName:   name,
		Industry:      industry,
		ContactPerson: "Jordan Smith",
		Email:         emailAddr,
	})
	require.NoError(t, err)
	return p
}

func TestProcess_AcmeTechScenario(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service, prospectSvc := newTestService(t, client, &failingProvider{}, nil)
	ctx := context.Background()

	p := createProspect(t, prospectSvc, "Acme Tech", "Technology", "jordan@acmetech.com")

	result, err := service.Process(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, "Acme Tech", result.Prospect.CompanyName)
	assert.NotEmpty(t, result.Email.Subject)
	assert.NotEmpty(t, result.Email.Body)
	assert.NotEmpty(t, result.Advice)

	// Fresh prospect with no history gets the initial approach and the
	// technology profile.
	assert.Equal(t, personalization.ApproachInitial, result.Email.Metadata.EngagementApproach.Approach)
	assert.Contains(t, result.Email.Metadata.IndustrySpecifics.Keywords, "innovation")

	// Process never writes.
	count, err := client.Engagement.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestProcess_UnknownProspect(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service, _ := newTestService(t, client, &failingProvider{}, nil)

	_, err := service.Process(context.Background(), 99999)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestSendBatch_FailingMiddleProspect(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	provider := &failingProvider{failFor: "two@example.com"}
	service, prospectSvc := newTestService(t, client, provider, nil)
	ctx := context.Background()

	one := createProspect(t, prospectSvc, "One Corp", "Technology", "one@example.com")
	two := createProspect(t, prospectSvc, "Two Corp", "Finance", "two@example.com")
	three := createProspect(t, prospectSvc, "Three Corp", "Retail", "three@example.com")

	var outcomes []bool
	service.OnBatchItem = func(success bool) { outcomes = append(outcomes, success) }

	results := service.SendBatch(ctx, []int{one.ID, two.ID, three.ID})

	require.Len(t, results, 3)
	assert.Equal(t, []int{one.ID, two.ID, three.ID},
		[]int{results[0].ProspectID, results[1].ProspectID, results[2].ProspectID})

	assert.Equal(t, "sent", results[0].Status)
	assert.NotNil(t, results[0].Engagement)

	assert.Equal(t, "error", results[1].Status)
	assert.NotEmpty(t, results[1].Error)
	assert.Nil(t, results[1].Engagement)

	assert.Equal(t, "sent", results[2].Status)

	assert.Equal(t, []bool{true, false, true}, outcomes)

	// Only successful sends leave engagement rows.
	count, err := client.Engagement.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestClassify(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service, prospectSvc := newTestService(t, client, &failingProvider{}, setupTestCache(t))
	ctx := context.Background()

	tests := []struct {
		company  string
		industry string
		expected string
	}{
		{"SoftCo", "Software Development", "technology"},
		{"BigBank", "Investment Banking", "finance"},
		{"MediCare Plus", "Medical Devices", "healthcare"},
		{"ShopRight", "E-commerce", "retail"},
		{"SteelWorks", "Industrial Production", "manufacturing"},
		{"GreenFields", "Agriculture", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.industry, func(t *testing.T) {
			p := createProspect(t, prospectSvc, tt.company, tt.industry, "")
			category, err := service.Classify(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, category)
		})
	}
}

func TestClassify_ServesFromCache(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	cacheClient := setupTestCache(t)
	service, prospectSvc := newTestService(t, client, &failingProvider{}, cacheClient)
	ctx := context.Background()

	p := createProspect(t, prospectSvc, "Acme Tech", "Technology", "")

	first, err := service.Classify(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "technology", first)

	// A changed label is shadowed by the cached classification until the
	// entry expires.
	industry := "Agriculture"
	_, err = prospectSvc.Update(ctx, p.ID, prospects.UpdateProspectRequest{Industry: &industry})
	require.NoError(t, err)

	second, err := service.Classify(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "technology", second)
}

func TestClassify_WorksWithoutCache(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service, prospectSvc := newTestService(t, client, &failingProvider{}, nil)
	ctx := context.Background()

	p := createProspect(t, prospectSvc, "Acme Tech", "Technology", "")

	category, err := service.Classify(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "technology", category)

	// Without a cache every call recomputes, so label changes show up
	// immediately.
	industry := "Agriculture"
	_, err = prospectSvc.Update(ctx, p.ID, prospects.UpdateProspectRequest{Industry: &industry})
	require.NoError(t, err)

	category, err = service.Classify(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "other", category)
}

func TestClassifyLabel_CaseInsensitive(t *testing.T) {
	assert.Equal(t, "technology", classifyLabel("DIGITAL Media"))
	assert.Equal(t, "finance", classifyLabel("insurance"))
	assert.Equal(t, "other", classifyLabel(""))
}
