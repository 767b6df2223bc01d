package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/ent/enttest"
	"github.com/jordanlanch/outreachhq/pkg/ai/llm"
	"github.com/jordanlanch/outreachhq/pkg/calls"
	"github.com/jordanlanch/outreachhq/pkg/email"
	"github.com/jordanlanch/outreachhq/pkg/engagement"
	"github.com/jordanlanch/outreachhq/pkg/export"
	"github.com/jordanlanch/outreachhq/pkg/personalization"
	"github.com/jordanlanch/outreachhq/pkg/prospects"
	"github.com/jordanlanch/outreachhq/pkg/workflow"
)

// failingCompleter forces the generator onto its deterministic templates.
type failingCompleter struct{}

func (failingCompleter) Chat(context.Context, llm.ChatRequest) (*llm.ChatResponse, error) {
	return nil, errors.New("model unavailable")
}

// recordingEmailProvider accepts everything.
type recordingEmailProvider struct {
	sent []email.Message
}

func (p *recordingEmailProvider) Send(_ context.Context, msg email.Message) error {
	p.sent = append(p.sent, msg)
	return nil
}

type testStack struct {
	e               *echo.Echo
	client          *ent.Client
	prospectHandler *ProspectHandler
	emailHandler    *EmailHandler
	callHandler     *CallHandler
	emailProvider   *recordingEmailProvider
}

func setupStack(t *testing.T) *testStack {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	generator := personalization.NewGenerator(failingCompleter{}, nil)
	provider := &recordingEmailProvider{}

	prospectSvc := prospects.NewService(client, nil)
	engagementSvc := engagement.NewService(client, nil)
	emailSvc := email.NewService(client, generator, provider, email.SenderIdentity{
		Name:  "Insurance Specialist",
		Email: "insurance@youragency.com",
		Phone: "(555) 123-4567",
	}, nil)
	callSvc := calls.NewService(client, generator, calls.NewSimulatedProvider(nil), "+12125550100", nil)
	workflowSvc := workflow.NewService(prospectSvc, emailSvc, generator, nil, nil)
	exportSvc := export.NewService(client)

	return &testStack{
		e:               echo.New(),
		client:          client,
		prospectHandler: NewProspectHandler(prospectSvc, engagementSvc, workflowSvc, exportSvc),
		emailHandler:    NewEmailHandler(workflowSvc, engagementSvc),
		callHandler:     NewCallHandler(callSvc),
		emailProvider:   provider,
	}
}

func (s *testStack) request(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *testStack) createProspect(t *testing.T, name, industry, emailAddr string) *ent.Prospect {
	p, err := s.client.Prospect.Create().
		SetCompanyName(name).
		SetIndustry(industry).
		SetContactPerson("Jordan Smith").
		SetEmail(emailAddr).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func TestCreateProspectHandler(t *testing.T) {
	s := setupStack(t)

	t.Run("Created", func(t *testing.T) {
		c, rec := s.request(http.MethodPost, "/api/v1/prospects",
			`{"company_name": "Acme Tech", "industry": "Technology", "email": "jordan@acmetech.com"}`)

		require.NoError(t, s.prospectHandler.CreateProspect(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var p ent.Prospect
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.Equal(t, "Acme Tech", p.CompanyName)
	})

	t.Run("Duplicate returns 409", func(t *testing.T) {
		c, rec := s.request(http.MethodPost, "/api/v1/prospects",
			`{"company_name": "Acme Tech", "industry": "Technology"}`)

		require.NoError(t, s.prospectHandler.CreateProspect(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Missing industry returns 400", func(t *testing.T) {
		c, rec := s.request(http.MethodPost, "/api/v1/prospects",
			`{"company_name": "NoIndustry Inc"}`)

		require.NoError(t, s.prospectHandler.CreateProspect(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetProspectHandler_NotFound(t *testing.T) {
	s := setupStack(t)

	c, rec := s.request(http.MethodGet, "/api/v1/prospects/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	require.NoError(t, s.prospectHandler.GetProspect(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProspectHandler(t *testing.T) {
	s := setupStack(t)
	p := s.createProspect(t, "Gone Inc", "Finance", "")

	c, rec := s.request(http.MethodDelete, "/api/v1/prospects/1", "")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(p.ID))

	require.NoError(t, s.prospectHandler.DeleteProspect(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSendEmailHandler(t *testing.T) {
	s := setupStack(t)
	p := s.createProspect(t, "Acme Tech", "Technology", "jordan@acmetech.com")

	t.Run("Sends and records", func(t *testing.T) {
		c, rec := s.request(http.MethodPost, "/api/v1/emails/send",
			`{"prospect_id": `+strconv.Itoa(p.ID)+`}`)

		require.NoError(t, s.emailHandler.SendEmail(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, s.emailProvider.sent, 1)
	})

	t.Run("Missing email returns 400", func(t *testing.T) {
		noEmail := s.createProspect(t, "Silent Corp", "Retail", "")
		c, rec := s.request(http.MethodPost, "/api/v1/emails/send",
			`{"prospect_id": `+strconv.Itoa(noEmail.ID)+`}`)

		require.NoError(t, s.emailHandler.SendEmail(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown prospect returns 404", func(t *testing.T) {
		c, rec := s.request(http.MethodPost, "/api/v1/emails/send", `{"prospect_id": 999}`)

		require.NoError(t, s.emailHandler.SendEmail(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTrackEngagementEventHandler(t *testing.T) {
	s := setupStack(t)
	p := s.createProspect(t, "Acme Tech", "Technology", "jordan@acmetech.com")

	e, err := s.client.Engagement.Create().
		SetProspectID(p.ID).
		SetKind("email").
		SetContent("hello").
		Save(context.Background())
	require.NoError(t, err)

	t.Run("Open event", func(t *testing.T) {
		c, rec := s.request(http.MethodPost, "/api/v1/emails/engagement/1/track", `{"event": "open"}`)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(e.ID))

		require.NoError(t, s.emailHandler.TrackEngagementEvent(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var updated ent.Engagement
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.True(t, updated.Opened)
	})

	t.Run("Unknown event returns 400", func(t *testing.T) {
		c, rec := s.request(http.MethodPost, "/api/v1/emails/engagement/1/track", `{"event": "forward"}`)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(e.ID))

		require.NoError(t, s.emailHandler.TrackEngagementEvent(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMakeCallHandler(t *testing.T) {
	s := setupStack(t)

	p, err := s.client.Prospect.Create().
		SetCompanyName("CallMe Inc").
		SetIndustry("Finance").
		SetPhone("(212) 555-0123").
		Save(context.Background())
	require.NoError(t, err)

	c, rec := s.request(http.MethodPost, "/api/v1/calls/make-call",
		`{"prospect_id": `+strconv.Itoa(p.ID)+`}`)

	require.NoError(t, s.callHandler.MakeCall(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	count, err := s.client.Engagement.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpdateOutcomeHandler_ConnectedAndInterested(t *testing.T) {
	s := setupStack(t)

	p, err := s.client.Prospect.Create().
		SetCompanyName("CallMe Inc").
		SetIndustry("Finance").
		SetPhone("(212) 555-0123").
		Save(context.Background())
	require.NoError(t, err)

	e, err := s.client.Engagement.Create().
		SetProspectID(p.ID).
		SetKind("call").
		SetContent("{}").
		SetOpened(true).
		SetEngagementScore(2.0).
		Save(context.Background())
	require.NoError(t, err)

	c, rec := s.request(http.MethodPost, "/api/v1/calls/update-outcome",
		`{"engagement_id": `+strconv.Itoa(e.ID)+`, "connected": true, "interested": true, "notes": "wants a quote"}`)

	require.NoError(t, s.callHandler.UpdateOutcome(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated ent.Engagement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.InDelta(t, 10.0, updated.EngagementScore, 0.001)
	assert.True(t, updated.Responded)
	assert.Contains(t, updated.Notes, "Outcome: wants a quote")
}

