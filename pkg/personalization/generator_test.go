package personalization

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/pkg/ai/llm"
)

// fakeCompleter returns a canned response or error and records the last request.
type fakeCompleter struct {
	response string
	err      error
	lastReq  llm.ChatRequest
}

func (f *fakeCompleter) Chat(_ context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.ChatResponse{Message: f.response}, nil
}

func testProspect() *ent.Prospect {
	return &ent.Prospect{
		ID:            1,
		CompanyName:   "Acme Tech",
		Industry:      "Technology",
		ContactPerson: "Jordan Smith",
		Email:         "jordan@acmetech.com",
	}
}

func TestGenerateEmail_ParsesJSONResponse(t *testing.T) {
	fake := &fakeCompleter{response: `Here you go:
{"subject": "Protecting Acme Tech from cyber risk", "body": "Hi Jordan,\n\nLet's talk."}`}
	g := NewGenerator(fake, log.New(testWriter{t}, "", 0))

	email := g.GenerateEmail(context.Background(), testProspect(), nil)

	require.NotNil(t, email)
	assert.Equal(t, "Protecting Acme Tech from cyber risk", email.Subject)
	assert.Equal(t, "Hi Jordan,\n\nLet's talk.", email.Body)
	assert.Equal(t, ApproachInitial, email.Metadata.EngagementApproach.Approach)
	assert.Contains(t, email.Metadata.IndustrySpecifics.PainPoints, "data breaches")
	assert.Contains(t, email.Metadata.PotentialObjections, "We already have cyber insurance")
}

func TestGenerateEmail_LabeledTextTier(t *testing.T) {
	fake := &fakeCompleter{response: "Subject: A tailored offer for Acme Tech\nBody: Hello Jordan, we help tech companies manage risk."}
	g := NewGenerator(fake, log.New(testWriter{t}, "", 0))

	email := g.GenerateEmail(context.Background(), testProspect(), nil)

	assert.Equal(t, "A tailored offer for Acme Tech", email.Subject)
	assert.Equal(t, "Hello Jordan, we help tech companies manage risk.", email.Body)
}

func TestGenerateEmail_RawTextTier(t *testing.T) {
	fake := &fakeCompleter{response: "Just a blob of prose with no structure at all."}
	g := NewGenerator(fake, log.New(testWriter{t}, "", 0))

	email := g.GenerateEmail(context.Background(), testProspect(), nil)

	assert.Equal(t, "Insurance Solution for Acme Tech", email.Subject)
	assert.Equal(t, "Just a blob of prose with no structure at all.", email.Body)
}

func TestGenerateEmail_FallbackOnError(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("model unavailable")}
	g := NewGenerator(fake, log.New(testWriter{t}, "", 0))

	var fallbackChannel string
	g.OnFallback = func(channel string) { fallbackChannel = channel }

	email := g.GenerateEmail(context.Background(), testProspect(), nil)

	require.NotNil(t, email)
	assert.Equal(t, "Custom Insurance Solutions for Acme Tech", email.Subject)
	assert.Contains(t, email.Body, "Dear Jordan Smith")
	assert.Contains(t, email.Body, "data breaches")
	assert.Contains(t, email.Body, "Tech-specific liability coverage")
	assert.Equal(t, "email", fallbackChannel)
	// Metadata is attached on the fallback path too.
	assert.Contains(t, email.Metadata.IndustrySpecifics.Keywords, "innovation")
}

func TestGenerateEmail_FallbackWithoutContactPerson(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("boom")}
	g := NewGenerator(fake, log.New(testWriter{t}, "", 0))

	p := testProspect()
	p.ContactPerson = ""

	email := g.GenerateEmail(context.Background(), p, nil)
	assert.Contains(t, email.Body, "Dear Decision Maker")
}

func TestGenerateEmail_HistoryShapesApproach(t *testing.T) {
	fake := &fakeCompleter{response: `{"subject": "s", "body": "b"}`}
	g := NewGenerator(fake, log.New(testWriter{t}, "", 0))

	history := []*ent.Engagement{{Opened: true, Responded: true}}
	email := g.GenerateEmail(context.Background(), testProspect(), history)

	assert.Equal(t, ApproachWarm, email.Metadata.EngagementApproach.Approach)
	assert.Contains(t, fake.lastReq.Messages[1].Content, "warm follow-up")
}

func TestGenerateCallScript(t *testing.T) {
	fake := &fakeCompleter{response: "Hello, is this Jordan? [[PAUSE]] Great, I'm calling from..."}
	g := NewGenerator(fake, log.New(testWriter{t}, "", 0))

	script := g.GenerateCallScript(context.Background(), testProspect(), nil)

	require.NotNil(t, script)
	assert.Equal(t, "Call Script for Acme Tech", script.Title)
	assert.Contains(t, script.Script, "[[PAUSE]]")
	assert.Empty(t, script.Metadata.PotentialObjections)
	assert.Equal(t, callMaxTokens, fake.lastReq.MaxTokens)
}

func TestGenerateCallScript_Fallback(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("timeout")}
	g := NewGenerator(fake, log.New(testWriter{t}, "", 0))

	script := g.GenerateCallScript(context.Background(), testProspect(), nil)

	assert.Equal(t, "Call Script for Acme Tech", script.Title)
	assert.Contains(t, script.Script, "[[PAUSE]]")
	assert.Contains(t, script.Script, "Acme Tech")
	assert.Equal(t, ApproachInitial, script.Metadata.EngagementApproach.Approach)
}

func TestGenerateAdvice(t *testing.T) {
	fake := &fakeCompleter{response: "Call within 2 days and lead with cyber coverage."}
	g := NewGenerator(fake, log.New(testWriter{t}, "", 0))

	email := &EmailContent{Subject: "s", Metadata: Metadata{EngagementApproach: ClassifyApproach(nil)}}
	advice := g.GenerateAdvice(context.Background(), testProspect(), email)

	assert.Equal(t, "Call within 2 days and lead with cyber coverage.", advice)
	assert.Equal(t, adviceMaxTokens, fake.lastReq.MaxTokens)
}

func TestGenerateAdvice_Fallback(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("nope")}
	g := NewGenerator(fake, log.New(testWriter{t}, "", 0))

	email := &EmailContent{Subject: "s"}
	advice := g.GenerateAdvice(context.Background(), testProspect(), email)

	assert.Equal(t, fallbackAdvice, advice)
}

func TestParseEmailResponse_MalformedJSONFallsThrough(t *testing.T) {
	subject, body := parseEmailResponse(`{"subject": "broken`, "Acme Tech")

	assert.Equal(t, "Insurance Solution for Acme Tech", subject)
	assert.NotEmpty(t, body)
}

// testWriter routes generator logs through the test log.
type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
