package personalization

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/pkg/ai/llm"
)

// Token budgets per channel
const (
	emailMaxTokens  = 800
	callMaxTokens   = 600
	adviceMaxTokens = 150

	samplingTemperature = 0.7
)

const (
	emailSystemPrompt  = "You are an expert in writing personalized insurance sales outreach emails."
	callSystemPrompt   = "You are an expert in writing effective cold call scripts for insurance sales."
	adviceSystemPrompt = "You are an expert sales coach specializing in insurance sales."
)

const fallbackAdvice = "Follow up within 3 business days. Use phone for direct contact, then email if no response.\n" +
	"Emphasize industry-specific benefits and ROI. Address cost objections by focusing on risk mitigation value."

// TextCompleter is the slice of the LLM client the generator depends on.
type TextCompleter interface {
	Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error)
}

// Metadata travels with every generated piece of content so downstream
// consumers can see which strategy produced it.
type Metadata struct {
	IndustrySpecifics   IndustryProfile `json:"industry_specifics"`
	EngagementApproach  ApproachProfile `json:"engagement_approach"`
	PotentialObjections []string        `json:"potential_objections,omitempty"`
}

// EmailContent is a generated outreach email.
type EmailContent struct {
	Subject  string   `json:"subject"`
	Body     string   `json:"body"`
	Metadata Metadata `json:"metadata"`
}

// CallScript is a generated cold call script. The script text uses
// [[PAUSE]] markers where the caller should wait for a response.
type CallScript struct {
	Title    string   `json:"title"`
	Script   string   `json:"script"`
	Metadata Metadata `json:"metadata"`
}

// Generator produces personalized outreach content. Generation never fails:
// when the model is unreachable or returns garbage, a deterministic template
// built from the industry profile is used instead.
type Generator struct {
	llm    TextCompleter
	logger *log.Logger

	// OnFallback, when set, is invoked with the channel name (email, call,
	// advice) each time a template fallback replaces model output.
	OnFallback func(channel string)
}

// NewGenerator creates a content generator backed by the given completer.
func NewGenerator(completer TextCompleter, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{llm: completer, logger: logger}
}

func (g *Generator) fellBack(channel string) {
	if g.OnFallback != nil {
		g.OnFallback(channel)
	}
}

// GenerateEmail builds a personalized email for the prospect. The prospect's
// engagement history selects the approach; the industry label selects the
// profile and likely objections. Always returns usable content.
func (g *Generator) GenerateEmail(ctx context.Context, prospect *ent.Prospect, history []*ent.Engagement) *EmailContent {
	profile := ResolveIndustryProfile(prospect.Industry)
	approach := ClassifyApproach(history)
	objections := ObjectionsFor(prospect.Industry)

	meta := Metadata{
		IndustrySpecifics:   profile,
		EngagementApproach:  approach,
		PotentialObjections: objections,
	}

	resp, err := g.llm.Chat(ctx, llm.ChatRequest{
		Messages: []llm.ChatMessage{
			{Role: "system", Content: emailSystemPrompt},
			{Role: "user", Content: buildEmailPrompt(prospect, profile, approach, objections)},
		},
		Temperature: samplingTemperature,
		MaxTokens:   emailMaxTokens,
	})
	if err != nil {
		g.logger.Printf("⚠️ Email generation failed for %s, using template: %v", prospect.CompanyName, err)
		g.fellBack("email")
		return g.templateEmail(prospect, profile, meta)
	}

	subject, body := parseEmailResponse(resp.Message, prospect.CompanyName)
	return &EmailContent{Subject: subject, Body: body, Metadata: meta}
}

// GenerateCallScript builds a personalized cold call script for the prospect.
// Always returns usable content.
func (g *Generator) GenerateCallScript(ctx context.Context, prospect *ent.Prospect, history []*ent.Engagement) *CallScript {
	profile := ResolveIndustryProfile(prospect.Industry)
	approach := ClassifyApproach(history)

	meta := Metadata{
		IndustrySpecifics:  profile,
		EngagementApproach: approach,
	}

	resp, err := g.llm.Chat(ctx, llm.ChatRequest{
		Messages: []llm.ChatMessage{
			{Role: "system", Content: callSystemPrompt},
			{Role: "user", Content: buildCallPrompt(prospect, profile, approach)},
		},
		Temperature: samplingTemperature,
		MaxTokens:   callMaxTokens,
	})
	if err != nil {
		g.logger.Printf("⚠️ Call script generation failed for %s, using template: %v", prospect.CompanyName, err)
		g.fellBack("call")
		return g.templateCallScript(prospect, profile, meta)
	}

	return &CallScript{
		Title:    "Call Script for " + prospect.CompanyName,
		Script:   strings.TrimSpace(resp.Message),
		Metadata: meta,
	}
}

// GenerateAdvice produces a short follow-up recommendation for an email that
// was just sent. Always returns usable advice.
func (g *Generator) GenerateAdvice(ctx context.Context, prospect *ent.Prospect, email *EmailContent) string {
	prompt := fmt.Sprintf(
		"We just sent the following outreach email to %s (%s industry):\n\nSubject: %s\n\nThe approach focus was: %s.\n\nIn 2-3 sentences, give concrete follow-up advice for the sales rep: when to follow up, on which channel, and what to emphasize.",
		prospect.CompanyName, prospect.Industry, email.Subject, email.Metadata.EngagementApproach.Focus,
	)

	resp, err := g.llm.Chat(ctx, llm.ChatRequest{
		Messages: []llm.ChatMessage{
			{Role: "system", Content: adviceSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: samplingTemperature,
		MaxTokens:   adviceMaxTokens,
	})
	if err != nil {
		g.logger.Printf("⚠️ Advice generation failed for %s, using default: %v", prospect.CompanyName, err)
		g.fellBack("advice")
		return fallbackAdvice
	}

	return strings.TrimSpace(resp.Message)
}

func buildEmailPrompt(p *ent.Prospect, profile IndustryProfile, approach ApproachProfile, objections []string) string {
	return fmt.Sprintf(`Write a personalized sales outreach email for an insurance company reaching out to this prospect:

Company: %s
Industry: %s
Contact person: %s

Industry keywords to weave in: %s
Industry pain points to address: %s
Our selling points for this industry: %s

Engagement approach: %s
Tone: %s
Focus: %s
Call to action: %s

Likely objections to preempt: %s

Respond with a JSON object with exactly two keys, "subject" and "body". The body should be plain text with line breaks, no HTML.`,
		p.CompanyName,
		p.Industry,
		contactOrPlaceholder(p),
		strings.Join(profile.Keywords, ", "),
		strings.Join(profile.PainPoints, ", "),
		strings.Join(profile.SellingPoints, ", "),
		approach.Approach,
		approach.Tone,
		approach.Focus,
		approach.CallToAction,
		strings.Join(objections, "; "),
	)
}

func buildCallPrompt(p *ent.Prospect, profile IndustryProfile, approach ApproachProfile) string {
	return fmt.Sprintf(`Write a cold call script for an insurance sales rep calling this prospect:

Company: %s
Industry: %s
Contact person: %s

Industry pain points to address: %s
Our selling points for this industry: %s

Engagement approach: %s
Tone: %s
Focus: %s
Call to action: %s

Write the script as the rep's lines, inserting [[PAUSE]] wherever the rep should stop and wait for the prospect to respond. Keep it under 90 seconds of speaking time.`,
		p.CompanyName,
		p.Industry,
		contactOrPlaceholder(p),
		strings.Join(profile.PainPoints, ", "),
		strings.Join(profile.SellingPoints, ", "),
		approach.Approach,
		approach.Tone,
		approach.Focus,
		approach.CallToAction,
	)
}

var (
	jsonSpanRe = regexp.MustCompile(`(?s)\{.*\}`)
	subjectRe  = regexp.MustCompile(`(?im)^\s*subject\s*:\s*(.+)$`)
	bodyRe     = regexp.MustCompile(`(?ims)^\s*body\s*:\s*(.+)`)
)

// parseEmailResponse extracts subject and body from model output. Three
// tiers: the widest JSON object span, then subject/body line patterns, then
// the raw text with a synthesized subject. Never returns empty strings.
func parseEmailResponse(content, companyName string) (subject, body string) {
	if span := jsonSpanRe.FindString(content); span != "" {
		var parsed struct {
			Subject string `json:"subject"`
			Body    string `json:"body"`
		}
		if err := json.Unmarshal([]byte(span), &parsed); err == nil && parsed.Subject != "" && parsed.Body != "" {
			return parsed.Subject, parsed.Body
		}
	}

	subject = "Insurance Solution for " + companyName
	body = strings.TrimSpace(content)

	if m := subjectRe.FindStringSubmatch(content); m != nil {
		subject = strings.TrimSpace(m[1])
	}
	if m := bodyRe.FindStringSubmatch(content); m != nil {
		body = strings.TrimSpace(m[1])
	}

	return subject, body
}

func (g *Generator) templateEmail(p *ent.Prospect, profile IndustryProfile, meta Metadata) *EmailContent {
	body := fmt.Sprintf(`Dear %s,

I hope this email finds you well. I'm reaching out because we've helped several companies in the %s industry optimize their insurance coverage.

Given the specific challenges in your industry like %s, our %s could be particularly valuable to %s.

Would you be open to a brief call to discuss how our solutions could benefit your business?

Best regards,
Insurance Specialist`,
		contactOrPlaceholder(p), p.Industry, profile.PainPoints[0], profile.SellingPoints[0], p.CompanyName)

	return &EmailContent{
		Subject:  "Custom Insurance Solutions for " + p.CompanyName,
		Body:     body,
		Metadata: meta,
	}
}

func (g *Generator) templateCallScript(p *ent.Prospect, profile IndustryProfile, meta Metadata) *CallScript {
	script := fmt.Sprintf(`Hello, may I speak with %s? [[PAUSE]]

Hi, my name is Alex, calling from SecureShield Insurance. We work with companies in the %s industry, and I wanted to reach out because many of them face challenges like %s. [[PAUSE]]

We offer %s, and I'd love to learn a bit about how %s currently handles its coverage. Do you have two minutes? [[PAUSE]]

Great. Would it make sense to schedule a short call with one of our specialists this week to see if we can add value? [[PAUSE]]

Thank you for your time, have a great day.`,
		contactOrPlaceholder(p), p.Industry, profile.PainPoints[0], profile.SellingPoints[0], p.CompanyName)

	return &CallScript{
		Title:    "Call Script for " + p.CompanyName,
		Script:   script,
		Metadata: meta,
	}
}

func contactOrPlaceholder(p *ent.Prospect) string {
	if p.ContactPerson != "" {
		return p.ContactPerson
	}
	return "Decision Maker"
}
