package email

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/ent/engagement"
	"github.com/jordanlanch/outreachhq/ent/prospect"
	"github.com/jordanlanch/outreachhq/pkg/domain"
	"github.com/jordanlanch/outreachhq/pkg/personalization"
)

// ContentGenerator is the slice of the personalization generator the email
// service depends on.
type ContentGenerator interface {
	GenerateEmail(ctx context.Context, prospect *ent.Prospect, history []*ent.Engagement) *personalization.EmailContent
	GenerateAdvice(ctx context.Context, prospect *ent.Prospect, email *personalization.EmailContent) string
}

// SenderIdentity is the signature block appended to outgoing email.
type SenderIdentity struct {
	Name  string
	Email string
	Phone string
}

// SendResult is the outcome of a successful email dispatch.
type SendResult struct {
	Engagement *ent.Engagement               `json:"engagement"`
	Email      *personalization.EmailContent `json:"email"`
	Advice     string                        `json:"advice"`
}

// Service generates and dispatches outreach emails and records each
// dispatch as an engagement.
type Service struct {
	client    *ent.Client
	generator ContentGenerator
	provider  Provider
	identity  SenderIdentity
	logger    *log.Logger

	// OnSent, when set, is invoked after each successful dispatch.
	OnSent func()
}

// NewService creates a new email service.
func NewService(client *ent.Client, generator ContentGenerator, provider Provider, identity SenderIdentity, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		client:    client,
		generator: generator,
		provider:  provider,
		identity:  identity,
		logger:    logger,
	}
}

// Generate produces a personalized email for the prospect without sending it.
func (s *Service) Generate(ctx context.Context, prospectID int) (*personalization.EmailContent, error) {
	p, history, err := s.prospectWithHistory(ctx, prospectID)
	if err != nil {
		return nil, err
	}
	return s.generator.GenerateEmail(ctx, p, history), nil
}

// Send generates a personalized email, dispatches it and records the
// engagement. The engagement row is written only after delivery succeeds, so
// a delivery failure leaves no trace in the history.
func (s *Service) Send(ctx context.Context, prospectID int) (*SendResult, error) {
	p, history, err := s.prospectWithHistory(ctx, prospectID)
	if err != nil {
		return nil, err
	}

	if p.Email == "" {
		return nil, domain.NewMissingContactInfoError("email", p.CompanyName)
	}

	content := s.generator.GenerateEmail(ctx, p, history)

	msg := Message{
		ToEmail:  p.Email,
		ToName:   p.ContactPerson,
		Subject:  content.Subject,
		HTMLBody: s.renderHTML(content.Body),
		TextBody: content.Body,
	}
	if err := s.provider.Send(ctx, msg); err != nil {
		return nil, domain.NewDeliveryFailureError(err)
	}

	e, err := s.client.Engagement.Create().
		SetProspectID(p.ID).
		SetKind("email").
		SetContent(content.Body).
		SetNotes("Subject: " + content.Subject).
		Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	advice := s.generator.GenerateAdvice(ctx, p, content)

	s.logger.Printf("🚀 Outreach email sent to %s (engagement=%d)", p.CompanyName, e.ID)
	if s.OnSent != nil {
		s.OnSent()
	}

	return &SendResult{Engagement: e, Email: content, Advice: advice}, nil
}

func (s *Service) prospectWithHistory(ctx context.Context, prospectID int) (*ent.Prospect, []*ent.Engagement, error) {
	p, err := s.client.Prospect.Query().
		Where(prospect.ID(prospectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, domain.NewNotFoundError("prospect")
		}
		return nil, nil, domain.NewInternalError(err)
	}

	history, err := s.client.Engagement.Query().
		Where(engagement.ProspectID(prospectID)).
		Order(ent.Desc(engagement.FieldSentAt)).
		All(ctx)
	if err != nil {
		return nil, nil, domain.NewInternalError(err)
	}

	return p, history, nil
}

// renderHTML wraps the plain-text body in the outgoing HTML envelope:
// line breaks become <br>, followed by the sender signature and the
// confidentiality footer.
func (s *Service) renderHTML(body string) string {
	var b strings.Builder

	b.WriteString("<html><body>\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "<br>\n"))
	b.WriteString("\n<br><br>\n")
	fmt.Fprintf(&b, "%s<br>\n", s.identity.Name)
	fmt.Fprintf(&b, "Phone: %s<br>\n", s.identity.Phone)
	fmt.Fprintf(&b, "Email: %s<br>\n", s.identity.Email)
	b.WriteString(`<hr><p style="font-size: 11px; color: #888;">This message and any attachments are confidential and intended solely for the addressee. If you received it in error, please delete it and notify the sender.</p>` + "\n")
	b.WriteString("</body></html>")

	return b.String()
}
