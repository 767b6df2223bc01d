package email

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Message is a rendered outreach email ready for dispatch.
type Message struct {
	ToEmail  string
	ToName   string
	Subject  string
	HTMLBody string
	TextBody string
}

// Provider abstracts the email delivery backend so tests and development
// setups can run without SendGrid credentials.
type Provider interface {
	Send(ctx context.Context, msg Message) error
}

// SendGridProvider delivers email through the SendGrid API with open and
// click tracking enabled.
type SendGridProvider struct {
	apiKey    string
	fromEmail string
	fromName  string
	logger    *log.Logger
}

// NewSendGridProvider creates a SendGrid-backed provider.
func NewSendGridProvider(apiKey, fromEmail, fromName string, logger *log.Logger) *SendGridProvider {
	if logger == nil {
		logger = log.Default()
	}
	return &SendGridProvider{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
	}
}

// Send dispatches the message via SendGrid.
func (p *SendGridProvider) Send(ctx context.Context, msg Message) error {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(p.fromName, p.fromEmail))
	m.Subject = msg.Subject

	pers := mail.NewPersonalization()
	pers.AddTos(mail.NewEmail(msg.ToName, msg.ToEmail))
	m.AddPersonalizations(pers)

	m.AddContent(
		mail.NewContent("text/plain", msg.TextBody),
		mail.NewContent("text/html", msg.HTMLBody),
	)

	// Open and click tracking feed the engagement event endpoints.
	clickTracking := mail.NewClickTrackingSetting()
	clickTracking.SetEnable(true)
	clickTracking.SetEnableText(false)

	openTracking := mail.NewOpenTrackingSetting()
	openTracking.SetEnable(true)

	tracking := mail.NewTrackingSettings()
	tracking.SetClickTracking(clickTracking)
	tracking.SetOpenTracking(openTracking)
	m.SetTrackingSettings(tracking)

	client := sendgrid.NewSendClient(p.apiKey)
	response, err := client.SendWithContext(ctx, m)
	if err != nil {
		p.logger.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		p.logger.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	p.logger.Printf("✅ Email sent to %s (SendGrid status: %d)", msg.ToEmail, response.StatusCode)
	return nil
}

// ConsoleProvider logs email instead of sending it (development mode).
type ConsoleProvider struct {
	logger *log.Logger
}

// NewConsoleProvider creates a console-only provider.
func NewConsoleProvider(logger *log.Logger) *ConsoleProvider {
	if logger == nil {
		logger = log.Default()
	}
	return &ConsoleProvider{logger: logger}
}

// Send logs the message to the console.
func (p *ConsoleProvider) Send(_ context.Context, msg Message) error {
	p.logger.Printf("📧 [EMAIL] %s", msg.Subject)
	p.logger.Printf("   To: %s <%s>", msg.ToName, msg.ToEmail)
	p.logger.Printf("   ⚠️ Email NOT sent (development mode)")
	return nil
}
