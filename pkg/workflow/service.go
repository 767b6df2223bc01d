package workflow

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/pkg/cache"
	"github.com/jordanlanch/outreachhq/pkg/email"
	"github.com/jordanlanch/outreachhq/pkg/personalization"
	"github.com/jordanlanch/outreachhq/pkg/prospects"
)

const classificationTTL = time.Hour

// industryCategories maps a category name to the keyword fragments that
// select it. Looser than the personalization tables on purpose: this
// classifier buckets free-text labels, the profiles personalize content.
var industryCategories = []struct {
	name     string
	keywords []string
}{
	{"technology", []string{"tech", "software", "it", "computer", "digital"}},
	{"finance", []string{"financ", "bank", "invest", "insur", "capital"}},
	{"healthcare", []string{"health", "medical", "hospital", "pharma", "care"}},
	{"retail", []string{"retail", "shop", "store", "ecommerce", "commerce"}},
	{"manufacturing", []string{"manufactur", "factory", "production", "industrial"}},
}

// ProcessResult bundles everything produced for a prospect without sending.
type ProcessResult struct {
	Prospect *ent.Prospect                 `json:"prospect"`
	Email    *personalization.EmailContent `json:"email"`
	Advice   string                        `json:"advice"`
}

// BatchResult is the per-prospect outcome of a batch send.
type BatchResult struct {
	ProspectID int             `json:"prospect_id"`
	Status     string          `json:"status"` // sent or error
	Error      string          `json:"error,omitempty"`
	Engagement *ent.Engagement `json:"engagement,omitempty"`
}

// EmailSender is the slice of the email service the orchestrator uses.
type EmailSender interface {
	Generate(ctx context.Context, prospectID int) (*personalization.EmailContent, error)
	Send(ctx context.Context, prospectID int) (*email.SendResult, error)
}

// AdviceGenerator produces follow-up advice for generated email.
type AdviceGenerator interface {
	GenerateAdvice(ctx context.Context, prospect *ent.Prospect, email *personalization.EmailContent) string
}

// Service orchestrates the outreach workflow end to end.
type Service struct {
	prospects *prospects.Service
	emails    EmailSender
	advisor   AdviceGenerator
	cache     *cache.Client
	logger    *log.Logger

	// OnBatchItem, when set, is invoked per batch item with its success flag.
	OnBatchItem func(success bool)
}

// NewService creates a new workflow service. The cache client is optional;
// without it classification is computed on every request.
func NewService(prospectSvc *prospects.Service, emails EmailSender, advisor AdviceGenerator, cacheClient *cache.Client, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		prospects: prospectSvc,
		emails:    emails,
		advisor:   advisor,
		cache:     cacheClient,
		logger:    logger,
	}
}

// Process generates email content and follow-up advice for a prospect
// without dispatching anything or touching the engagement history.
func (s *Service) Process(ctx context.Context, prospectID int) (*ProcessResult, error) {
	p, err := s.prospects.Get(ctx, prospectID)
	if err != nil {
		return nil, err
	}

	content, err := s.emails.Generate(ctx, prospectID)
	if err != nil {
		return nil, err
	}

	advice := s.advisor.GenerateAdvice(ctx, p, content)

	return &ProcessResult{Prospect: p, Email: content, Advice: advice}, nil
}

// Send generates, dispatches and records an outreach email for a prospect.
func (s *Service) Send(ctx context.Context, prospectID int) (*email.SendResult, error) {
	return s.emails.Send(ctx, prospectID)
}

// SendBatch sends to each prospect in order. A failure is captured in its
// slot and never aborts the remaining sends.
func (s *Service) SendBatch(ctx context.Context, prospectIDs []int) []BatchResult {
	results := make([]BatchResult, 0, len(prospectIDs))

	for _, id := range prospectIDs {
		result := BatchResult{ProspectID: id, Status: "sent"}

		sent, err := s.emails.Send(ctx, id)
		if err != nil {
			result.Status = "error"
			result.Error = err.Error()
		} else {
			result.Engagement = sent.Engagement
		}

		if s.OnBatchItem != nil {
			s.OnBatchItem(err == nil)
		}
		results = append(results, result)
	}

	s.logger.Printf("📬 Batch send finished: %d prospects", len(prospectIDs))
	return results
}

// Classify buckets a prospect's industry label into a broad category. The
// result is cached per prospect for an hour.
func (s *Service) Classify(ctx context.Context, prospectID int) (string, error) {
	cacheKey := fmt.Sprintf("classification:prospect:%d", prospectID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			return cached, nil
		}
	}

	p, err := s.prospects.Get(ctx, prospectID)
	if err != nil {
		return "", err
	}

	category := classifyLabel(p.Industry)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, category, classificationTTL); err != nil {
			s.logger.Printf("⚠️ Failed caching classification for prospect %d: %v", prospectID, err)
		}
	}

	return category, nil
}

func classifyLabel(label string) string {
	normalized := strings.ToLower(label)

	for _, category := range industryCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(normalized, keyword) {
				return category.name
			}
		}
	}
	return "other"
}
