package engagement

import (
	"context"
	"log"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/ent/engagement"
	"github.com/jordanlanch/outreachhq/ent/prospect"
	"github.com/jordanlanch/outreachhq/pkg/domain"
)

// Engagement event names accepted by TrackEvent.
const (
	EventOpen  = "open"
	EventClick = "click"
	EventReply = "reply"
)

// Score deltas per tracked event.
const (
	openDelta  = 1.0
	clickDelta = 2.0
	replyDelta = 5.0
)

// Service records and queries engagement history.
type Service struct {
	client *ent.Client
	logger *log.Logger

	// OnEvent, when set, is invoked with the event name after each
	// successfully tracked event.
	OnEvent func(event string)
}

// NewService creates a new engagement service.
func NewService(client *ent.Client, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{client: client, logger: logger}
}

// History returns a prospect's engagements, newest first.
func (s *Service) History(ctx context.Context, prospectID int) ([]*ent.Engagement, error) {
	exists, err := s.client.Prospect.Query().Where(prospect.ID(prospectID)).Exist(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if !exists {
		return nil, domain.NewNotFoundError("prospect")
	}

	items, err := s.client.Engagement.Query().
		Where(engagement.ProspectID(prospectID)).
		Order(ent.Desc(engagement.FieldSentAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return items, nil
}

// GetByID retrieves a single engagement.
func (s *Service) GetByID(ctx context.Context, id int) (*ent.Engagement, error) {
	e, err := s.client.Engagement.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("engagement")
		}
		return nil, domain.NewInternalError(err)
	}
	return e, nil
}

// TrackEvent records an open, click or reply on an engagement. Each event
// sets its flag and adds its score delta; a reply also marks the engagement
// as responded. Events are additive and repeatable.
func (s *Service) TrackEvent(ctx context.Context, engagementID int, event string) (*ent.Engagement, error) {
	e, err := s.GetByID(ctx, engagementID)
	if err != nil {
		return nil, err
	}

	upd := s.client.Engagement.UpdateOneID(engagementID)

	switch event {
	case EventOpen:
		upd.SetOpened(true).SetEngagementScore(e.EngagementScore + openDelta)
	case EventClick:
		upd.SetClicked(true).SetEngagementScore(e.EngagementScore + clickDelta)
	case EventReply:
		upd.SetResponded(true).SetEngagementScore(e.EngagementScore + replyDelta)
	default:
		return nil, domain.NewBadRequestError("unknown engagement event: " + event)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	s.logger.Printf("📈 Engagement %d: %s tracked (score=%.1f)", engagementID, event, updated.EngagementScore)
	if s.OnEvent != nil {
		s.OnEvent(event)
	}
	return updated, nil
}
