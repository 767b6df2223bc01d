package calls

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/ent/engagement"
	"github.com/jordanlanch/outreachhq/ent/prospect"
	"github.com/jordanlanch/outreachhq/pkg/domain"
	"github.com/jordanlanch/outreachhq/pkg/personalization"
	"github.com/jordanlanch/outreachhq/pkg/phone"
)

// Outcome describes what happened on a placed call. Connected and
// Interested are independent: a call can be both, and both deltas apply in
// the same update.
type Outcome struct {
	Connected  bool   `json:"connected"`
	Interested bool   `json:"interested"`
	Notes      string `json:"notes"`
}

// Score deltas applied on top of the base call score.
const (
	baseCallScore   = 2.0
	connectedDelta  = 3.0
	interestedDelta = 5.0
)

// ScriptGenerator is the slice of the personalization generator the call
// service depends on.
type ScriptGenerator interface {
	GenerateCallScript(ctx context.Context, prospect *ent.Prospect, history []*ent.Engagement) *personalization.CallScript
}

// PlaceCallResult is the outcome of a successfully placed call.
type PlaceCallResult struct {
	Engagement *ent.Engagement             `json:"engagement"`
	Script     *personalization.CallScript `json:"script"`
	CallID     string                      `json:"call_id"`
}

// Service generates call scripts and places outreach calls.
type Service struct {
	client      *ent.Client
	generator   ScriptGenerator
	provider    CallProvider
	fromNumber  string
	countryCode string
	logger      *log.Logger

	// OnPlaced, when set, is invoked after each successfully placed call.
	OnPlaced func()
}

// NewService creates a new call service.
func NewService(client *ent.Client, generator ScriptGenerator, provider CallProvider, fromNumber string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		client:      client,
		generator:   generator,
		provider:    provider,
		fromNumber:  fromNumber,
		countryCode: "US",
		logger:      logger,
	}
}

// GenerateScript produces a personalized call script without placing a call.
func (s *Service) GenerateScript(ctx context.Context, prospectID int) (*personalization.CallScript, error) {
	p, history, err := s.prospectWithHistory(ctx, prospectID)
	if err != nil {
		return nil, err
	}
	return s.generator.GenerateCallScript(ctx, p, history), nil
}

// PlaceCall generates a script, initiates the call and records the
// engagement. A placed call starts at the base score with opened set, since
// the prospect was reached directly rather than through an inbox.
func (s *Service) PlaceCall(ctx context.Context, prospectID int) (*PlaceCallResult, error) {
	p, history, err := s.prospectWithHistory(ctx, prospectID)
	if err != nil {
		return nil, err
	}

	if p.Phone == "" {
		return nil, domain.NewMissingContactInfoError("phone", p.CompanyName)
	}

	toNumber, err := phone.Normalize(p.Phone, s.countryCode)
	if err != nil {
		return nil, domain.NewBadRequestError("invalid phone number for prospect: " + p.CompanyName)
	}

	script := s.generator.GenerateCallScript(ctx, p, history)

	result, err := s.provider.InitiateCall(ctx, s.fromNumber, toNumber)
	if err != nil {
		return nil, domain.NewDeliveryFailureError(err)
	}

	payload, err := json.Marshal(script)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	e, err := s.client.Engagement.Create().
		SetProspectID(p.ID).
		SetKind("call").
		SetContent(string(payload)).
		SetOpened(true).
		SetEngagementScore(baseCallScore).
		SetNotes("Call script: " + script.Title).
		Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	s.logger.Printf("📞 Outreach call placed to %s (engagement=%d, call=%s)", p.CompanyName, e.ID, result.CallID)
	if s.OnPlaced != nil {
		s.OnPlaced()
	}

	return &PlaceCallResult{Engagement: e, Script: script, CallID: result.CallID}, nil
}

// UpdateOutcome records the result of a call on its engagement. Connecting
// adds to the score; an interested prospect additionally counts as a
// response. Outcome notes are appended to the engagement notes.
func (s *Service) UpdateOutcome(ctx context.Context, engagementID int, outcome Outcome) (*ent.Engagement, error) {
	e, err := s.client.Engagement.Query().
		Where(engagement.ID(engagementID), engagement.Kind("call")).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("call engagement")
		}
		return nil, domain.NewInternalError(err)
	}

	upd := s.client.Engagement.UpdateOneID(engagementID)

	delta := 0.0
	if outcome.Connected {
		delta += connectedDelta
	}
	if outcome.Interested {
		delta += interestedDelta
		upd.SetResponded(true)
	}
	if delta != 0 {
		upd.SetEngagementScore(e.EngagementScore + delta)
	}

	notes := outcome.Notes
	if notes == "" {
		notes = "No notes"
	}
	upd.SetNotes(e.Notes + "\nOutcome: " + notes)

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	s.logger.Printf("🕐 Call outcome recorded: engagement=%d connected=%t interested=%t", engagementID, outcome.Connected, outcome.Interested)
	return updated, nil
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
