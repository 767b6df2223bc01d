package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/jordanlanch/outreachhq/pkg/api/errors"
	"github.com/jordanlanch/outreachhq/pkg/engagement"
	"github.com/jordanlanch/outreachhq/pkg/workflow"
)

// EmailHandler handles outreach email requests
type EmailHandler struct {
	workflowService   *workflow.Service
	engagementService *engagement.Service
	validator         *validator.Validate
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(workflowService *workflow.Service, engagementService *engagement.Service) *EmailHandler {
	return &EmailHandler{
		workflowService:   workflowService,
		engagementService: engagementService,
		validator:         validator.New(),
	}
}

// ProspectIDRequest selects the prospect to act on.
type ProspectIDRequest struct {
	ProspectID int `json:"prospect_id" validate:"required,gt=0"`
}

// BatchSendRequest lists the prospects for a batch send.
type BatchSendRequest struct {
	ProspectIDs []int `json:"prospect_ids" validate:"required,min=1,dive,gt=0"`
}

// TrackEventRequest names the engagement event to record.
type TrackEventRequest struct {
	Event string `json:"event" validate:"required"`
}

// GenerateEmail godoc
// @Summary Generate a personalized email
// @Description Generates email content and follow-up advice without sending anything
// @Tags Emails
// @Accept json
// @Produce json
// @Param request body ProspectIDRequest true "Prospect selector"
// @Success 200 {object} workflow.ProcessResult
// @Failure 404 {object} models.ErrorResponse
// @Router /emails/generate [post]
func (h *EmailHandler) GenerateEmail(c echo.Context) error {
	var req ProspectIDRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.workflowService.Process(c.Request().Context(), req.ProspectID)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// SendEmail godoc
// @Summary Send a personalized email
// @Description Generates, dispatches and records an outreach email
// @Tags Emails
// @Accept json
// @Produce json
// @Param request body ProspectIDRequest true "Prospect selector"
// @Success 200 {object} email.SendResult
// @Failure 400 {object} models.ErrorResponse "Missing contact email"
// @Failure 404 {object} models.ErrorResponse
// @Router /emails/send [post]
func (h *EmailHandler) SendEmail(c echo.Context) error {
	var req ProspectIDRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.workflowService.Send(c.Request().Context(), req.ProspectID)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// SendBatch godoc
// @Summary Send emails to a batch of prospects
// @Description Sends sequentially; per-prospect failures are reported inline and never abort the batch
// @Tags Emails
// @Accept json
// @Produce json
// @Param request body BatchSendRequest true "Prospect IDs"
// @Success 200 {object} map[string]interface{}
// @Router /emails/send-batch [post]
func (h *EmailHandler) SendBatch(c echo.Context) error {
	var req BatchSendRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	results := h.workflowService.SendBatch(c.Request().Context(), req.ProspectIDs)

	sent := 0
	for _, r := range results {
		if r.Status == "sent" {
			sent++
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"results": results,
		"total":   len(results),
		"sent":    sent,
	})
}

// GetEngagement godoc
// @Summary Engagement detail
// @Tags Emails
// @Produce json
// @Param id path int true "Engagement ID"
// @Success 200 {object} ent.Engagement
// @Failure 404 {object} models.ErrorResponse
// @Router /emails/engagement/{id} [get]
func (h *EmailHandler) GetEngagement(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	e, err := h.engagementService.GetByID(c.Request().Context(), id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, e)
}

// TrackEngagementEvent godoc
// @Summary Track an engagement event
// @Description Records an open, click or reply and updates the engagement score
// @Tags Emails
// @Accept json
// @Produce json
// @Param id path int true "Engagement ID"
// @Param request body TrackEventRequest true "Event: open, click or reply"
// @Success 200 {object} ent.Engagement
// @Failure 400 {object} models.ErrorResponse "Unknown event"
// @Failure 404 {object} models.ErrorResponse
// @Router /emails/engagement/{id}/track [post]
func (h *EmailHandler) TrackEngagementEvent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	var req TrackEventRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	e, err := h.engagementService.TrackEvent(c.Request().Context(), id, req.Event)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, e)
}
