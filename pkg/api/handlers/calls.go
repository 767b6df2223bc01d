package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/jordanlanch/outreachhq/pkg/api/errors"
	"github.com/jordanlanch/outreachhq/pkg/calls"
)

// CallHandler handles outreach call requests
type CallHandler struct {
	callService *calls.Service
	validator   *validator.Validate
}

// NewCallHandler creates a new call handler
func NewCallHandler(callService *calls.Service) *CallHandler {
	return &CallHandler{
		callService: callService,
		validator:   validator.New(),
	}
}

// UpdateOutcomeRequest records what happened on a call. Connected and
// interested are independent flags and may both be set.
type UpdateOutcomeRequest struct {
	EngagementID int    `json:"engagement_id" validate:"required,gt=0"`
	Connected    bool   `json:"connected"`
	Interested   bool   `json:"interested"`
	Notes        string `json:"notes"`
}

// GenerateScript godoc
// @Summary Generate a call script
// @Description Generates a personalized cold call script without placing a call
// @Tags Calls
// @Accept json
// @Produce json
// @Param request body ProspectIDRequest true "Prospect selector"
// @Success 200 {object} personalization.CallScript
// @Failure 404 {object} models.ErrorResponse
// @Router /calls/generate-script [post]
func (h *CallHandler) GenerateScript(c echo.Context) error {
	var req ProspectIDRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	script, err := h.callService.GenerateScript(c.Request().Context(), req.ProspectID)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, script)
}

// MakeCall godoc
// @Summary Place an outreach call
// @Description Generates a script, initiates the call and records the engagement
// @Tags Calls
// @Accept json
// @Produce json
// @Param request body ProspectIDRequest true "Prospect selector"
// @Success 200 {object} calls.PlaceCallResult
// @Failure 400 {object} models.ErrorResponse "Missing or invalid phone"
// @Failure 404 {object} models.ErrorResponse
// @Router /calls/make-call [post]
func (h *CallHandler) MakeCall(c echo.Context) error {
	var req ProspectIDRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.callService.PlaceCall(c.Request().Context(), req.ProspectID)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// UpdateOutcome godoc
// @Summary Record a call outcome
// @Description Updates the call engagement with the connected/interested flags and appends notes
// @Tags Calls
// @Accept json
// @Produce json
// @Param request body UpdateOutcomeRequest true "Outcome data"
// @Success 200 {object} ent.Engagement
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /calls/update-outcome [post]
func (h *CallHandler) UpdateOutcome(c echo.Context) error {
	var req UpdateOutcomeRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	e, err := h.callService.UpdateOutcome(c.Request().Context(), req.EngagementID, calls.Outcome{
		Connected:  req.Connected,
		Interested: req.Interested,
		Notes:      req.Notes,
	})
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, e)
}
