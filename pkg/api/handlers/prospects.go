package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/jordanlanch/outreachhq/pkg/api/errors"
	"github.com/jordanlanch/outreachhq/pkg/engagement"
	"github.com/jordanlanch/outreachhq/pkg/export"
	"github.com/jordanlanch/outreachhq/pkg/models"
	"github.com/jordanlanch/outreachhq/pkg/prospects"
	"github.com/jordanlanch/outreachhq/pkg/workflow"
)

// ProspectHandler handles prospect CRUD, import and export requests
type ProspectHandler struct {
	prospectService   *prospects.Service
	engagementService *engagement.Service
	workflowService   *workflow.Service
	exportService     *export.Service
	validator         *validator.Validate
}

// NewProspectHandler creates a new prospect handler
func NewProspectHandler(prospectService *prospects.Service, engagementService *engagement.Service, workflowService *workflow.Service, exportService *export.Service) *ProspectHandler {
	return &ProspectHandler{
		prospectService:   prospectService,
		engagementService: engagementService,
		workflowService:   workflowService,
		exportService:     exportService,
		validator:         validator.New(),
	}
}

// CreateProspect godoc
// @Summary Create a prospect
// @Description Creates a new prospect. Company names are unique.
// @Tags Prospects
// @Accept json
// @Produce json
// @Param prospect body prospects.CreateProspectRequest true "Prospect data"
// @Success 201 {object} ent.Prospect
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Duplicate company name"
// @Router /prospects [post]
func (h *ProspectHandler) CreateProspect(c echo.Context) error {
	var req prospects.CreateProspectRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	p, err := h.prospectService.Create(c.Request().Context(), req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusCreated, p)
}

// ListProspects godoc
// @Summary List prospects
// @Description Lists prospects with optional case-insensitive industry filter and pagination
// @Tags Prospects
// @Produce json
// @Param industry query string false "Industry substring filter"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (default 100)"
// @Success 200 {object} map[string]interface{}
// @Router /prospects [get]
func (h *ProspectHandler) ListProspects(c echo.Context) error {
	var req prospects.ListProspectsRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	items, total, err := h.prospectService.List(c.Request().Context(), req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"prospects": items,
		"meta": models.ListMeta{
			Total:  total,
			Offset: req.Offset,
			Limit:  req.Limit,
		},
	})
}

// GetProspect godoc
// @Summary Get a prospect
// @Tags Prospects
// @Produce json
// @Param id path int true "Prospect ID"
// @Success 200 {object} ent.Prospect
// @Failure 404 {object} models.ErrorResponse
// @Router /prospects/{id} [get]
func (h *ProspectHandler) GetProspect(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	p, err := h.prospectService.Get(c.Request().Context(), id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

// UpdateProspect godoc
// @Summary Update a prospect
// @Description Partial update; only supplied fields are changed
// @Tags Prospects
// @Accept json
// @Produce json
// @Param id path int true "Prospect ID"
// @Param prospect body prospects.UpdateProspectRequest true "Fields to update"
// @Success 200 {object} ent.Prospect
// @Failure 404 {object} models.ErrorResponse
// @Router /prospects/{id} [put]
func (h *ProspectHandler) UpdateProspect(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	var req prospects.UpdateProspectRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	p, err := h.prospectService.Update(c.Request().Context(), id, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

// DeleteProspect godoc
// @Summary Delete a prospect
// @Description Deletes a prospect and its engagement history
// @Tags Prospects
// @Param id path int true "Prospect ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /prospects/{id} [delete]
func (h *ProspectHandler) DeleteProspect(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	if err := h.prospectService.Delete(c.Request().Context(), id); err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ImportProspects godoc
// @Summary Bulk import prospects
// @Description Imports a JSON array of prospects, skipping existing company names
// @Tags Prospects
// @Accept json
// @Produce json
// @Param prospects body []prospects.CreateProspectRequest true "Prospects to import"
// @Success 200 {object} prospects.ImportResult
// @Router /prospects/import [post]
func (h *ProspectHandler) ImportProspects(c echo.Context) error {
	var reqs []prospects.CreateProspectRequest
	if err := c.Bind(&reqs); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.prospectService.Import(c.Request().Context(), reqs)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// ImportProspectsCSV godoc
// @Summary Import prospects from CSV
// @Description Imports prospects from an uploaded CSV file with a header row
// @Tags Prospects
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file (company_name,industry,website,contact_person,email,phone)"
// @Success 200 {object} prospects.ImportResult
// @Failure 400 {object} models.ErrorResponse
// @Router /prospects/import-csv [post]
func (h *ProspectHandler) ImportProspectsCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	defer file.Close()

	result, err := h.prospectService.ImportCSV(c.Request().Context(), file)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetProspectClassification godoc
// @Summary Classify a prospect's industry
// @Description Buckets the prospect's industry label into a broad category
// @Tags Prospects
// @Produce json
// @Param id path int true "Prospect ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Router /prospects/{id}/classification [get]
func (h *ProspectHandler) GetProspectClassification(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	category, err := h.workflowService.Classify(c.Request().Context(), id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"category": category})
}

// GetProspectEngagements godoc
// @Summary Engagement history for a prospect
// @Description Returns the prospect's engagements, newest first
// @Tags Prospects
// @Produce json
// @Param id path int true "Prospect ID"
// @Success 200 {array} ent.Engagement
// @Failure 404 {object} models.ErrorResponse
// @Router /prospects/{id}/engagements [get]
func (h *ProspectHandler) GetProspectEngagements(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	items, err := h.engagementService.History(c.Request().Context(), id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

// ExportProspects godoc
// @Summary Export prospects as Excel
// @Description Streams an xlsx workbook of all prospects with engagement totals
// @Tags Prospects
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /prospects/export [get]
func (h *ProspectHandler) ExportProspects(c echo.Context) error {
	filename := "prospects-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	return h.exportService.WriteProspectsExcel(c.Request().Context(), c.Response())
}
