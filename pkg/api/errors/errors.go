package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/outreachhq/pkg/domain"
	"github.com/jordanlanch/outreachhq/pkg/models"
)

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// FromDomain maps a domain error to its HTTP response: not found → 404,
// missing contact info and bad request → 400, duplicate prospect → 409,
// everything else (delivery failures included) → 500.
func FromDomain(c echo.Context, err error) error {
	var domainErr *domain.DomainError
	status := http.StatusInternalServerError

	switch {
	case domain.IsNotFound(err):
		status = http.StatusNotFound
	case domain.IsMissingContactInfo(err), domain.IsBadRequest(err):
		status = http.StatusBadRequest
	case domain.IsDuplicateProspect(err):
		status = http.StatusConflict
	case domain.IsDeliveryFailure(err):
		log.Printf("[DELIVERY ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)
	default:
		return InternalError(c, err)
	}

	if de, ok := err.(*domain.DomainError); ok {
		domainErr = de
	} else {
		return InternalError(c, err)
	}

	return c.JSON(status, models.ErrorResponse{
		Error:   domainErr.Code,
		Message: domainErr.Message,
	})
}
