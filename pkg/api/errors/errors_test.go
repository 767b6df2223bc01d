package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/outreachhq/pkg/domain"
	"github.com/jordanlanch/outreachhq/pkg/models"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"not found", domain.NewNotFoundError("prospect"), http.StatusNotFound, "NOT_FOUND"},
		{"duplicate prospect", domain.NewDuplicateProspectError("Acme Tech"), http.StatusConflict, "DUPLICATE_PROSPECT"},
		{"missing contact info", domain.NewMissingContactInfoError("email", "Acme Tech"), http.StatusBadRequest, "MISSING_CONTACT_INFO"},
		{"bad request", domain.NewBadRequestError("nope"), http.StatusBadRequest, "BAD_REQUEST"},
		{"delivery failure", domain.NewDeliveryFailureError(errors.New("smtp down")), http.StatusInternalServerError, "DELIVERY_FAILURE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, FromDomain(c, tt.err))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeError(t, rec).Error)
		})
	}
}

func TestFromDomain_PlainError(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, FromDomain(c, errors.New("something exploded")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "internal_error", body.Error)
	assert.NotContains(t, body.Message, "exploded")
}

func TestValidationError_HidesDetails(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, ValidationError(c, errors.New("field X is garbage")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "validation_error", body.Error)
	assert.NotContains(t, body.Message, "garbage")
}
