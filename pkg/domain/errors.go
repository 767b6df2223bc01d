package domain

import "fmt"

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeDuplicateProspect  = "DUPLICATE_PROSPECT"
	ErrCodeMissingContactInfo = "MISSING_CONTACT_INFO"
	ErrCodeDeliveryFailure    = "DELIVERY_FAILURE"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// Error constructors

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewDuplicateProspectError reports a create with an existing company name
func NewDuplicateProspectError(companyName string) error {
	return &DomainError{
		Code:    ErrCodeDuplicateProspect,
		Message: fmt.Sprintf("Prospect with company name %s already exists", companyName),
	}
}

// NewMissingContactInfoError reports dispatch attempted without the required
// contact field (email address or phone number)
func NewMissingContactInfoError(field, companyName string) error {
	return &DomainError{
		Code:    ErrCodeMissingContactInfo,
		Message: fmt.Sprintf("No %s for prospect: %s", field, companyName),
	}
}

// NewDeliveryFailureError reports a provider-rejected send
func NewDeliveryFailureError(err error) error {
	return &DomainError{
		Code:    ErrCodeDeliveryFailure,
		Message: "Delivery provider rejected the send",
		Err:     err,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(msg string) error {
	return &DomainError{
		Code:    ErrCodeBadRequest,
		Message: msg,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(err error) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// Helper functions to check error types

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeNotFound
	}
	return false
}

// IsDuplicateProspect checks if the error is a duplicate prospect error
func IsDuplicateProspect(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeDuplicateProspect
	}
	return false
}

// IsMissingContactInfo checks if the error is a missing contact info error
func IsMissingContactInfo(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeMissingContactInfo
	}
	return false
}

// IsDeliveryFailure checks if the error is a delivery failure error
func IsDeliveryFailure(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeDeliveryFailure
	}
	return false
}

// IsBadRequest checks if the error is a bad request error
func IsBadRequest(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeBadRequest
	}
	return false
}

// GetErrorCode extracts the error code from a domain error
func GetErrorCode(err error) string {
	if de, ok := err.(*DomainError); ok {
		return de.Code
	}
	return ErrCodeInternal
}
