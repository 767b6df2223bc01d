package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// ValidationResult contains the result of phone number validation.
type ValidationResult struct {
	IsValid             bool   `json:"is_valid"`
	E164Format          string `json:"e164_format"`
	InternationalFormat string `json:"international_format"`
	NationalFormat      string `json:"national_format"`
	CountryCode         string `json:"country_code"`
}

// Validate parses a phone number and reports its canonical formats.
// countryCode is the ISO region used for numbers without a + prefix;
// it defaults to US.
func Validate(phone, countryCode string) (*ValidationResult, error) {
	if phone == "" {
		return nil, fmt.Errorf("phone number cannot be empty")
	}

	if countryCode == "" {
		countryCode = "US"
	}

	parsed, err := phonenumbers.Parse(phone, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}

	return &ValidationResult{
		IsValid:             phonenumbers.IsValidNumber(parsed),
		E164Format:          phonenumbers.Format(parsed, phonenumbers.E164),
		InternationalFormat: phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL),
		NationalFormat:      phonenumbers.Format(parsed, phonenumbers.NATIONAL),
		CountryCode:         phonenumbers.GetRegionCodeForNumber(parsed),
	}, nil
}

// Normalize returns the E.164 form of a valid phone number.
func Normalize(phone, countryCode string) (string, error) {
	result, err := Validate(phone, countryCode)
	if err != nil {
		return "", err
	}
	if !result.IsValid {
		return "", fmt.Errorf("invalid phone number: %s", phone)
	}
	return result.E164Format, nil
}
