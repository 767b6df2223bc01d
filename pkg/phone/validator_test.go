package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("Valid US number", func(t *testing.T) {
		result, err := Validate("(212) 555-0123", "US")
		require.NoError(t, err)
		assert.Equal(t, "+12125550123", result.E164Format)
		assert.Equal(t, "US", result.CountryCode)
	})

	t.Run("International prefix overrides region", func(t *testing.T) {
		result, err := Validate("+442071838750", "US")
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, "GB", result.CountryCode)
	})

	t.Run("Empty number", func(t *testing.T) {
		_, err := Validate("", "US")
		assert.Error(t, err)
	})

	t.Run("Unparseable input", func(t *testing.T) {
		_, err := Validate("not-a-number", "US")
		assert.Error(t, err)
	})
}

func TestNormalize(t *testing.T) {
	t.Run("Returns E164", func(t *testing.T) {
		normalized, err := Normalize("212-555-0123", "")
		require.NoError(t, err)
		assert.Equal(t, "+12125550123", normalized)
	})

	t.Run("Rejects invalid numbers", func(t *testing.T) {
		_, err := Normalize("12345", "US")
		assert.Error(t, err)
	})
}
