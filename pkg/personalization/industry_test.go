package personalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIndustryProfile_ExactMatch(t *testing.T) {
	profile := ResolveIndustryProfile("Technology")

	assert.Contains(t, profile.Keywords, "innovation")
	assert.Contains(t, profile.PainPoints, "data breaches")
	assert.Contains(t, profile.SellingPoints, "Cyber insurance tailored for tech companies")
}

func TestResolveIndustryProfile_SubstringMatch(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected string
	}{
		{"key inside label", "Financial Technology", "technology"},
		{"label inside key", "tech", "technology"},
		{"healthcare variant", "Healthcare Services", "healthcare"},
		{"retail variant", "Retail & E-commerce", "retail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := ResolveIndustryProfile(tt.label)
			assert.Equal(t, industryProfiles[tt.expected], profile)
		})
	}
}

func TestResolveIndustryProfile_OrderIsDeterministic(t *testing.T) {
	// "Financial Technology" contains both "technology" and would lowercase-
	// match nothing else exactly; the fixed key order resolves it to
	// technology every time.
	for i := 0; i < 20; i++ {
		profile := ResolveIndustryProfile("Financial Technology")
		assert.Equal(t, industryProfiles["technology"], profile)
	}
}

func TestResolveIndustryProfile_GenericFallback(t *testing.T) {
	profile := ResolveIndustryProfile("Agriculture")

	assert.Equal(t, genericProfile, profile)
	assert.Contains(t, profile.PainPoints, "liability risks")
}

func TestObjectionsFor(t *testing.T) {
	assert.Contains(t, ObjectionsFor("Technology"), "We already have cyber insurance")
	assert.Contains(t, ObjectionsFor("healthcare startups"), "HIPAA compliance is our priority")
	assert.Equal(t, genericObjections, ObjectionsFor("Agriculture"))
	assert.Len(t, ObjectionsFor("Finance"), 3)
}
