package personalization

import "strings"

// IndustryProfile bundles the keywords, pain points and selling points used
// to personalize outreach content for a business sector.
type IndustryProfile struct {
	Keywords      []string `json:"keywords"`
	PainPoints    []string `json:"pain_points"`
	SellingPoints []string `json:"selling_points"`
}

// industryKeys fixes the enumeration order for substring matching.
// First match wins, so the order is part of the contract.
var industryKeys = []string{"technology", "finance", "healthcare", "retail", "manufacturing"}

var industryProfiles = map[string]IndustryProfile{
	"technology": {
		Keywords:   []string{"innovation", "digital transformation", "security", "scalability"},
		PainPoints: []string{"data breaches", "tech obsolescence", "rapid growth risks"},
		SellingPoints: []string{
			"Tech-specific liability coverage",
			"Cyber insurance tailored for tech companies",
			"Coverage that scales with your company",
		},
	},
	"finance": {
		Keywords:   []string{"security", "compliance", "ROI", "risk management"},
		PainPoints: []string{"regulatory compliance", "financial liability", "client trust"},
		SellingPoints: []string{
			"Comprehensive financial liability protection",
			"Specialized coverage for financial institutions",
			"Client trust protection insurance",
		},
	},
	"healthcare": {
		Keywords:   []string{"compliance", "patient care", "efficiency", "risk mitigation"},
		PainPoints: []string{"medical malpractice", "HIPAA compliance", "healthcare costs"},
		SellingPoints: []string{
			"HIPAA-compliant insurance solutions",
			"Medical malpractice coverage",
			"Healthcare-specific liability insurance",
		},
	},
	"retail": {
		Keywords:   []string{"customer experience", "inventory", "liability", "business continuity"},
		PainPoints: []string{"property damage", "business interruption", "product liability"},
		SellingPoints: []string{
			"Retail-specific property insurance",
			"Business interruption coverage",
			"Product liability protection",
		},
	},
	"manufacturing": {
		Keywords:   []string{"efficiency", "safety", "supply chain", "equipment"},
		PainPoints: []string{"workplace injuries", "equipment failure", "supply chain disruptions"},
		SellingPoints: []string{
			"Worker's compensation tailored for manufacturing",
			"Equipment breakdown coverage",
			"Supply chain interruption insurance",
		},
	},
}

var genericProfile = IndustryProfile{
	Keywords:   []string{"protection", "coverage", "risk management"},
	PainPoints: []string{"liability risks", "unexpected costs", "business interruptions"},
	SellingPoints: []string{
		"Comprehensive business insurance",
		"Customized insurance solutions",
		"Risk management expertise",
	},
}

var industryObjections = map[string][]string{
	"technology":    {"We already have cyber insurance", "Our tech stack is secure", "Insurance is too expensive"},
	"finance":       {"We're already heavily insured", "We handle risk internally", "Regulatory compliance is sufficient"},
	"healthcare":    {"Our existing malpractice coverage is enough", "We're too small to need comprehensive coverage", "HIPAA compliance is our priority"},
	"retail":        {"Our business is too small", "We don't have valuable physical assets", "Online retail has different needs"},
	"manufacturing": {"We have long-standing insurance partners", "Our safety record is excellent", "Our equipment is well-maintained"},
}

var genericObjections = []string{"We already have insurance", "It's too expensive", "We don't see the value"}

// ResolveIndustryProfile resolves a free-text industry label to its profile.
// Matching is case-insensitive: exact match first, then bidirectional
// substring match over the fixed key order, then the generic profile.
func ResolveIndustryProfile(label string) IndustryProfile {
	normalized := strings.ToLower(label)

	if profile, ok := industryProfiles[normalized]; ok {
		return profile
	}

	for _, key := range industryKeys {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			return industryProfiles[key]
		}
	}

	return genericProfile
}

// ObjectionsFor returns the three likely objections for an industry label,
// falling back to generic objections when no known key appears in the label.
func ObjectionsFor(label string) []string {
	normalized := strings.ToLower(label)

	for _, key := range industryKeys {
		if strings.Contains(normalized, key) {
			return industryObjections[key]
		}
	}

	return genericObjections
}
