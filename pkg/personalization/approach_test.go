package personalization

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordanlanch/outreachhq/ent"
)

func TestClassifyApproach_EmptyHistory(t *testing.T) {
	profile := ClassifyApproach(nil)

	assert.Equal(t, ApproachInitial, profile.Approach)
	assert.Equal(t, "informative and friendly", profile.Tone)
	assert.Equal(t, "schedule a brief call", profile.CallToAction)
}

func TestClassifyApproach_Ladder(t *testing.T) {
	tests := []struct {
		name     string
		history  []*ent.Engagement
		expected string
	}{
		{
			"responded wins over everything",
			[]*ent.Engagement{
				{Opened: true, Clicked: true},
				{Responded: true},
			},
			ApproachWarm,
		},
		{
			"clicked wins over opened",
			[]*ent.Engagement{
				{Opened: true},
				{Opened: true, Clicked: true},
			},
			ApproachInterested,
		},
		{
			"opened only",
			[]*ent.Engagement{{Opened: true}},
			ApproachAwareness,
		},
		{
			"history with no signals",
			[]*ent.Engagement{{}, {}},
			ApproachReEngage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyApproach(tt.history).Approach)
		})
	}
}

func TestClassifyApproach_OrderIndependent(t *testing.T) {
	forward := []*ent.Engagement{{Opened: true}, {Clicked: true}, {}}
	backward := []*ent.Engagement{{}, {Clicked: true}, {Opened: true}}

	assert.Equal(t, ClassifyApproach(forward), ClassifyApproach(backward))
}
