package personalization

import "github.com/jordanlanch/outreachhq/ent"

// Approach names
const (
	ApproachInitial     = "initial"
	ApproachWarm        = "warm follow-up"
	ApproachInterested  = "interested follow-up"
	ApproachAwareness   = "awareness follow-up"
	ApproachReEngage    = "re-engagement"
)

// ApproachProfile carries the tone/focus/CTA strategy selected from the
// prospect's prior engagement signals.
type ApproachProfile struct {
	Approach     string `json:"approach"`
	Tone         string `json:"tone"`
	Focus        string `json:"focus"`
	CallToAction string `json:"call_to_action"`
}

// ClassifyApproach maps an engagement history to an approach profile.
//
// The priority ladder is strict: responded beats clicked beats opened.
// Classification only counts flags, so the order of the history does not
// matter; callers conventionally pass it newest-first.
func ClassifyApproach(history []*ent.Engagement) ApproachProfile {
	if len(history) == 0 {
		return ApproachProfile{
			Approach:     ApproachInitial,
			Tone:         "informative and friendly",
			Focus:        "introduction and value proposition",
			CallToAction: "schedule a brief call",
		}
	}

	var opened, clicked, responded int
	for _, e := range history {
		if e.Opened {
			opened++
		}
		if e.Clicked {
			clicked++
		}
		if e.Responded {
			responded++
		}
	}

	switch {
	case responded > 0:
		return ApproachProfile{
			Approach:     ApproachWarm,
			Tone:         "appreciative and consultative",
			Focus:        "deepening the relationship",
			CallToAction: "schedule a detailed consultation",
		}
	case clicked > 0:
		return ApproachProfile{
			Approach:     ApproachInterested,
			Tone:         "helpful and proactive",
			Focus:        "addressing specific interests",
			CallToAction: "schedule a quick call to discuss specific solutions",
		}
	case opened > 0:
		return ApproachProfile{
			Approach:     ApproachAwareness,
			Tone:         "informative with new value points",
			Focus:        "building interest with more specific benefits",
			CallToAction: "check out more resources or schedule a call",
		}
	default:
		return ApproachProfile{
			Approach:     ApproachReEngage,
			Tone:         "direct and attention-grabbing",
			Focus:        "new angle or value proposition",
			CallToAction: "simple response or quick call",
		}
	}
}
