// Package access holds the static accessibility requirement table: what each
// declared need demands from a property and how to phrase it to the buyer.
package access

import "github.com/tmacher/homefit/internal/domain"

// Requirement describes what one accessibility need asks of a property.
type Requirement struct {
	Label        string
	Requirements []string
}

var table = map[domain.AccessibilityNeed]Requirement{
	domain.NeedWheelchairFull: {
		Label: "Full-time wheelchair use",
		Requirements: []string{
			"Single-story layout or elevator",
			"Step-free entry",
			"Doorways at least 36 inches wide",
			"Roll-under counters and accessible bathroom",
		},
	},
	domain.NeedMobilityLimited: {
		Label: "Limited mobility",
		Requirements: []string{
			"Single-story layout strongly preferred",
			"Few or no entry steps",
			"Grab-bar-ready bathroom walls",
		},
	},
	domain.NeedChronicFatigue: {
		Label: "Chronic fatigue or pain",
		Requirements: []string{
			"Single-story layout preferred",
			"Main-floor bedroom and laundry",
		},
	},
	domain.NeedSensorySensitivity: {
		Label: "Sensory sensitivity",
		Requirements: []string{
			"Quiet street away from highways and flight paths",
			"Sound insulation between rooms",
		},
	},
	domain.NeedRespiratory: {
		Label: "Respiratory condition",
		Requirements: []string{
			"Modern ventilation and no mold history",
			"Distance from heavy traffic corridors",
		},
	},
	domain.NeedAgingInPlace: {
		Label: "Aging in place",
		Requirements: []string{
			"Main-floor bedroom and full bath",
			"Step-free entry or ramp-ready approach",
			"Lever-style door hardware",
		},
	},
}

// Lookup returns the requirement entry for a need. The second return is
// false for the "none" sentinel and anything unknown.
func Lookup(need domain.AccessibilityNeed) (Requirement, bool) {
	req, ok := table[need]
	return req, ok
}

// Label returns the human-readable label for a need, falling back to the raw
// code so an unknown need never renders blank.
func Label(need domain.AccessibilityNeed) string {
	if req, ok := table[need]; ok {
		return req.Label
	}
	return string(need)
}

// Needs lists the needs the wizard offers, in display order.
func Needs() []domain.AccessibilityNeed {
	return []domain.AccessibilityNeed{
		domain.NeedWheelchairFull,
		domain.NeedMobilityLimited,
		domain.NeedChronicFatigue,
		domain.NeedSensorySensitivity,
		domain.NeedRespiratory,
		domain.NeedAgingInPlace,
	}
}
