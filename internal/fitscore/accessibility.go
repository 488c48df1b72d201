package fitscore

import (
	"fmt"
	"strings"

	"github.com/tmacher/homefit/internal/access"
	"github.com/tmacher/homefit/internal/domain"
)

// noiseKeywords flag neighborhood claims that matter for sensory needs.
var noiseKeywords = []string{"noise", "noisy", "traffic", "highway", "freeway", "airport", "flight path"}

// scoreAccessibility checks every declared need against the snapshot and the
// neighborhood claims. The category weight is near-irrelevant when no needs
// are declared and dominant otherwise; the engine picks the weight.
func scoreAccessibility(profile *domain.BuyerProfile, snapshot *domain.PropertySnapshot, claims []domain.Claim) (Category, []AccessibilityFlag, []Suggestion) {
	cat := Category{Name: "Accessibility", Weight: weightAccessIdle}

	if !profile.HasAccessibilityNeeds() {
		cat.Score = 100
		cat.Details = "No accessibility needs declared."
		return cat, nil, nil
	}

	cat.Weight = weightAccessActive
	score := 100.0
	var flags []AccessibilityFlag
	var suggestions []Suggestion

	for _, need := range profile.AccessibilityNeeds {
		if need == domain.NeedNone || need == "" {
			continue
		}
		label := access.Label(need)

		switch need {
		case domain.NeedWheelchairFull, domain.NeedMobilityLimited, domain.NeedChronicFatigue:
			penalty, flag := checkStories(need, label, snapshot)
			score -= penalty
			flags = append(flags, flag)

		case domain.NeedSensorySensitivity:
			if hit := findNoiseClaim(claims); hit != "" {
				score -= penaltyNeighborhoodNoise
				flags = append(flags, AccessibilityFlag{
					Need:           need,
					Label:          label,
					Severity:       FlagConcern,
					Issue:          fmt.Sprintf("A neighborhood claim mentions noise: %q.", hit),
					Recommendation: "Visit at different times of day and ask about street and air traffic.",
				})
			} else {
				flags = append(flags, AccessibilityFlag{
					Need:     need,
					Label:    label,
					Severity: FlagClear,
					Issue:    "No noise or traffic concerns surfaced in the neighborhood claims.",
				})
			}

		case domain.NeedRespiratory:
			if snapshot != nil && snapshot.YearBuilt != nil && *snapshot.YearBuilt < respiratoryYearCutoff {
				score -= penaltyOlderConstruction
				flags = append(flags, AccessibilityFlag{
					Need:           need,
					Label:          label,
					Severity:       FlagConcern,
					Issue:          fmt.Sprintf("Built in %d; older construction correlates with ventilation and mold risk.", *snapshot.YearBuilt),
					Recommendation: "Order an air quality and mold inspection before committing.",
				})
			} else {
				flags = append(flags, AccessibilityFlag{
					Need:     need,
					Label:    label,
					Severity: FlagClear,
					Issue:    "No construction-age concerns found.",
				})
			}

		case domain.NeedAgingInPlace:
			switch {
			case snapshot == nil || snapshot.Stories == nil:
				score -= penaltyStoriesUnknown
				flags = append(flags, storiesUnknownFlag(need, label))
			case *snapshot.Stories > 1:
				score -= penaltyAgingMultiStory
				flags = append(flags, AccessibilityFlag{
					Need:           need,
					Label:          label,
					Severity:       FlagConcern,
					Issue:          "Multi-story layout works against aging in place.",
					Recommendation: "Check whether a main-floor bedroom and full bath exist or can be added.",
				})
				suggestions = append(suggestions, Suggestion{
					Category:    SuggestModify,
					Title:       "Plan a main-floor conversion",
					Description: "Converting a main-floor room to a bedroom with an accessible bath typically runs $15,000-$40,000.",
					Priority:    domain.PriorityMedium,
				})
			default:
				flags = append(flags, AccessibilityFlag{
					Need:           need,
					Label:          label,
					Severity:       FlagManageable,
					Issue:          "Single-story layout suits aging in place.",
					Recommendation: "Verify step-free entry and door hardware during a visit.",
				})
			}
		}
	}

	cat.Score = clampScore(score)
	cat.Details = accessibilityDetails(flags)
	return cat, flags, suggestions
}

// checkStories applies the story-count rules shared by the mobility needs.
func checkStories(need domain.AccessibilityNeed, label string, snapshot *domain.PropertySnapshot) (float64, AccessibilityFlag) {
	if snapshot == nil || snapshot.Stories == nil {
		return penaltyStoriesUnknown, storiesUnknownFlag(need, label)
	}

	if *snapshot.Stories > 1 {
		if need == domain.NeedWheelchairFull {
			return penaltyWheelchairMultiStory, AccessibilityFlag{
				Need:           need,
				Label:          label,
				Severity:       FlagBlocker,
				Issue:          fmt.Sprintf("Property has %d stories; full-time wheelchair use needs a single level.", *snapshot.Stories),
				Recommendation: "A residential elevator runs $30,000-$60,000 installed. Without one this property likely cannot work.",
			}
		}
		return penaltyMobilityMultiStory, AccessibilityFlag{
			Need:           need,
			Label:          label,
			Severity:       FlagConcern,
			Issue:          fmt.Sprintf("Property has %d stories, which adds daily strain.", *snapshot.Stories),
			Recommendation: "Confirm a bedroom and full bath exist on the main floor.",
		}
	}

	return 0, AccessibilityFlag{
		Need:           need,
		Label:          label,
		Severity:       FlagManageable,
		Issue:          "Single-story layout.",
		Recommendation: "Verify doorway widths and entry steps in person.",
	}
}

func storiesUnknownFlag(need domain.AccessibilityNeed, label string) AccessibilityFlag {
	return AccessibilityFlag{
		Need:           need,
		Label:          label,
		Severity:       FlagConcern,
		Issue:          "Story count is not in the records, so single-level living cannot be confirmed.",
		Recommendation: "Ask the listing agent for a floor plan before visiting.",
	}
}

// findNoiseClaim returns the first neighborhood claim mentioning noise or
// traffic, or empty when none do.
func findNoiseClaim(claims []domain.Claim) string {
	for _, claim := range claims {
		if claim.Category != domain.CategoryNeighborhoodFit {
			continue
		}
		text := strings.ToLower(claim.Statement + " " + claim.Explanation)
		for _, kw := range noiseKeywords {
			if strings.Contains(text, kw) {
				return claim.Statement
			}
		}
	}
	return ""
}

func accessibilityDetails(flags []AccessibilityFlag) string {
	var blockers, concerns int
	for _, f := range flags {
		switch f.Severity {
		case FlagBlocker:
			blockers++
		case FlagConcern:
			concerns++
		}
	}
	switch {
	case blockers > 0:
		return fmt.Sprintf("%d blocking issue(s) for your accessibility needs.", blockers)
	case concerns > 0:
		return fmt.Sprintf("%d accessibility concern(s) to investigate.", concerns)
	default:
		return "No accessibility issues found in the available data."
	}
}
