package fitscore

import (
	"fmt"
	"strings"
	"time"

	"github.com/tmacher/homefit/internal/domain"
)

// CheckFeature decides whether the snapshot satisfies one feature tag.
// Only a handful of tags are decidable from structured records: story count,
// garage text, HOA amount, construction year and lot size. Everything else
// returns unknown and is left to the claims pipeline; structured data cannot
// verify a pool, solar panels or school quality.
func CheckFeature(tag domain.FeatureTag, snapshot *domain.PropertySnapshot) (MatchStatus, string) {
	if snapshot == nil {
		return StatusUnknown, "No property records available."
	}

	switch tag {
	case domain.FeatureSingleStory:
		if snapshot.Stories == nil {
			return StatusUnknown, "Story count is not in the records."
		}
		if *snapshot.Stories == 1 {
			return StatusMatched, "Records confirm a single story."
		}
		return StatusMissing, fmt.Sprintf("Records show %d stories.", *snapshot.Stories)

	case domain.FeatureGarage:
		if snapshot.Garage == nil {
			return StatusUnknown, "No garage information in the records."
		}
		desc := strings.ToLower(strings.TrimSpace(*snapshot.Garage))
		if desc == "" {
			return StatusUnknown, "Garage field is empty in the records."
		}
		if strings.Contains(desc, "none") || strings.Contains(desc, "no garage") {
			return StatusMissing, "Records indicate no garage."
		}
		return StatusMatched, fmt.Sprintf("Records list a garage: %s.", *snapshot.Garage)

	case domain.FeatureNoHOA:
		if snapshot.HOA == nil {
			return StatusUnknown, "HOA status is not in the records."
		}
		if *snapshot.HOA > 0 {
			return StatusMissing, fmt.Sprintf("Records show a $%.0f/month HOA fee.", *snapshot.HOA)
		}
		return StatusMatched, "Records show no HOA fee."

	case domain.FeatureNewConstruction:
		if snapshot.YearBuilt == nil {
			return StatusUnknown, "Construction year is not in the records."
		}
		cutoff := int64(time.Now().UTC().Year() - newConstructionMaxAge)
		if *snapshot.YearBuilt >= cutoff {
			return StatusMatched, fmt.Sprintf("Built in %d.", *snapshot.YearBuilt)
		}
		return StatusMissing, fmt.Sprintf("Built in %d, older than %d years.", *snapshot.YearBuilt, newConstructionMaxAge)

	case domain.FeatureYard:
		if snapshot.LotSqft == nil {
			return StatusUnknown, "Lot size is not in the records."
		}
		if *snapshot.LotSqft >= yardMinLotSqft {
			return StatusMatched, fmt.Sprintf("Lot is %d sqft, room for a yard.", *snapshot.LotSqft)
		}
		return StatusMissing, fmt.Sprintf("Lot is only %d sqft.", *snapshot.LotSqft)

	default:
		return StatusUnknown, "Cannot be verified from property records; check the listing claims."
	}
}

// CheckDealbreaker reports whether a dealbreaker tag is violated. A
// dealbreaker names a requirement (for example no_hoa), so a violation is
// the predicate confirming the requirement is broken. An unknown never
// counts as a violation.
func CheckDealbreaker(tag domain.FeatureTag, snapshot *domain.PropertySnapshot) (bool, string) {
	status, explanation := CheckFeature(tag, snapshot)
	if status == StatusMissing {
		return true, explanation
	}
	return false, explanation
}

// scoreFeatures walks the three buyer feature sets, recording every check
// and penalizing misses. It also reports whether any dealbreaker fired,
// which the engine turns into a hard cap.
func scoreFeatures(profile *domain.BuyerProfile, snapshot *domain.PropertySnapshot) (Category, []FeatureMatch, []FeatureMatch, bool) {
	cat := Category{Name: "Feature Match", Weight: weightFeatures}
	score := 100.0
	var matched, missed []FeatureMatch
	dealbreakerHit := false

	for _, tag := range profile.MustHaves {
		status, explanation := CheckFeature(tag, snapshot)
		fm := FeatureMatch{
			Feature:     tag,
			Label:       FeatureLabel(tag),
			Importance:  ImportanceMustHave,
			Status:      status,
			Explanation: explanation,
		}
		switch status {
		case StatusMatched:
			matched = append(matched, fm)
		case StatusMissing:
			score -= penaltyMustHaveMissing
			missed = append(missed, fm)
		default:
			score -= penaltyMustHaveUnknown
			missed = append(missed, fm)
		}
	}

	for _, tag := range profile.NiceToHaves {
		status, explanation := CheckFeature(tag, snapshot)
		fm := FeatureMatch{
			Feature:     tag,
			Label:       FeatureLabel(tag),
			Importance:  ImportanceNiceToHave,
			Status:      status,
			Explanation: explanation,
		}
		switch status {
		case StatusMatched:
			matched = append(matched, fm)
		case StatusMissing:
			score -= penaltyNiceToHaveMissing
			missed = append(missed, fm)
		}
	}

	for _, tag := range profile.Dealbreakers {
		violated, explanation := CheckDealbreaker(tag, snapshot)
		if violated {
			dealbreakerHit = true
			score -= penaltyDealbreakerHit
			missed = append(missed, FeatureMatch{
				Feature:     tag,
				Label:       FeatureLabel(tag),
				Importance:  ImportanceDealbreaker,
				Status:      StatusViolated,
				Explanation: explanation,
			})
			continue
		}
		if status, _ := CheckFeature(tag, snapshot); status == StatusMatched {
			matched = append(matched, FeatureMatch{
				Feature:     tag,
				Label:       FeatureLabel(tag),
				Importance:  ImportanceDealbreaker,
				Status:      StatusMatched,
				Explanation: explanation,
			})
		}
	}

	cat.Score = clampScore(score)
	cat.Details = featureDetails(len(matched), len(missed), dealbreakerHit)
	return cat, matched, missed, dealbreakerHit
}

func featureDetails(matched, missed int, dealbreakerHit bool) string {
	if dealbreakerHit {
		return "A dealbreaker condition is present on this property."
	}
	if missed == 0 && matched == 0 {
		return "No features to check against the records."
	}
	return fmt.Sprintf("%d feature(s) confirmed, %d missing or unverifiable.", matched, missed)
}

// FeatureLabel renders a feature tag for display. The switch is exhaustive
// over the known vocabulary; unknown tags fall back to a cleaned-up code.
func FeatureLabel(tag domain.FeatureTag) string {
	switch tag {
	case domain.FeatureSingleStory:
		return "Single story"
	case domain.FeatureGarage:
		return "Garage"
	case domain.FeatureYard:
		return "Yard"
	case domain.FeatureNoHOA:
		return "No HOA"
	case domain.FeatureNewConstruction:
		return "New construction"
	case domain.FeaturePool:
		return "Pool"
	case domain.FeatureSolar:
		return "Solar panels"
	case domain.FeatureEVCharging:
		return "EV charging"
	case domain.FeatureADU:
		return "Accessory dwelling unit"
	case domain.FeatureGoodSchools:
		return "Good schools"
	case domain.FeatureQuietStreet:
		return "Quiet street"
	case domain.FeatureWalkable:
		return "Walkable area"
	default:
		return strings.ReplaceAll(string(tag), "_", " ")
	}
}
