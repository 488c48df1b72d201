package fitscore

import (
	"fmt"
	"strings"

	"github.com/tmacher/homefit/internal/domain"
)

// scoreSize penalizes confirmed shortfalls against the buyer's minimums and,
// more cheaply, fields the records simply do not cover. Uncertainty costs
// less than a confirmed miss.
func scoreSize(profile *domain.BuyerProfile, snapshot *domain.PropertySnapshot) Category {
	cat := Category{Name: "Size & Layout", Weight: weightSize}

	if snapshot == nil {
		cat.Score = scoreSizeNoSnapshot
		cat.Details = "No property records available to judge size."
		return cat
	}

	score := 100.0
	var notes []string
	ls := profile.Lifestyle

	if ls.MinBeds > 0 {
		switch {
		case snapshot.Beds == nil:
			score -= penaltyBedsUnknown
			notes = append(notes, "bedroom count unknown")
		case *snapshot.Beds < ls.MinBeds:
			deficit := ls.MinBeds - *snapshot.Beds
			score -= penaltyPerMissingBed * deficit
			notes = append(notes, fmt.Sprintf("%.1f bedrooms short of your minimum %.0f", deficit, ls.MinBeds))
		}
	}

	if ls.MinBaths > 0 {
		switch {
		case snapshot.Baths == nil:
			score -= penaltyBathsUnknown
			notes = append(notes, "bathroom count unknown")
		case *snapshot.Baths < ls.MinBaths:
			score -= penaltyBathShortfall
			notes = append(notes, fmt.Sprintf("%.1f bathrooms is below your minimum %.1f", *snapshot.Baths, ls.MinBaths))
		}
	}

	if ls.MinSqft > 0 {
		switch {
		case snapshot.Sqft == nil:
			score -= penaltySqftUnknown
			notes = append(notes, "square footage unknown")
		case *snapshot.Sqft < ls.MinSqft:
			shortfall := float64(ls.MinSqft-*snapshot.Sqft) / float64(ls.MinSqft)
			score -= penaltySqftShortfall * shortfall
			notes = append(notes, fmt.Sprintf("%d sqft is %.0f%% below your minimum %d", *snapshot.Sqft, shortfall*100, ls.MinSqft))
		}
	}

	cat.Score = clampScore(score)
	if len(notes) == 0 {
		cat.Details = "Meets your size requirements."
	} else {
		cat.Details = strings.Join(notes, "; ")
	}
	return cat
}
