// Package trust aggregates per-claim verdicts into category-level summaries.
// The trust score itself is computed upstream and only passes through here.
package trust

import "github.com/tmacher/homefit/internal/domain"

// CategorySummary counts claim verdicts within one fixed category.
type CategorySummary struct {
	Category       domain.ClaimCategory `json:"category"`
	Total          int                  `json:"total"`
	Verified       int                  `json:"verified"`
	Unverified     int                  `json:"unverified"`
	Contradictions int                  `json:"contradictions"`
}

// Summarize partitions claims by category and verdict. It iterates the fixed
// category enumeration rather than the claims, so every category appears in
// the result even with zero claims and the breakdown shape is stable for
// charting. Confidence and severity are ignored here; they only matter for
// display ordering and the fit engine's trust weighting.
func Summarize(claims []domain.Claim) []CategorySummary {
	categories := domain.ClaimCategories()
	summaries := make([]CategorySummary, 0, len(categories))

	for _, category := range categories {
		summary := CategorySummary{Category: category}
		for _, claim := range claims {
			if claim.Category != category {
				continue
			}
			summary.Total++
			switch claim.Verdict {
			case domain.VerdictVerified:
				summary.Verified++
			case domain.VerdictUnverified:
				summary.Unverified++
			case domain.VerdictContradiction:
				summary.Contradictions++
			}
		}
		summaries = append(summaries, summary)
	}

	return summaries
}

// TrustLabel buckets a 0-100 trust score for display.
func TrustLabel(score int) string {
	switch {
	case score >= 80:
		return "trustworthy"
	case score >= 60:
		return "mostly_consistent"
	case score >= 40:
		return "mixed_signals"
	default:
		return "serious_concerns"
	}
}
