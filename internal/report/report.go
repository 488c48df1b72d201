// Package report shapes engine output into what a presentation layer
// renders. Grouping, ordering and display-only derived values live here;
// nothing in this package may influence a score.
package report

import (
	"fmt"
	"sort"

	"github.com/tmacher/homefit/internal/domain"
	"github.com/tmacher/homefit/internal/fitscore"
	"github.com/tmacher/homefit/internal/trust"
)

// TrustSection is the trust side of the report: the externally computed
// score plus the per-category verdict breakdown.
type TrustSection struct {
	Score      int                     `json:"score"`
	Label      string                  `json:"label"`
	Categories []trust.CategorySummary `json:"categories"`
	TopClaims  []ClaimView             `json:"top_claims,omitempty"`
}

// ClaimView is a claim prepared for display.
type ClaimView struct {
	Category    domain.ClaimCategory `json:"category"`
	Statement   string               `json:"statement"`
	Verdict     domain.Verdict       `json:"verdict"`
	Severity    domain.Severity      `json:"severity"`
	Confidence  float64              `json:"confidence"`
	Explanation string               `json:"explanation,omitempty"`
}

// FitSection is the fit side of the report, with flags and suggestions in
// display order.
type FitSection struct {
	Score              int                          `json:"score"`
	Label              fitscore.Label               `json:"label"`
	Summary            string                       `json:"summary"`
	Breakdown          []fitscore.Category          `json:"breakdown"`
	MatchedFeatures    []fitscore.FeatureMatch      `json:"matched_features"`
	MissedFeatures     []fitscore.FeatureMatch      `json:"missed_features"`
	AccessibilityFlags []fitscore.AccessibilityFlag `json:"accessibility_flags"`
	Suggestions        []fitscore.Suggestion        `json:"suggestions"`
}

// PriceContext carries display-only market comparisons.
type PriceContext struct {
	EffectivePrice     *float64 `json:"effective_price,omitempty"`
	MedianAreaPrice    *float64 `json:"median_area_price,omitempty"`
	PctVsAreaMedian    *float64 `json:"pct_vs_area_median,omitempty"`
	PricePerSqft       *float64 `json:"price_per_sqft,omitempty"`
	PctVsAreaMedianPsf *float64 `json:"pct_vs_area_median_psf,omitempty"`
}

// Report is the complete presentation payload for one analysis.
type Report struct {
	Address     string              `json:"address"`
	Trust       TrustSection        `json:"trust"`
	Fit         FitSection          `json:"fit"`
	Price       PriceContext        `json:"price"`
	ActionItems []domain.ActionItem `json:"action_items,omitempty"`
}

// Build assembles the report from already-computed results. Pure data
// shaping; inputs are not modified.
func Build(address string, result *fitscore.Result, summaries []trust.CategorySummary, trustScore int, trustLabel string, claims []domain.Claim, market *domain.MarketContext, effectivePrice *float64, actions []domain.ActionItem) *Report {
	r := &Report{
		Address: address,
		Trust: TrustSection{
			Score:      trustScore,
			Label:      trustLabel,
			Categories: summaries,
			TopClaims:  topClaims(claims),
		},
		Fit: FitSection{
			Score:              result.OverallScore,
			Label:              result.Label,
			Summary:            result.Summary,
			Breakdown:          result.Breakdown,
			MatchedFeatures:    append([]fitscore.FeatureMatch(nil), result.MatchedFeatures...),
			MissedFeatures:     append([]fitscore.FeatureMatch(nil), result.MissedFeatures...),
			AccessibilityFlags: sortFlags(result.AccessibilityFlags),
			Suggestions:        sortSuggestions(result.Suggestions),
		},
		Price:       priceContext(effectivePrice, market),
		ActionItems: sortActions(actions),
	}
	return r
}

// topClaims orders claims by severity then confidence for display.
func topClaims(claims []domain.Claim) []ClaimView {
	views := make([]ClaimView, 0, len(claims))
	for _, c := range claims {
		views = append(views, ClaimView{
			Category:    c.Category,
			Statement:   c.Statement,
			Verdict:     c.Verdict,
			Severity:    c.Severity,
			Confidence:  c.Confidence,
			Explanation: c.Explanation,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		ri, rj := domain.SeverityRank(views[i].Severity), domain.SeverityRank(views[j].Severity)
		if ri != rj {
			return ri < rj
		}
		return views[i].Confidence > views[j].Confidence
	})
	return views
}

func sortFlags(flags []fitscore.AccessibilityFlag) []fitscore.AccessibilityFlag {
	out := append([]fitscore.AccessibilityFlag(nil), flags...)
	sort.SliceStable(out, func(i, j int) bool {
		return fitscore.FlagSeverityRank(out[i].Severity) < fitscore.FlagSeverityRank(out[j].Severity)
	})
	return out
}

func sortSuggestions(suggestions []fitscore.Suggestion) []fitscore.Suggestion {
	out := append([]fitscore.Suggestion(nil), suggestions...)
	sort.SliceStable(out, func(i, j int) bool {
		return domain.PriorityRank(out[i].Priority) < domain.PriorityRank(out[j].Priority)
	})
	return out
}

func sortActions(actions []domain.ActionItem) []domain.ActionItem {
	out := append([]domain.ActionItem(nil), actions...)
	sort.SliceStable(out, func(i, j int) bool {
		return domain.PriorityRank(out[i].Priority) < domain.PriorityRank(out[j].Priority)
	})
	return out
}

// priceContext computes the percentage deltas shown next to the price.
func priceContext(effectivePrice *float64, market *domain.MarketContext) PriceContext {
	pc := PriceContext{EffectivePrice: effectivePrice}
	if market == nil {
		return pc
	}
	pc.MedianAreaPrice = market.MedianAreaPrice
	pc.PricePerSqft = market.PricePerSqft

	if effectivePrice != nil && market.MedianAreaPrice != nil && *market.MedianAreaPrice > 0 {
		pct := (*effectivePrice - *market.MedianAreaPrice) / *market.MedianAreaPrice * 100
		pc.PctVsAreaMedian = &pct
	}
	if market.PricePerSqft != nil && market.AreaMedianPpsf != nil && *market.AreaMedianPpsf > 0 {
		pct := (*market.PricePerSqft - *market.AreaMedianPpsf) / *market.AreaMedianPpsf * 100
		pc.PctVsAreaMedianPsf = &pct
	}
	return pc
}

// Headline is a one-line summary for logs and list views.
func (r *Report) Headline() string {
	return fmt.Sprintf("%s: trust %d (%s), fit %d (%s)", r.Address, r.Trust.Score, r.Trust.Label, r.Fit.Score, r.Fit.Label)
}
