package fitscore

import (
	"fmt"
	"math"

	"github.com/tmacher/homefit/internal/domain"
)

// ResolveEffectivePrice picks the single price used for budget comparison.
// Priority order: listing price, then tax-assessed value, then last sale
// price. The first value that is present and positive wins; nil means no
// usable price exists anywhere.
func ResolveEffectivePrice(listPrice *float64, snapshot *domain.PropertySnapshot) *float64 {
	candidates := []*float64{listPrice}
	if snapshot != nil {
		candidates = append(candidates, snapshot.TaxAssessedValue, snapshot.LastSalePrice)
	}
	for _, c := range candidates {
		if c != nil && *c > 0 {
			v := *c
			return &v
		}
	}
	return nil
}

// scoreBudget computes the budget category and any price suggestions.
func scoreBudget(profile *domain.BuyerProfile, price *float64) (Category, []Suggestion) {
	cat := Category{Name: "Budget Fit", Weight: weightBudget}

	if price == nil {
		cat.Score = scoreBudgetNoPrice
		cat.Details = "No price data available. Score is neutral until a price is known."
		return cat, nil
	}

	max := profile.Budget.Max
	if max <= 0 {
		cat.Score = scoreBudgetUnset
		cat.Details = fmt.Sprintf("Effective price $%.0f, but no budget ceiling was provided.", *price)
		return cat, nil
	}

	stretch := profile.Budget.Stretch
	if stretch < max {
		stretch = max
	}

	switch {
	case *price <= max:
		cat.Score = scoreBudgetInRange
		cat.Details = fmt.Sprintf("Effective price $%.0f is within your comfortable budget of $%.0f.", *price, max)
		return cat, nil

	case *price <= stretch:
		overBy := *price - max
		stretchRange := stretch - max
		score := float64(stretchZoneTop)
		if stretchRange > 0 {
			score = stretchZoneTop - (overBy/stretchRange)*stretchZoneSpan
		}
		cat.Score = clampScore(score)
		cat.Details = fmt.Sprintf("Effective price $%.0f is $%.0f over your comfortable budget, inside your stretch ceiling of $%.0f.", *price, overBy, stretch)
		return cat, []Suggestion{{
			Category:    SuggestWatchOut,
			Title:       "Price is in your stretch zone",
			Description: fmt.Sprintf("At $%.0f this property is $%.0f over your comfortable budget. Confirm the monthly payment still works before offering.", *price, overBy),
			Priority:    domain.PriorityMedium,
		}}

	default:
		pctOver := (*price - stretch) / stretch * 100
		score := math.Max(0, overStretchBase-pctOver/overStretchPctDivisor)
		cat.Score = clampScore(score)
		cat.Details = fmt.Sprintf("Effective price $%.0f exceeds your stretch ceiling of $%.0f by %.0f%%.", *price, stretch, pctOver)
		return cat, []Suggestion{{
			Category:    SuggestWatchOut,
			Title:       "Price exceeds your absolute ceiling",
			Description: fmt.Sprintf("This property is %.0f%% over your stretch budget. It would take a large price cut to become affordable.", pctOver),
			Priority:    domain.PriorityHigh,
		}}
	}
}

// clampScore rounds to the nearest integer and pins the result to [0, 100].
func clampScore(v float64) int {
	s := int(math.Round(v))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
