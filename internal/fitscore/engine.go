package fitscore

import (
	"github.com/tmacher/homefit/internal/domain"
)

// Input bundles everything the engine consumes besides the buyer profile.
// All of it was resolved upstream; the engine does no I/O of its own.
type Input struct {
	Snapshot   *domain.PropertySnapshot
	Market     *domain.MarketContext
	TrustScore int
	TrustLabel string
	ListPrice  *float64
	Claims     []domain.Claim
}

// Compute scores one property against one buyer. It is deterministic and
// total: any well-typed input produces a fully populated result, with
// missing data degrading to documented fallback scores instead of errors.
// A nil profile means "no personalization" and scores against an empty one.
func Compute(profile *domain.BuyerProfile, in Input) *Result {
	if profile == nil {
		profile = &domain.BuyerProfile{}
	}

	price := ResolveEffectivePrice(in.ListPrice, in.Snapshot)

	budget, budgetSuggestions := scoreBudget(profile, price)
	size := scoreSize(profile, in.Snapshot)
	accessCat, flags, accessSuggestions := scoreAccessibility(profile, in.Snapshot, in.Claims)
	featureCat, matched, missed, dealbreakerHit := scoreFeatures(profile, in.Snapshot)
	trustCat := scoreTrust(in.TrustScore, in.TrustLabel)
	lifestyle, lifestyleSuggestions := scoreLifestyle(profile, in.Snapshot)

	// Lifestyle takes the remainder of the weight budget, floored so it
	// always counts for something.
	lifestyle.Weight = 1 - (budget.Weight + size.Weight + accessCat.Weight + featureCat.Weight + trustCat.Weight)
	if lifestyle.Weight < weightLifestyleFloor {
		lifestyle.Weight = weightLifestyleFloor
	}

	breakdown := []Category{budget, size, accessCat, featureCat, trustCat, lifestyle}

	var weightSum, weighted float64
	for _, cat := range breakdown {
		weightSum += cat.Weight
		weighted += cat.Weight * float64(cat.Score)
	}
	// Normalize so the published weights always sum to one, even when the
	// lifestyle floor pushed the raw sum past it.
	for i := range breakdown {
		breakdown[i].Weight = breakdown[i].Weight / weightSum
	}

	score := clampScore(weighted / weightSum)

	blocked := dealbreakerHit || hasBlocker(flags)
	if blocked && score > capDealbreaker {
		score = capDealbreaker
	}
	if limit, ok := overStretchCap(profile, price); ok && score > limit {
		score = limit
	}

	label := deriveLabel(score, blocked)

	suggestions := make([]Suggestion, 0, len(budgetSuggestions)+len(accessSuggestions)+len(lifestyleSuggestions)+1)
	suggestions = append(suggestions, budgetSuggestions...)
	suggestions = append(suggestions, accessSuggestions...)
	suggestions = append(suggestions, lifestyleSuggestions...)
	if s, ok := petHOASuggestion(profile, in.Snapshot); ok {
		suggestions = append(suggestions, s)
	}

	return &Result{
		OverallScore:       score,
		Label:              label,
		Summary:            summaryFor(label),
		Breakdown:          breakdown,
		MatchedFeatures:    matched,
		MissedFeatures:     missed,
		AccessibilityFlags: flags,
		Suggestions:        suggestions,
	}
}

// scoreTrust passes the externally computed trust score through as its own
// category, coupling listing honesty to buyer fit.
func scoreTrust(trustScore int, trustLabel string) Category {
	cat := Category{Name: "Trust & Risk", Weight: weightTrust}
	if trustScore < 0 {
		trustScore = 0
	}
	if trustScore > 100 {
		trustScore = 100
	}
	cat.Score = trustScore
	if trustLabel != "" {
		cat.Details = "Listing trust rating: " + trustLabel + "."
	} else {
		cat.Details = "Listing trust rating from the claim verification pass."
	}
	return cat
}

func hasBlocker(flags []AccessibilityFlag) bool {
	for _, f := range flags {
		if f.Severity == FlagBlocker {
			return true
		}
	}
	return false
}

// overStretchCap returns the price-based hard cap, if one applies.
func overStretchCap(profile *domain.BuyerProfile, price *float64) (int, bool) {
	if price == nil || profile.Budget.Max <= 0 {
		return 0, false
	}
	stretch := profile.Budget.Stretch
	if stretch < profile.Budget.Max {
		stretch = profile.Budget.Max
	}
	if *price <= stretch {
		return 0, false
	}
	pctOver := (*price - stretch) / stretch * 100
	switch {
	case pctOver > overStretchPctHard:
		return capOverStretch20, true
	case pctOver > overStretchPctSoft:
		return capOverStretch10, true
	}
	return 0, false
}

// deriveLabel is a pure function of the final score and the hard-cap state.
// Any cap trigger labels the property a dealbreaker no matter the number.
func deriveLabel(score int, blocked bool) Label {
	if blocked {
		return LabelDealbreaker
	}
	switch {
	case score >= labelGreatMin:
		return LabelGreatMatch
	case score >= labelGoodMin:
		return LabelGoodMatch
	case score >= labelFairMin:
		return LabelFair
	default:
		return LabelPoorMatch
	}
}

func summaryFor(label Label) string {
	switch label {
	case LabelGreatMatch:
		return "This property lines up with your requirements across the board."
	case LabelGoodMatch:
		return "A solid fit with a few points worth checking in person."
	case LabelFair:
		return "A mixed fit; weigh the gaps below against what the property offers."
	case LabelPoorMatch:
		return "This property misses several of your stated requirements."
	case LabelDealbreaker:
		return "A disqualifying condition is present; this property likely cannot work for you."
	default:
		return ""
	}
}

// petHOASuggestion fires whenever a pet owner looks at an HOA property. It
// is informational and never affects the score.
func petHOASuggestion(profile *domain.BuyerProfile, snapshot *domain.PropertySnapshot) (Suggestion, bool) {
	if !profile.Lifestyle.HasPets || snapshot == nil || snapshot.HOA == nil || *snapshot.HOA <= 0 {
		return Suggestion{}, false
	}
	return Suggestion{
		Category:    SuggestAskAbout,
		Title:       "HOA pet rules",
		Description: "This property has an HOA. Ask for the pet policy: breed, size and count restrictions are common.",
		Priority:    domain.PriorityMedium,
	}, true
}
