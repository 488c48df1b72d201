package fitscore

// Every tuning constant of the engine lives here. The values are product
// decisions, not derived quantities; change them in one place.

// Category weights. Accessibility switches on whether the buyer declared any
// need beyond "none"; lifestyle takes whatever remains, floored.
const (
	weightBudget       = 0.25
	weightSize         = 0.20
	weightAccessActive = 0.30
	weightAccessIdle   = 0.05
	weightFeatures     = 0.15
	weightTrust        = 0.10

	weightLifestyleFloor = 0.05
)

// Budget category.
const (
	scoreBudgetInRange    = 100
	scoreBudgetNoPrice    = 40 // price unknown: neither rewarded nor penalized
	scoreBudgetUnset      = 70 // buyer gave no ceiling to compare against
	stretchZoneTop        = 60 // score right above the comfortable max
	stretchZoneSpan       = 40 // drop across the stretch zone (60 down to 20)
	overStretchBase       = 15
	overStretchPctDivisor = 2
)

// Size & layout category.
const (
	scoreSizeNoSnapshot = 35

	penaltyPerMissingBed = 25
	penaltyBathShortfall = 20
	penaltySqftShortfall = 35 // scaled by the fractional shortfall, so also the max
	penaltyBedsUnknown   = 10
	penaltyBathsUnknown  = 5
	penaltySqftUnknown   = 10
)

// Accessibility category.
const (
	penaltyWheelchairMultiStory = 50
	penaltyMobilityMultiStory   = 25
	penaltyStoriesUnknown       = 15
	penaltyNeighborhoodNoise    = 25
	penaltyOlderConstruction    = 15
	penaltyAgingMultiStory      = 20

	respiratoryYearCutoff = 1990
)

// Feature match category.
const (
	penaltyMustHaveMissing   = 18
	penaltyMustHaveUnknown   = 8
	penaltyNiceToHaveMissing = 5
	penaltyDealbreakerHit    = 50
)

// Feature predicates.
const (
	newConstructionMaxAge = 5    // years since built
	yardMinLotSqft        = 4000 // below this a usable yard is unlikely
)

// Lifestyle category.
const (
	lifestyleBase                = 65
	lifestyleMultigenBonus       = 15
	lifestyleRetiringBonus       = 15
	lifestyleElderlyMultiPenalty = 20
	lifestyleElderlySingleBonus  = 10

	multigenMinBeds = 4
)

// Hard caps and label thresholds.
const (
	capDealbreaker     = 25
	capOverStretch20   = 30
	capOverStretch10   = 40
	overStretchPctHard = 20 // percent over stretch that triggers the 30 cap
	overStretchPctSoft = 10 // percent over stretch that triggers the 40 cap

	labelGreatMin = 75
	labelGoodMin  = 60
	labelFairMin  = 40
)
