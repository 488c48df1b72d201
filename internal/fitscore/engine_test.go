package fitscore

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/tmacher/homefit/internal/domain"
)

func float64Ptr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64       { return &v }
func stringPtr(v string) *string    { return &v }

func TestComputeInBudgetPerfectMatch(t *testing.T) {
	profile := &domain.BuyerProfile{
		Situation: domain.SituationUpsizing,
		Budget:    domain.Budget{Max: 1000000},
		MustHaves: []domain.FeatureTag{domain.FeatureGarage},
		Lifestyle: domain.Lifestyle{MinBeds: 3, MinBaths: 2, MinSqft: 1500},
	}
	snapshot := &domain.PropertySnapshot{
		Beds:    float64Ptr(4),
		Baths:   float64Ptr(2.5),
		Sqft:    int64Ptr(2200),
		Stories: int64Ptr(2),
		Garage:  stringPtr("2 car attached"),
	}

	result := Compute(profile, Input{
		Snapshot:   snapshot,
		TrustScore: 90,
		ListPrice:  float64Ptr(900000),
	})

	budget := findCategory(t, result, "Budget Fit")
	if budget.Score != 100 {
		t.Fatalf("expected budget score 100, got %d", budget.Score)
	}
	if result.OverallScore < 75 {
		t.Fatalf("expected overall score >= 75, got %d", result.OverallScore)
	}
	if result.Label != LabelGreatMatch {
		t.Fatalf("expected great_match, got %q", result.Label)
	}
	if len(result.MatchedFeatures) != 1 || result.MatchedFeatures[0].Feature != domain.FeatureGarage {
		t.Fatalf("expected the garage to be matched, got %+v", result.MatchedFeatures)
	}
}

func TestComputeWheelchairBlockerCapsScore(t *testing.T) {
	profile := &domain.BuyerProfile{
		AccessibilityNeeds: []domain.AccessibilityNeed{domain.NeedWheelchairFull},
		Budget:             domain.Budget{Max: 500000},
	}
	snapshot := &domain.PropertySnapshot{
		Beds:    float64Ptr(3),
		Stories: int64Ptr(2),
	}

	result := Compute(profile, Input{
		Snapshot:   snapshot,
		TrustScore: 95,
		ListPrice:  float64Ptr(400000),
	})

	if result.OverallScore > 25 {
		t.Fatalf("expected score capped at 25, got %d", result.OverallScore)
	}
	if result.Label != LabelDealbreaker {
		t.Fatalf("expected dealbreaker label, got %q", result.Label)
	}

	blocker := false
	for _, f := range result.AccessibilityFlags {
		if f.Severity == FlagBlocker && f.Need == domain.NeedWheelchairFull {
			blocker = true
		}
	}
	if !blocker {
		t.Fatalf("expected a blocker flag, got %+v", result.AccessibilityFlags)
	}
}

func TestComputeDealbreakerFeatureCapsScore(t *testing.T) {
	profile := &domain.BuyerProfile{
		Dealbreakers: []domain.FeatureTag{domain.FeatureNoHOA},
		Budget:       domain.Budget{Max: 500000},
	}
	snapshot := &domain.PropertySnapshot{HOA: float64Ptr(250)}

	result := Compute(profile, Input{
		Snapshot:   snapshot,
		TrustScore: 95,
		ListPrice:  float64Ptr(400000),
	})

	if result.OverallScore > 25 {
		t.Fatalf("expected score capped at 25, got %d", result.OverallScore)
	}
	if result.Label != LabelDealbreaker {
		t.Fatalf("expected dealbreaker label, got %q", result.Label)
	}

	violated := false
	for _, fm := range result.MissedFeatures {
		if fm.Feature == domain.FeatureNoHOA && fm.Status == StatusViolated {
			violated = true
		}
	}
	if !violated {
		t.Fatalf("expected no_hoa to be violated, got %+v", result.MissedFeatures)
	}
}

func TestComputeOverStretchCaps(t *testing.T) {
	profile := &domain.BuyerProfile{Budget: domain.Budget{Max: 500000}}

	// 25% over the stretch ceiling caps at 30 but does not relabel.
	result := Compute(profile, Input{TrustScore: 100, ListPrice: float64Ptr(625000)})
	if result.OverallScore > 30 {
		t.Fatalf("expected score capped at 30, got %d", result.OverallScore)
	}
	if result.Label == LabelDealbreaker {
		t.Fatalf("price cap must not produce the dealbreaker label")
	}

	// 15% over caps at 40.
	result = Compute(profile, Input{TrustScore: 100, ListPrice: float64Ptr(575000)})
	if result.OverallScore > 40 {
		t.Fatalf("expected score capped at 40, got %d", result.OverallScore)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	profile := &domain.BuyerProfile{
		Situation:          domain.SituationRetiring,
		Household:          []domain.HouseholdTag{domain.HouseholdElderlyParent},
		AccessibilityNeeds: []domain.AccessibilityNeed{domain.NeedAgingInPlace},
		Budget:             domain.Budget{Max: 600000, Stretch: 650000},
		MustHaves:          []domain.FeatureTag{domain.FeatureSingleStory},
		NiceToHaves:        []domain.FeatureTag{domain.FeatureYard},
		Lifestyle:          domain.Lifestyle{MinBeds: 2, HasPets: true},
	}
	in := Input{
		Snapshot: &domain.PropertySnapshot{
			Beds:    float64Ptr(3),
			Stories: int64Ptr(1),
			LotSqft: int64Ptr(6000),
			HOA:     float64Ptr(120),
		},
		TrustScore: 72,
		TrustLabel: "mostly_consistent",
		ListPrice:  float64Ptr(610000),
	}

	first := Compute(profile, in)
	second := Compute(profile, in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results for identical input")
	}
}

func TestComputeWeightsSumToOne(t *testing.T) {
	idle := &domain.BuyerProfile{Budget: domain.Budget{Max: 500000}}
	active := &domain.BuyerProfile{
		Budget:             domain.Budget{Max: 500000},
		AccessibilityNeeds: []domain.AccessibilityNeed{domain.NeedMobilityLimited},
	}

	for _, profile := range []*domain.BuyerProfile{idle, active, nil} {
		result := Compute(profile, Input{TrustScore: 50, ListPrice: float64Ptr(450000)})
		var sum float64
		for _, cat := range result.Breakdown {
			if cat.Weight < 0 {
				t.Fatalf("negative weight for %q", cat.Name)
			}
			sum += cat.Weight
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("expected weights to sum to 1, got %v", sum)
		}
	}
}

func TestComputeScoreStaysInBounds(t *testing.T) {
	profile := &domain.BuyerProfile{
		Budget:       domain.Budget{Max: 100000},
		MustHaves:    []domain.FeatureTag{domain.FeatureSingleStory, domain.FeatureGarage, domain.FeatureYard},
		Dealbreakers: []domain.FeatureTag{domain.FeatureNoHOA},
		Lifestyle:    domain.Lifestyle{MinBeds: 6, MinBaths: 4, MinSqft: 5000},
	}
	snapshot := &domain.PropertySnapshot{
		Beds:    float64Ptr(1),
		Baths:   float64Ptr(1),
		Sqft:    int64Ptr(600),
		Stories: int64Ptr(3),
		Garage:  stringPtr("none"),
		LotSqft: int64Ptr(900),
		HOA:     float64Ptr(400),
	}

	result := Compute(profile, Input{Snapshot: snapshot, TrustScore: 0, ListPrice: float64Ptr(950000)})
	if result.OverallScore < 0 || result.OverallScore > 100 {
		t.Fatalf("score out of bounds: %d", result.OverallScore)
	}
	for _, cat := range result.Breakdown {
		if cat.Score < 0 || cat.Score > 100 {
			t.Fatalf("category %q out of bounds: %d", cat.Name, cat.Score)
		}
	}
}

func TestComputeMissingPriceNeutralBudget(t *testing.T) {
	profile := &domain.BuyerProfile{Budget: domain.Budget{Max: 500000}}

	result := Compute(profile, Input{TrustScore: 80})
	budget := findCategory(t, result, "Budget Fit")
	if budget.Score != 40 {
		t.Fatalf("expected budget score 40 without any price source, got %d", budget.Score)
	}
	if !strings.Contains(budget.Details, "No price data available.") {
		t.Fatalf("unexpected details: %q", budget.Details)
	}
}

func TestComputeNilProfile(t *testing.T) {
	result := Compute(nil, Input{TrustScore: 60})
	if result.OverallScore < 0 || result.OverallScore > 100 {
		t.Fatalf("score out of bounds: %d", result.OverallScore)
	}
	if len(result.Breakdown) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(result.Breakdown))
	}
}

func TestComputePetHOASuggestion(t *testing.T) {
	profile := &domain.BuyerProfile{Lifestyle: domain.Lifestyle{HasPets: true}}
	snapshot := &domain.PropertySnapshot{HOA: float64Ptr(180)}

	result := Compute(profile, Input{Snapshot: snapshot, TrustScore: 50})
	found := false
	for _, s := range result.Suggestions {
		if s.Category == SuggestAskAbout && s.Title == "HOA pet rules" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the HOA pet suggestion, got %+v", result.Suggestions)
	}

	// No HOA on record means no suggestion.
	result = Compute(profile, Input{Snapshot: &domain.PropertySnapshot{}, TrustScore: 50})
	for _, s := range result.Suggestions {
		if s.Title == "HOA pet rules" {
			t.Fatalf("did not expect the HOA pet suggestion without an HOA")
		}
	}
}

func findCategory(t *testing.T, result *Result, name string) Category {
	t.Helper()
	for _, cat := range result.Breakdown {
		if cat.Name == name {
			return cat
		}
	}
	t.Fatalf("category %q not found in %+v", name, result.Breakdown)
	return Category{}
}
