package fitscore

import (
	"testing"
	"time"

	"github.com/tmacher/homefit/internal/domain"
)

func TestCheckFeatureSingleStory(t *testing.T) {
	status, _ := CheckFeature(domain.FeatureSingleStory, &domain.PropertySnapshot{Stories: int64Ptr(1)})
	if status != StatusMatched {
		t.Fatalf("expected matched, got %q", status)
	}

	status, _ = CheckFeature(domain.FeatureSingleStory, &domain.PropertySnapshot{Stories: int64Ptr(2)})
	if status != StatusMissing {
		t.Fatalf("expected missing, got %q", status)
	}

	status, _ = CheckFeature(domain.FeatureSingleStory, &domain.PropertySnapshot{})
	if status != StatusUnknown {
		t.Fatalf("expected unknown without a story count, got %q", status)
	}
}

func TestCheckFeatureGarage(t *testing.T) {
	status, _ := CheckFeature(domain.FeatureGarage, &domain.PropertySnapshot{Garage: stringPtr("2 car attached")})
	if status != StatusMatched {
		t.Fatalf("expected matched, got %q", status)
	}

	status, _ = CheckFeature(domain.FeatureGarage, &domain.PropertySnapshot{Garage: stringPtr("None")})
	if status != StatusMissing {
		t.Fatalf("expected missing for %q, got %q", "None", status)
	}

	status, _ = CheckFeature(domain.FeatureGarage, &domain.PropertySnapshot{Garage: stringPtr("   ")})
	if status != StatusUnknown {
		t.Fatalf("expected unknown for a blank garage field, got %q", status)
	}
}

func TestCheckFeatureNoHOA(t *testing.T) {
	status, _ := CheckFeature(domain.FeatureNoHOA, &domain.PropertySnapshot{HOA: float64Ptr(0)})
	if status != StatusMatched {
		t.Fatalf("expected matched with a zero HOA, got %q", status)
	}

	status, _ = CheckFeature(domain.FeatureNoHOA, &domain.PropertySnapshot{HOA: float64Ptr(250)})
	if status != StatusMissing {
		t.Fatalf("expected missing with an HOA fee, got %q", status)
	}
}

func TestCheckFeatureNewConstruction(t *testing.T) {
	thisYear := int64(time.Now().UTC().Year())

	status, _ := CheckFeature(domain.FeatureNewConstruction, &domain.PropertySnapshot{YearBuilt: int64Ptr(thisYear - 1)})
	if status != StatusMatched {
		t.Fatalf("expected matched for a recent build, got %q", status)
	}

	status, _ = CheckFeature(domain.FeatureNewConstruction, &domain.PropertySnapshot{YearBuilt: int64Ptr(1978)})
	if status != StatusMissing {
		t.Fatalf("expected missing for an old build, got %q", status)
	}
}

func TestCheckFeatureYard(t *testing.T) {
	status, _ := CheckFeature(domain.FeatureYard, &domain.PropertySnapshot{LotSqft: int64Ptr(6000)})
	if status != StatusMatched {
		t.Fatalf("expected matched on a large lot, got %q", status)
	}

	status, _ = CheckFeature(domain.FeatureYard, &domain.PropertySnapshot{LotSqft: int64Ptr(1200)})
	if status != StatusMissing {
		t.Fatalf("expected missing on a tiny lot, got %q", status)
	}
}

func TestCheckFeatureUndecidableTags(t *testing.T) {
	snapshot := &domain.PropertySnapshot{Stories: int64Ptr(1), LotSqft: int64Ptr(9000)}
	for _, tag := range []domain.FeatureTag{domain.FeaturePool, domain.FeatureSolar, domain.FeatureGoodSchools, domain.FeatureWalkable} {
		if status, _ := CheckFeature(tag, snapshot); status != StatusUnknown {
			t.Fatalf("expected %q to be unknown, got %q", tag, status)
		}
	}
}

func TestCheckDealbreakerUnknownIsNotViolation(t *testing.T) {
	violated, _ := CheckDealbreaker(domain.FeatureNoHOA, &domain.PropertySnapshot{})
	if violated {
		t.Fatalf("an unknown must never count as a violation")
	}

	violated, _ = CheckDealbreaker(domain.FeatureNoHOA, &domain.PropertySnapshot{HOA: float64Ptr(95)})
	if !violated {
		t.Fatalf("expected a violation with an HOA on record")
	}
}

func TestScoreFeaturesPenalties(t *testing.T) {
	profile := &domain.BuyerProfile{
		MustHaves: []domain.FeatureTag{
			domain.FeatureGarage,      // matched
			domain.FeatureSingleStory, // missing
			domain.FeaturePool,        // unknown
		},
		NiceToHaves: []domain.FeatureTag{domain.FeatureYard}, // missing
	}
	snapshot := &domain.PropertySnapshot{
		Garage:  stringPtr("1 car detached"),
		Stories: int64Ptr(2),
		LotSqft: int64Ptr(1000),
	}

	cat, matched, missed, dealbreakerHit := scoreFeatures(profile, snapshot)
	if dealbreakerHit {
		t.Fatalf("no dealbreakers were declared")
	}
	// 100 - 18 (missing must-have) - 8 (unknown must-have) - 5 (missing nice-to-have).
	if cat.Score != 69 {
		t.Fatalf("expected score 69, got %d", cat.Score)
	}
	if len(matched) != 1 || matched[0].Feature != domain.FeatureGarage {
		t.Fatalf("unexpected matched list: %+v", matched)
	}
	if len(missed) != 3 {
		t.Fatalf("expected 3 misses, got %+v", missed)
	}
}

func TestScoreFeaturesDealbreakerSatisfied(t *testing.T) {
	profile := &domain.BuyerProfile{
		Dealbreakers: []domain.FeatureTag{domain.FeatureNoHOA},
	}
	snapshot := &domain.PropertySnapshot{HOA: float64Ptr(0)}

	cat, matched, _, dealbreakerHit := scoreFeatures(profile, snapshot)
	if dealbreakerHit {
		t.Fatalf("a satisfied dealbreaker must not fire")
	}
	if cat.Score != 100 {
		t.Fatalf("expected score 100, got %d", cat.Score)
	}
	if len(matched) != 1 || matched[0].Status != StatusMatched {
		t.Fatalf("expected the satisfied dealbreaker in the matched list, got %+v", matched)
	}
}
