package fitscore

import (
	"strings"
	"testing"

	"github.com/tmacher/homefit/internal/domain"
)

func TestScoreAccessibilityNoNeeds(t *testing.T) {
	cat, flags, suggestions := scoreAccessibility(&domain.BuyerProfile{}, nil, nil)
	if cat.Score != 100 {
		t.Fatalf("expected score 100 without needs, got %d", cat.Score)
	}
	if cat.Weight != weightAccessIdle {
		t.Fatalf("expected the idle weight, got %v", cat.Weight)
	}
	if len(flags) != 0 || len(suggestions) != 0 {
		t.Fatalf("did not expect flags or suggestions")
	}
}

func TestScoreAccessibilityWheelchairMultiStory(t *testing.T) {
	profile := &domain.BuyerProfile{
		AccessibilityNeeds: []domain.AccessibilityNeed{domain.NeedWheelchairFull},
	}
	snapshot := &domain.PropertySnapshot{Stories: int64Ptr(2)}

	cat, flags, _ := scoreAccessibility(profile, snapshot, nil)
	if cat.Weight != weightAccessActive {
		t.Fatalf("expected the active weight, got %v", cat.Weight)
	}
	if cat.Score != 50 {
		t.Fatalf("expected score 50, got %d", cat.Score)
	}
	if len(flags) != 1 || flags[0].Severity != FlagBlocker {
		t.Fatalf("expected a blocker flag, got %+v", flags)
	}
	if !strings.Contains(flags[0].Recommendation, "elevator") {
		t.Fatalf("expected an elevator recommendation, got %q", flags[0].Recommendation)
	}
}

func TestScoreAccessibilityMobilityMultiStory(t *testing.T) {
	profile := &domain.BuyerProfile{
		AccessibilityNeeds: []domain.AccessibilityNeed{domain.NeedMobilityLimited},
	}
	snapshot := &domain.PropertySnapshot{Stories: int64Ptr(3)}

	cat, flags, _ := scoreAccessibility(profile, snapshot, nil)
	if cat.Score != 75 {
		t.Fatalf("expected score 75, got %d", cat.Score)
	}
	if len(flags) != 1 || flags[0].Severity != FlagConcern {
		t.Fatalf("expected a concern flag, got %+v", flags)
	}
}

func TestScoreAccessibilityStoriesUnknown(t *testing.T) {
	profile := &domain.BuyerProfile{
		AccessibilityNeeds: []domain.AccessibilityNeed{domain.NeedChronicFatigue},
	}

	cat, flags, _ := scoreAccessibility(profile, nil, nil)
	if cat.Score != 85 {
		t.Fatalf("expected score 85 with an unknown story count, got %d", cat.Score)
	}
	if len(flags) != 1 || flags[0].Severity != FlagConcern {
		t.Fatalf("expected a concern flag, got %+v", flags)
	}
}

func TestScoreAccessibilitySensoryNoiseClaim(t *testing.T) {
	profile := &domain.BuyerProfile{
		AccessibilityNeeds: []domain.AccessibilityNeed{domain.NeedSensorySensitivity},
	}
	claims := []domain.Claim{
		{Category: domain.CategoryRecordMismatch, Statement: "Near a noisy highway"},
		{Category: domain.CategoryNeighborhoodFit, Statement: "Backs onto a busy freeway"},
	}

	cat, flags, _ := scoreAccessibility(profile, nil, claims)
	if cat.Score != 75 {
		t.Fatalf("expected score 75, got %d", cat.Score)
	}
	if len(flags) != 1 || flags[0].Severity != FlagConcern {
		t.Fatalf("expected a concern flag, got %+v", flags)
	}
	if !strings.Contains(flags[0].Issue, "busy freeway") {
		t.Fatalf("expected the neighborhood claim to be quoted, got %q", flags[0].Issue)
	}
}

func TestScoreAccessibilitySensoryNoClaims(t *testing.T) {
	profile := &domain.BuyerProfile{
		AccessibilityNeeds: []domain.AccessibilityNeed{domain.NeedSensorySensitivity},
	}

	cat, flags, _ := scoreAccessibility(profile, nil, nil)
	if cat.Score != 100 {
		t.Fatalf("expected score 100, got %d", cat.Score)
	}
	if len(flags) != 1 || flags[0].Severity != FlagClear {
		t.Fatalf("expected a clear flag, got %+v", flags)
	}
}

func TestScoreAccessibilityRespiratoryOldConstruction(t *testing.T) {
	profile := &domain.BuyerProfile{
		AccessibilityNeeds: []domain.AccessibilityNeed{domain.NeedRespiratory},
	}

	cat, flags, _ := scoreAccessibility(profile, &domain.PropertySnapshot{YearBuilt: int64Ptr(1975)}, nil)
	if cat.Score != 85 {
		t.Fatalf("expected score 85 for pre-1990 construction, got %d", cat.Score)
	}
	if len(flags) != 1 || flags[0].Severity != FlagConcern {
		t.Fatalf("expected a concern flag, got %+v", flags)
	}

	cat, flags, _ = scoreAccessibility(profile, &domain.PropertySnapshot{YearBuilt: int64Ptr(2010)}, nil)
	if cat.Score != 100 {
		t.Fatalf("expected score 100 for modern construction, got %d", cat.Score)
	}
	if flags[0].Severity != FlagClear {
		t.Fatalf("expected a clear flag, got %+v", flags)
	}
}

func TestScoreAccessibilityAgingInPlace(t *testing.T) {
	profile := &domain.BuyerProfile{
		AccessibilityNeeds: []domain.AccessibilityNeed{domain.NeedAgingInPlace},
	}

	cat, flags, suggestions := scoreAccessibility(profile, &domain.PropertySnapshot{Stories: int64Ptr(2)}, nil)
	if cat.Score != 80 {
		t.Fatalf("expected score 80 on a multi-story property, got %d", cat.Score)
	}
	if len(flags) != 1 || flags[0].Severity != FlagConcern {
		t.Fatalf("expected a concern flag, got %+v", flags)
	}
	if len(suggestions) != 1 || suggestions[0].Category != SuggestModify {
		t.Fatalf("expected a modify suggestion, got %+v", suggestions)
	}

	cat, flags, suggestions = scoreAccessibility(profile, &domain.PropertySnapshot{Stories: int64Ptr(1)}, nil)
	if cat.Score != 100 {
		t.Fatalf("expected score 100 on a single story, got %d", cat.Score)
	}
	if flags[0].Severity != FlagManageable {
		t.Fatalf("expected a manageable flag, got %+v", flags)
	}
	if len(suggestions) != 0 {
		t.Fatalf("did not expect suggestions, got %+v", suggestions)
	}
}

func TestScoreAccessibilityMultipleNeedsAccumulate(t *testing.T) {
	profile := &domain.BuyerProfile{
		AccessibilityNeeds: []domain.AccessibilityNeed{
			domain.NeedMobilityLimited,
			domain.NeedRespiratory,
		},
	}
	snapshot := &domain.PropertySnapshot{Stories: int64Ptr(2), YearBuilt: int64Ptr(1960)}

	cat, flags, _ := scoreAccessibility(profile, snapshot, nil)
	// 100 - 25 (multi-story) - 15 (old construction).
	if cat.Score != 60 {
		t.Fatalf("expected score 60, got %d", cat.Score)
	}
	if len(flags) != 2 {
		t.Fatalf("expected 2 flags, got %+v", flags)
	}
}
