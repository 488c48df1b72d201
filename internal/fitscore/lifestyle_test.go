package fitscore

import (
	"testing"

	"github.com/tmacher/homefit/internal/domain"
)

func TestScoreLifestyleMultigenerationalBonus(t *testing.T) {
	profile := &domain.BuyerProfile{Situation: domain.SituationMultigenerational}

	cat, _ := scoreLifestyle(profile, &domain.PropertySnapshot{Beds: float64Ptr(4)})
	if cat.Score != 80 {
		t.Fatalf("expected 80 with enough bedrooms, got %d", cat.Score)
	}

	cat, _ = scoreLifestyle(profile, &domain.PropertySnapshot{Beds: float64Ptr(3)})
	if cat.Score != 65 {
		t.Fatalf("expected the base score with too few bedrooms, got %d", cat.Score)
	}
}

func TestScoreLifestyleRetiringSingleStory(t *testing.T) {
	profile := &domain.BuyerProfile{Situation: domain.SituationRetiring}

	cat, _ := scoreLifestyle(profile, &domain.PropertySnapshot{Stories: int64Ptr(1)})
	if cat.Score != 80 {
		t.Fatalf("expected 80 on a single story, got %d", cat.Score)
	}

	cat, _ = scoreLifestyle(profile, &domain.PropertySnapshot{Stories: int64Ptr(2)})
	if cat.Score != 65 {
		t.Fatalf("expected the base score on two stories, got %d", cat.Score)
	}
}

func TestScoreLifestyleElderlyParent(t *testing.T) {
	profile := &domain.BuyerProfile{Household: []domain.HouseholdTag{domain.HouseholdElderlyParent}}

	cat, suggestions := scoreLifestyle(profile, &domain.PropertySnapshot{Stories: int64Ptr(2)})
	if cat.Score != 45 {
		t.Fatalf("expected 45 on a multi-story property, got %d", cat.Score)
	}
	if len(suggestions) != 1 || suggestions[0].Category != SuggestAskAbout {
		t.Fatalf("expected an ask_about suggestion, got %+v", suggestions)
	}

	cat, suggestions = scoreLifestyle(profile, &domain.PropertySnapshot{Stories: int64Ptr(1)})
	if cat.Score != 75 {
		t.Fatalf("expected 75 on a single story, got %d", cat.Score)
	}
	if len(suggestions) != 0 {
		t.Fatalf("did not expect suggestions, got %+v", suggestions)
	}
}

func TestScoreLifestyleYoungChildrenSuggestion(t *testing.T) {
	profile := &domain.BuyerProfile{Household: []domain.HouseholdTag{domain.HouseholdYoungChildren}}

	// The checklist fires even without a snapshot.
	cat, suggestions := scoreLifestyle(profile, nil)
	if cat.Score != 65 {
		t.Fatalf("expected the base score, got %d", cat.Score)
	}
	if len(suggestions) != 1 || suggestions[0].Category != SuggestLookFor {
		t.Fatalf("expected a look_for suggestion, got %+v", suggestions)
	}
}
