package fitscore

import (
	"strings"

	"github.com/tmacher/homefit/internal/domain"
)

// scoreLifestyle adjusts a neutral base score with situation and household
// heuristics. The weight is assigned by the engine as the remainder after
// the other categories.
func scoreLifestyle(profile *domain.BuyerProfile, snapshot *domain.PropertySnapshot) (Category, []Suggestion) {
	cat := Category{Name: "Lifestyle Fit"}
	score := float64(lifestyleBase)
	var notes []string
	var suggestions []Suggestion

	beds := float64(0)
	bedsKnown := snapshot != nil && snapshot.Beds != nil
	if bedsKnown {
		beds = *snapshot.Beds
	}

	var stories int64
	storiesKnown := snapshot != nil && snapshot.Stories != nil
	if storiesKnown {
		stories = *snapshot.Stories
	}

	if profile.Situation == domain.SituationMultigenerational && bedsKnown && beds >= multigenMinBeds {
		score += lifestyleMultigenBonus
		notes = append(notes, "enough bedrooms for a multigenerational household")
	}

	if profile.Situation == domain.SituationRetiring && storiesKnown && stories == 1 {
		score += lifestyleRetiringBonus
		notes = append(notes, "single story suits retirement plans")
	}

	if profile.HasHouseholdTag(domain.HouseholdElderlyParent) && storiesKnown {
		if stories > 1 {
			score -= lifestyleElderlyMultiPenalty
			notes = append(notes, "stairs are a daily obstacle for an elderly parent")
			suggestions = append(suggestions, Suggestion{
				Category:    SuggestAskAbout,
				Title:       "Main-floor room for an elderly parent",
				Description: "Ask whether a bedroom and full bath exist on the entry level.",
				Priority:    domain.PriorityMedium,
			})
		} else {
			score += lifestyleElderlySingleBonus
			notes = append(notes, "single story works well for an elderly parent")
		}
	}

	if profile.HasHouseholdTag(domain.HouseholdYoungChildren) {
		suggestions = append(suggestions, Suggestion{
			Category:    SuggestLookFor,
			Title:       "Child safety checklist",
			Description: "Check stair railings, window heights, pool fencing and street traffic during your visit.",
			Priority:    domain.PriorityLow,
		})
	}

	cat.Score = clampScore(score)
	if len(notes) == 0 {
		cat.Details = "No strong lifestyle signals either way."
	} else {
		cat.Details = strings.Join(notes, "; ")
	}
	return cat, suggestions
}
