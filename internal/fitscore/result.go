// Package fitscore scores how well one property matches one buyer. Every
// function here is a pure computation over its inputs: no I/O, no shared
// state, safe to call concurrently.
package fitscore

import "github.com/tmacher/homefit/internal/domain"

// Label buckets the overall score for display.
type Label string

const (
	LabelGreatMatch  Label = "great_match"
	LabelGoodMatch   Label = "good_match"
	LabelFair        Label = "fair"
	LabelPoorMatch   Label = "poor_match"
	LabelDealbreaker Label = "dealbreaker"
)

// MatchStatus is the outcome of checking one feature against the snapshot.
// Unknown is a first-class status: most listing-level features cannot be
// decided from structured records.
type MatchStatus string

const (
	StatusMatched  MatchStatus = "matched"
	StatusMissing  MatchStatus = "missing"
	StatusUnknown  MatchStatus = "unknown"
	StatusViolated MatchStatus = "violated"
)

// Importance says which of the buyer's three feature sets a tag came from.
type Importance string

const (
	ImportanceMustHave    Importance = "must_have"
	ImportanceNiceToHave  Importance = "nice_to_have"
	ImportanceDealbreaker Importance = "dealbreaker"
)

// FlagSeverity grades an accessibility finding.
type FlagSeverity string

const (
	FlagBlocker    FlagSeverity = "blocker"
	FlagConcern    FlagSeverity = "concern"
	FlagManageable FlagSeverity = "manageable"
	FlagClear      FlagSeverity = "clear"
)

// FlagSeverityRank orders flag severities for sorting, blocker first.
func FlagSeverityRank(s FlagSeverity) int {
	switch s {
	case FlagBlocker:
		return 0
	case FlagConcern:
		return 1
	case FlagManageable:
		return 2
	case FlagClear:
		return 3
	default:
		return 4
	}
}

// SuggestionCategory classifies an engine suggestion.
type SuggestionCategory string

const (
	SuggestLookFor  SuggestionCategory = "look_for"
	SuggestWatchOut SuggestionCategory = "watch_out"
	SuggestAskAbout SuggestionCategory = "ask_about"
	SuggestModify   SuggestionCategory = "modify"
)

// Category is one scored slice of the fit breakdown.
type Category struct {
	Name    string  `json:"name"`
	Score   int     `json:"score"`
	Weight  float64 `json:"weight"`
	Details string  `json:"details"`
}

// FeatureMatch records the check of one buyer feature against the snapshot.
type FeatureMatch struct {
	Feature     domain.FeatureTag `json:"feature"`
	Label       string            `json:"label"`
	Importance  Importance        `json:"importance"`
	Status      MatchStatus       `json:"status"`
	Explanation string            `json:"explanation,omitempty"`
}

// AccessibilityFlag is one finding for a declared accessibility need.
type AccessibilityFlag struct {
	Need           domain.AccessibilityNeed `json:"need"`
	Label          string                   `json:"label"`
	Severity       FlagSeverity             `json:"severity"`
	Issue          string                   `json:"issue"`
	Recommendation string                   `json:"recommendation,omitempty"`
}

// Suggestion is one action the buyer should consider.
type Suggestion struct {
	Category    SuggestionCategory    `json:"category"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Priority    domain.ActionPriority `json:"priority"`
}

// Result is the full output of one scoring run. It is always fully
// populated: every category is present even when its score reflects missing
// data, and no valid input makes Compute fail.
type Result struct {
	OverallScore       int                 `json:"overall_score"`
	Label              Label               `json:"label"`
	Summary            string              `json:"summary"`
	Breakdown          []Category          `json:"breakdown"`
	MatchedFeatures    []FeatureMatch      `json:"matched_features"`
	MissedFeatures     []FeatureMatch      `json:"missed_features"`
	AccessibilityFlags []AccessibilityFlag `json:"accessibility_flags"`
	Suggestions        []Suggestion        `json:"suggestions"`
}
