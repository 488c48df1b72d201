package claims

import (
	"strings"

	"github.com/tmacher/homefit/internal/domain"
)

type dedupeFilter struct{}

// NewDedupe creates a filter that drops claims repeating an earlier
// statement within the same category. The first occurrence wins.
func NewDedupe() Filter {
	return &dedupeFilter{}
}

func (f *dedupeFilter) Name() string { return "dedupe" }

func (f *dedupeFilter) IsEnabled() bool { return true }

func (f *dedupeFilter) Apply(claims []domain.Claim) ([]domain.Claim, Step) {
	initial := len(claims)
	seen := make(map[string]struct{}, len(claims))
	kept := make([]domain.Claim, 0, len(claims))

	for _, c := range claims {
		key := string(c.Category) + "|" + strings.ToLower(strings.TrimSpace(c.Statement))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, c)
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
}

type minConfidenceFilter struct {
	threshold float64
}

// NewMinConfidence creates a filter that drops claims below the confidence
// threshold. A non-positive threshold disables the filter.
func NewMinConfidence(threshold float64) Filter {
	return &minConfidenceFilter{threshold: threshold}
}

func (f *minConfidenceFilter) Name() string { return "min_confidence" }

func (f *minConfidenceFilter) IsEnabled() bool { return f.threshold > 0 }

func (f *minConfidenceFilter) Apply(claims []domain.Claim) ([]domain.Claim, Step) {
	initial := len(claims)
	kept := make([]domain.Claim, 0, len(claims))
	for _, c := range claims {
		if c.Confidence >= f.threshold {
			kept = append(kept, c)
		}
	}
	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
}

type validCategoryFilter struct{}

// NewValidCategory creates a filter that drops claims filed under a category
// outside the fixed six. The extractor should never produce one, but model
// output is not a contract.
func NewValidCategory() Filter {
	return &validCategoryFilter{}
}

func (f *validCategoryFilter) Name() string { return "valid_category" }

func (f *validCategoryFilter) IsEnabled() bool { return true }

func (f *validCategoryFilter) Apply(claims []domain.Claim) ([]domain.Claim, Step) {
	initial := len(claims)
	kept := make([]domain.Claim, 0, len(claims))
	for _, c := range claims {
		if domain.ValidClaimCategory(c.Category) {
			kept = append(kept, c)
		}
	}
	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
}
