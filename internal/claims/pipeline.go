// Package claims cleans the extractor's output before aggregation and
// scoring see it: duplicates, junk-confidence claims and disabled categories
// are dropped in an ordered sequence of steps.
package claims

import (
	"go.uber.org/zap"

	"github.com/tmacher/homefit/internal/domain"
)

// Filter is a single hygiene step applied to the claims list.
type Filter interface {
	Name() string
	IsEnabled() bool
	Apply(claims []domain.Claim) ([]domain.Claim, Step)
}

// Step describes what one filter did.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Pipeline runs filters in order.
type Pipeline struct {
	steps  []Filter
	logger *zap.Logger
}

// New creates a pipeline over the given steps.
func New(steps []Filter, logger *zap.Logger) *Pipeline {
	return &Pipeline{steps: steps, logger: logger}
}

// Default returns the standard hygiene sequence.
func Default(minConfidence float64, logger *zap.Logger) *Pipeline {
	return New([]Filter{
		NewValidCategory(),
		NewDedupe(),
		NewMinConfidence(minConfidence),
	}, logger)
}

// Run executes every enabled step sequentially and returns what survives.
func (p *Pipeline) Run(claims []domain.Claim) []domain.Claim {
	for _, step := range p.steps {
		if !step.IsEnabled() {
			if p.logger != nil {
				p.logger.Debug("claim filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info := step.Apply(claims)
		if p.logger != nil && info.Dropped > 0 {
			p.logger.Info("dropping claims",
				zap.String("filter", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}
		claims = next
	}
	return claims
}
