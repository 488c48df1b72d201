// Package ai defines the boundary to the claim-extraction model. The rest of
// the codebase treats extraction output as opaque, already-structured input.
package ai

import (
	"context"

	"github.com/tmacher/homefit/internal/domain"
)

// Extraction is everything the model derives from a listing: structured
// claims with verdicts, a 0-100 trust score with its label, and a best-effort
// snapshot inferred from the listing text (merged later with records, which
// always win per field).
type Extraction struct {
	Claims     []domain.Claim
	TrustScore int
	TrustLabel string
	Inferred   *domain.PropertySnapshot
	Raw        string
}

// ListingInput is the material handed to the extractor.
type ListingInput struct {
	Address     string
	ListingText string
	Snapshot    *domain.PropertySnapshot
	Market      *domain.MarketContext
}

// Extractor turns a listing into structured claims and a trust score.
type Extractor interface {
	Extract(ctx context.Context, in *ListingInput) (*Extraction, error)
}
