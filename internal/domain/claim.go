package domain

// ClaimCategory is one of the six fixed scoring categories every claim is
// filed under. The set is closed: aggregation iterates it, not the claims.
type ClaimCategory string

const (
	CategoryRecordMismatch      ClaimCategory = "record_mismatch"
	CategoryPricingAnomaly      ClaimCategory = "pricing_anomaly"
	CategoryOwnershipTitle      ClaimCategory = "ownership_title"
	CategoryDisclosureAmbiguity ClaimCategory = "disclosure_ambiguity"
	CategoryNeighborhoodFit     ClaimCategory = "neighborhood_fit"
	CategoryRenovationPermit    ClaimCategory = "renovation_permit"
)

// ClaimCategories returns the fixed category enumeration in display order.
func ClaimCategories() []ClaimCategory {
	return []ClaimCategory{
		CategoryRecordMismatch,
		CategoryPricingAnomaly,
		CategoryOwnershipTitle,
		CategoryDisclosureAmbiguity,
		CategoryNeighborhoodFit,
		CategoryRenovationPermit,
	}
}

// ValidClaimCategory reports whether c is a known category.
func ValidClaimCategory(c ClaimCategory) bool {
	switch c {
	case CategoryRecordMismatch, CategoryPricingAnomaly, CategoryOwnershipTitle,
		CategoryDisclosureAmbiguity, CategoryNeighborhoodFit, CategoryRenovationPermit:
		return true
	}
	return false
}

// Verdict is the outcome of checking one claim against records.
type Verdict string

const (
	VerdictVerified      Verdict = "verified"
	VerdictUnverified    Verdict = "unverified"
	VerdictContradiction Verdict = "contradiction"
	VerdictMarketing     Verdict = "marketing"
)

// Severity grades how much a claim matters if it turns out to be wrong.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityCaution  Severity = "caution"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// SeverityRank orders severities for sorting, critical first.
// Unknown severities sort last.
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeverityCaution:
		return 2
	case SeverityInfo:
		return 3
	default:
		return 4
	}
}

// ClaimSource identifies where a claim's statement originated.
type ClaimSource string

const (
	SourceListing      ClaimSource = "listing"
	SourcePublicRecord ClaimSource = "public_record"
	SourceInference    ClaimSource = "inference"
)

// EvidenceType classifies how a piece of evidence relates to its claim.
type EvidenceType string

const (
	EvidenceSupports    EvidenceType = "supports"
	EvidenceContradicts EvidenceType = "contradicts"
	EvidenceNeutral     EvidenceType = "neutral"
)

// Evidence is one record consulted while checking a claim.
type Evidence struct {
	Type        EvidenceType `json:"type"`
	Source      string       `json:"source"`
	Description string       `json:"description"`
	DataPoint   *string      `json:"data_point,omitempty"`
}

// Claim is a single verifiable assertion extracted from a listing. Claims are
// produced upstream and are read-only input to everything in this repo.
type Claim struct {
	Category    ClaimCategory `json:"category"`
	Statement   string        `json:"statement"`
	Source      ClaimSource   `json:"source"`
	Verdict     Verdict       `json:"verdict"`
	Confidence  float64       `json:"confidence"`
	Explanation string        `json:"explanation,omitempty"`
	Severity    Severity      `json:"severity"`
	Evidence    []Evidence    `json:"evidence,omitempty"`
}
