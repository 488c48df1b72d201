package domain

import (
	"fmt"
	"time"
)

// AnalysisStatus tracks an analysis record through its lifecycle.
type AnalysisStatus string

const (
	StatusPending   AnalysisStatus = "pending"
	StatusAnalyzing AnalysisStatus = "analyzing"
	StatusComplete  AnalysisStatus = "complete"
	StatusError     AnalysisStatus = "error"
)

// Analysis is the persisted record of one listing evaluation. It is created
// once per request and never mutated afterwards except for status
// transitions: pending -> analyzing -> complete | error.
type Analysis struct {
	ID          string            `json:"id"`
	Address     string            `json:"address"`
	Status      AnalysisStatus    `json:"status"`
	Snapshot    *PropertySnapshot `json:"snapshot,omitempty"`
	Market      *MarketContext    `json:"market,omitempty"`
	Claims      []Claim           `json:"claims,omitempty"`
	TrustScore  int               `json:"trust_score"`
	TrustLabel  string            `json:"trust_label,omitempty"`
	ActionItems []ActionItem      `json:"action_items,omitempty"`
	Error       string            `json:"error,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// NewAnalysis creates a pending analysis for an address.
func NewAnalysis(id, address string) *Analysis {
	now := time.Now().UTC()
	return &Analysis{
		ID:        id,
		Address:   address,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Transition moves the analysis to the next status, rejecting anything the
// lifecycle does not allow. Complete and error are terminal.
func (a *Analysis) Transition(next AnalysisStatus) error {
	allowed := false
	switch a.Status {
	case StatusPending:
		allowed = next == StatusAnalyzing || next == StatusError
	case StatusAnalyzing:
		allowed = next == StatusComplete || next == StatusError
	}
	if !allowed {
		return fmt.Errorf("illegal analysis transition: %s -> %s", a.Status, next)
	}
	a.Status = next
	a.UpdatedAt = time.Now().UTC()
	return nil
}
