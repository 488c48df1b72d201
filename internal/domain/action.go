package domain

// ActionPriority orders action items for the buyer.
type ActionPriority string

const (
	PriorityHigh   ActionPriority = "high"
	PriorityMedium ActionPriority = "medium"
	PriorityLow    ActionPriority = "low"
)

// PriorityRank orders priorities for sorting, high first.
func PriorityRank(p ActionPriority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// ActionItem is one concrete follow-up for the buyer, produced during
// analysis (ask the seller, order an inspection, pull a permit record).
type ActionItem struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Priority    ActionPriority `json:"priority"`
}
