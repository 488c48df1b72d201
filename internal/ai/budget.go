package ai

import (
	"fmt"
	"sync"
)

// Budget throttles model usage. It is an injected collaborator of the
// analysis pipeline: the scoring core never sees it and works the same
// whether or not one is configured.
type Budget interface {
	// CheckAndReserve reserves one call, or returns an error when the
	// budget is exhausted.
	CheckAndReserve() error
	// Record books the token usage of a completed call.
	Record(inputTokens, outputTokens int)
}

// MemoryBudget is a process-local Budget with call and token ceilings.
// Zero ceilings mean unlimited.
type MemoryBudget struct {
	mu sync.Mutex

	maxCalls  int
	maxTokens int

	calls        int
	inputTokens  int
	outputTokens int
}

// NewMemoryBudget creates an in-memory budget.
func NewMemoryBudget(maxCalls, maxTokens int) *MemoryBudget {
	return &MemoryBudget{maxCalls: maxCalls, maxTokens: maxTokens}
}

func (b *MemoryBudget) CheckAndReserve() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.maxCalls > 0 && b.calls >= b.maxCalls {
		return fmt.Errorf("model call budget exhausted: %d calls used", b.calls)
	}
	if b.maxTokens > 0 && b.inputTokens+b.outputTokens >= b.maxTokens {
		return fmt.Errorf("model token budget exhausted: %d tokens used", b.inputTokens+b.outputTokens)
	}

	b.calls++
	return nil
}

func (b *MemoryBudget) Record(inputTokens, outputTokens int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inputTokens += inputTokens
	b.outputTokens += outputTokens
}

// Usage returns the counters so far: calls, input tokens, output tokens.
func (b *MemoryBudget) Usage() (int, int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls, b.inputTokens, b.outputTokens
}
