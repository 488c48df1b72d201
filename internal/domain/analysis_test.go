package domain

import "testing"

func TestAnalysisLifecycle(t *testing.T) {
	a := NewAnalysis("a-1", "12 Main St")
	if a.Status != StatusPending {
		t.Fatalf("expected a pending analysis, got %q", a.Status)
	}

	if err := a.Transition(StatusAnalyzing); err != nil {
		t.Fatalf("pending -> analyzing should be allowed: %s", err)
	}
	if err := a.Transition(StatusComplete); err != nil {
		t.Fatalf("analyzing -> complete should be allowed: %s", err)
	}
	if err := a.Transition(StatusAnalyzing); err == nil {
		t.Fatalf("complete is terminal; expected an error")
	}
}

func TestAnalysisTransitionRejectsSkips(t *testing.T) {
	a := NewAnalysis("a-2", "12 Main St")
	if err := a.Transition(StatusComplete); err == nil {
		t.Fatalf("pending -> complete skips analyzing; expected an error")
	}
	if a.Status != StatusPending {
		t.Fatalf("a rejected transition must not change the status, got %q", a.Status)
	}
}

func TestAnalysisErrorFromEitherState(t *testing.T) {
	a := NewAnalysis("a-3", "12 Main St")
	if err := a.Transition(StatusError); err != nil {
		t.Fatalf("pending -> error should be allowed: %s", err)
	}

	b := NewAnalysis("a-4", "12 Main St")
	_ = b.Transition(StatusAnalyzing)
	if err := b.Transition(StatusError); err != nil {
		t.Fatalf("analyzing -> error should be allowed: %s", err)
	}
	if err := b.Transition(StatusComplete); err == nil {
		t.Fatalf("error is terminal; expected an error")
	}
}
