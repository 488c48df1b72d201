package access

import (
	"testing"

	"github.com/tmacher/homefit/internal/domain"
)

func TestLookupCoversEveryOfferedNeed(t *testing.T) {
	for _, need := range Needs() {
		req, ok := Lookup(need)
		if !ok {
			t.Fatalf("need %q has no requirement entry", need)
		}
		if req.Label == "" || len(req.Requirements) == 0 {
			t.Fatalf("need %q has an empty entry: %+v", need, req)
		}
	}
}

func TestLookupRejectsSentinel(t *testing.T) {
	if _, ok := Lookup(domain.NeedNone); ok {
		t.Fatalf("the none sentinel must not have requirements")
	}
}

func TestLabelFallsBackToRawCode(t *testing.T) {
	if got := Label(domain.NeedWheelchairFull); got != "Full-time wheelchair use" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := Label("mystery_need"); got != "mystery_need" {
		t.Fatalf("expected the raw code for an unknown need, got %q", got)
	}
}
