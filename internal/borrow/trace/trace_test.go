package trace

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// withObserver routes tracing into an in-memory sink for one test.
func withObserver(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	Enable(zap.New(core))
	t.Cleanup(Disable)
	return logs
}

// TestDisabledByDefault tests that tracing is off unless the env var
// was set at process start.
func TestDisabledByDefault(t *testing.T) {
	if Enabled() {
		t.Skip("BORROWCELL_TRACE set in test environment")
	}
	// All entry points must be harmless no-ops.
	Transition(1, "borrow", "unused", "readers(1)")
	Denied(1, "borrow_mut", "readers(1)", nil)
	if got := Capture(0); got != nil {
		t.Errorf("Capture() = %v while disabled, want nil", got)
	}
}

// TestTransitionFields tests the structured fields of a transition.
func TestTransitionFields(t *testing.T) {
	logs := withObserver(t)

	Transition(7, "borrow", "unused", "readers(1)")

	entries := logs.TakeAll()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Message != "transition" {
		t.Errorf("message = %q, want %q", e.Message, "transition")
	}
	fields := e.ContextMap()
	if fields["cell"] != uint64(7) {
		t.Errorf("cell field = %v, want 7", fields["cell"])
	}
	if fields["op"] != "borrow" {
		t.Errorf("op field = %v, want borrow", fields["op"])
	}
	if fields["from"] != "unused" || fields["to"] != "readers(1)" {
		t.Errorf("from/to = %v/%v, want unused/readers(1)", fields["from"], fields["to"])
	}
}

// TestDeniedIncludesHolderStack tests that a denial with a captured
// holder stack renders the acquisition site.
func TestDeniedIncludesHolderStack(t *testing.T) {
	logs := withObserver(t)

	holder := Capture(0)
	if len(holder) == 0 {
		t.Fatal("Capture() returned no frames while enabled")
	}
	Denied(3, "borrow", "writer", holder)

	entries := logs.TakeAll()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	stack, ok := fields["holder"].(string)
	if !ok || !strings.Contains(stack, "TestDeniedIncludesHolderStack") {
		t.Errorf("holder stack = %q, want it to contain the test function", stack)
	}
}

// TestFormatStack tests the empty-input placeholder.
func TestFormatStack(t *testing.T) {
	if got := FormatStack(nil); got != "<no stack>" {
		t.Errorf("FormatStack(nil) = %q, want %q", got, "<no stack>")
	}
}
