package checked

import (
	"strings"
	"testing"

	"github.com/kolkov/borrowcell/internal/borrow/state"
)

// mustPanic runs f and returns the recovered panic value, failing the
// test if f returns normally.
func mustPanic(t *testing.T, f func()) any {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		f()
	}()
	if recovered == nil {
		t.Fatal("expected panic, got normal return")
	}
	return recovered
}

// TestReleaseViaDeferOnEveryExitPath tests that deferred Release runs
// the bookkeeping on normal return, early return and panic unwind.
func TestReleaseViaDeferOnEveryExitPath(t *testing.T) {
	c := New(42)

	normal := func() {
		g := c.Borrow()
		defer g.Release()
	}
	early := func(flag bool) {
		g := c.Borrow()
		defer g.Release()
		if flag {
			return
		}
	}
	unwinds := func() {
		w := c.BorrowMut()
		defer w.Release()
		panic("boom")
	}

	normal()
	early(true)
	func() {
		defer func() { recover() }()
		unwinds()
	}()

	if st := c.state.Get(); st != state.Unused {
		t.Errorf("state after all exit paths = %v, want unused", st)
	}
	if _, err := c.TryBorrowMut(); err != nil {
		t.Errorf("TryBorrowMut() after unwind = %v, want success", err)
	}
}

// TestNestedScopesTransitionCorrectly tests interleaved guard scopes
// at several depths.
func TestNestedScopesTransitionCorrectly(t *testing.T) {
	c := New(42)

	var depth func(n int)
	depth = func(n int) {
		if n == 0 {
			return
		}
		g := c.Borrow()
		defer g.Release()

		if st := c.state.Get(); st.ReaderCount() == 0 {
			t.Errorf("state at depth %d = %v, want readers", n, st)
		}
		depth(n - 1)
	}
	depth(16)

	if st := c.state.Get(); st != state.Unused {
		t.Errorf("state after nesting unwound = %v, want unused", st)
	}
}

// TestReadGuardDoubleReleasePanics tests the exactly-once release
// contract.
func TestReadGuardDoubleReleasePanics(t *testing.T) {
	c := New(42)
	g := c.Borrow()
	g.Release()

	r := mustPanic(t, g.Release)
	if msg, ok := r.(string); !ok || !strings.Contains(msg, "released twice") {
		t.Errorf("panic = %v, want a released-twice internal error", r)
	}
}

// TestWriteGuardDoubleReleasePanics tests the exactly-once release
// contract for writers.
func TestWriteGuardDoubleReleasePanics(t *testing.T) {
	c := New(42)
	w := c.BorrowMut()
	w.Release()

	r := mustPanic(t, w.Release)
	if msg, ok := r.(string); !ok || !strings.Contains(msg, "released twice") {
		t.Errorf("panic = %v, want a released-twice internal error", r)
	}
}

// TestUseAfterReleasePanics tests that a released guard refuses access.
func TestUseAfterReleasePanics(t *testing.T) {
	c := New(42)

	g := c.Borrow()
	g.Release()
	mustPanic(t, func() { _ = *g.Get() })

	w := c.BorrowMut()
	w.Release()
	mustPanic(t, func() { w.Set(1) })
}

// TestMismatchedStateReleasePanics tests the internal-consistency
// channel: a guard releasing against a state it cannot legally observe
// must panic, not limp on.
func TestMismatchedStateReleasePanics(t *testing.T) {
	t.Run("read guard against writer state", func(t *testing.T) {
		c := New(42)
		g := c.Borrow()

		// Corrupt the bookkeeping behind the guard's back.
		c.state.Set(state.Writer)

		r := mustPanic(t, g.Release)
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "internal error") {
			t.Errorf("panic = %v, want an internal error", r)
		}
	})

	t.Run("write guard against readers state", func(t *testing.T) {
		c := New(42)
		w := c.BorrowMut()

		c.state.Set(state.Readers(1))

		r := mustPanic(t, w.Release)
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "internal error") {
			t.Errorf("panic = %v, want an internal error", r)
		}
	})
}

// TestGuardCountMatchesState tests the state-vs-live-guards invariant
// over a longer mixed sequence.
func TestGuardCountMatchesState(t *testing.T) {
	c := New(0)

	var guards []*ReadGuard[int]
	for i := 1; i <= 5; i++ {
		g, err := c.TryBorrow()
		if err != nil {
			t.Fatalf("TryBorrow() #%d error = %v", i, err)
		}
		guards = append(guards, g)

		if st := c.state.Get(); st != state.Readers(i) {
			t.Fatalf("state with %d guards = %v, want readers(%d)", i, st, i)
		}
	}

	for i := len(guards) - 1; i >= 0; i-- {
		guards[i].Release()
		want := state.Unused
		if i > 0 {
			want = state.Readers(i)
		}
		if st := c.state.Get(); st != want {
			t.Fatalf("state with %d guards = %v, want %v", i, st, want)
		}
	}

	w := c.BorrowMut()
	if st := c.state.Get(); st != state.Writer {
		t.Errorf("state with write guard = %v, want writer", st)
	}
	w.Release()
	if st := c.state.Get(); st != state.Unused {
		t.Errorf("state with no guards = %v, want unused", st)
	}
}
