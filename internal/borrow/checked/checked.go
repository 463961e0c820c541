package checked

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/kolkov/borrowcell/internal/borrow/cell"
	"github.com/kolkov/borrowcell/internal/borrow/goid"
	"github.com/kolkov/borrowcell/internal/borrow/rawcell"
	"github.com/kolkov/borrowcell/internal/borrow/state"
	"github.com/kolkov/borrowcell/internal/borrow/trace"
)

// EnvCheckGo enables the owner-goroutine check when set to "1" or
// "true" at process start.
const EnvCheckGo = "BORROWCELL_CHECKGO"

// ownerCheck controls whether cells record and verify their creating
// goroutine. Read once at init; tests toggle it directly.
var ownerCheck bool

// nextCellID allocates diagnostic IDs for trace correlation. This is
// the one atomic in the package and it is not on the enforcement path;
// it only keeps IDs unique when unrelated cells are created from
// unrelated goroutines.
var nextCellID atomic.Uint64

func init() {
	switch os.Getenv(EnvCheckGo) {
	case "1", "true":
		ownerCheck = true
	}
}

// Cell owns a value and tracks its borrow state. Obtain access through
// TryBorrow/Borrow (shared, read-only) or TryBorrowMut/BorrowMut
// (exclusive, read-write); every successful call returns a guard that
// must be released exactly once, normally with defer.
//
// A Cell is single-threaded: it must only ever be used from one
// goroutine at a time, with callers providing any cross-goroutine
// handoff. Guards keep the cell reachable, so a cell is never collected
// out from under a live guard.
type Cell[V any] struct {
	value *rawcell.Cell[V]
	state *cell.Cell[state.State]

	// id correlates trace events for this cell.
	id uint64

	// owner is the creating goroutine when the owner check is on,
	// zero otherwise.
	owner int64

	// writerSite is the acquisition stack of the live write guard.
	// Captured only while tracing, cleared on release.
	writerSite []uintptr
}

// New creates a cell owning value, with no guards outstanding.
func New[V any](value V) *Cell[V] {
	c := &Cell[V]{
		value: rawcell.New(value),
		state: cell.New(state.Unused),
		id:    nextCellID.Add(1),
	}
	if ownerCheck {
		c.owner = goid.Current()
	}
	return c
}

// TryBorrow acquires shared read access. It succeeds whenever no write
// guard is outstanding, adding one to the reader count; otherwise it
// returns ErrMutablyBorrowed and the state is left untouched.
func (c *Cell[V]) TryBorrow() (*ReadGuard[V], error) {
	c.assertOwner("try_borrow")

	st := c.state.Get()
	if st.IsWriter() {
		trace.Denied(c.id, "borrow", st.String(), c.writerSite)
		return nil, ErrMutablyBorrowed
	}

	next := st.AddReader()
	c.state.Set(next)
	trace.Transition(c.id, "borrow", st.String(), next.String())

	return &ReadGuard[V]{cell: c, value: c.value.Get()}, nil
}

// Borrow acquires shared read access, treating contention as a caller
// error: it panics if a write guard is outstanding. Use TryBorrow when
// contention is an expected outcome.
func (c *Cell[V]) Borrow() *ReadGuard[V] {
	g, err := c.TryBorrow()
	if err != nil {
		panic("Value borrowed mutably, can't borrow.")
	}
	return g
}

// TryBorrowMut acquires exclusive read-write access. It succeeds only
// when no guard of either kind is outstanding; otherwise it returns
// ErrBorrowed and the state is left untouched.
func (c *Cell[V]) TryBorrowMut() (*WriteGuard[V], error) {
	c.assertOwner("try_borrow_mut")

	st := c.state.Get()
	if !st.IsUnused() {
		trace.Denied(c.id, "borrow_mut", st.String(), c.writerSite)
		return nil, ErrBorrowed
	}

	c.state.Set(state.Writer)
	c.writerSite = trace.Capture(1)
	trace.Transition(c.id, "borrow_mut", st.String(), state.Writer.String())

	return &WriteGuard[V]{cell: c, value: c.value.Get()}, nil
}

// BorrowMut acquires exclusive access, treating contention as a caller
// error: it panics if any guard is outstanding.
func (c *Cell[V]) BorrowMut() *WriteGuard[V] {
	g, err := c.TryBorrowMut()
	if err != nil {
		panic("Value already borrowed")
	}
	return g
}

// Replace stores value and returns the previous contents. It requires
// the same exclusivity as a write borrow and fails with ErrBorrowed
// while any guard is outstanding.
func (c *Cell[V]) Replace(value V) (V, error) {
	c.assertOwner("replace")

	st := c.state.Get()
	if !st.IsUnused() {
		trace.Denied(c.id, "replace", st.String(), c.writerSite)
		var zero V
		return zero, ErrBorrowed
	}

	p := c.value.Get()
	old := *p
	*p = value
	trace.Transition(c.id, "replace", st.String(), st.String())
	return old, nil
}

// Take replaces the contents with the zero value of V and returns the
// previous contents. Fails with ErrBorrowed while any guard is
// outstanding.
func (c *Cell[V]) Take() (V, error) {
	var zero V
	return c.Replace(zero)
}

// Unwrap returns the contained value and invalidates the cell. It
// fails with ErrBorrowed while any guard is outstanding; after a
// successful Unwrap the cell must not be used again.
func (c *Cell[V]) Unwrap() (V, error) {
	c.assertOwner("unwrap")

	st := c.state.Get()
	if !st.IsUnused() {
		trace.Denied(c.id, "unwrap", st.String(), c.writerSite)
		var zero V
		return zero, ErrBorrowed
	}
	return c.value.Unwrap(), nil
}

// String renders the cell for diagnostics. The current value is shown
// only when the cell is readable; under a live write guard the value is
// inaccessible and a placeholder is printed instead.
func (c *Cell[V]) String() string {
	g, err := c.TryBorrow()
	if err != nil {
		return "Cell{value: <borrowed>}"
	}
	defer g.Release()
	return fmt.Sprintf("Cell{value: %v}", *g.Get())
}

// assertOwner panics when the owner check is on and the cell is used
// from a goroutine other than its creator.
func (c *Cell[V]) assertOwner(op string) {
	if c.owner == 0 {
		return
	}
	if g := goid.Current(); g != c.owner {
		panic(fmt.Sprintf(
			"borrowcell: cell %d used from goroutine %d during %s, but owned by goroutine %d",
			c.id, g, op, c.owner))
	}
}
