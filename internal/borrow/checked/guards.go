package checked

import (
	"github.com/kolkov/borrowcell/internal/borrow/state"
	"github.com/kolkov/borrowcell/internal/borrow/trace"
)

// ReadGuard is a live shared borrow. It exposes the cell's value for
// reading and keeps the cell in a readers state until released.
//
// A guard represents a unique claim: it must not be copied, and
// Release must be called exactly once, normally with defer. Using a
// guard after releasing it panics.
type ReadGuard[V any] struct {
	cell     *Cell[V]
	value    *V
	released bool
}

// Get returns a pointer to the cell's value.
//
// The pointer is read-only by contract: writing through it bypasses
// the discipline every other holder is relying on. For write access,
// release the guard and acquire a write guard.
func (g *ReadGuard[V]) Get() *V {
	if g.released {
		panic("borrowcell: use of released read guard")
	}
	return g.value
}

// Release ends the shared borrow, dropping the reader count by one and
// returning the cell to the unused state when this was the last
// reader. It panics on a second call, and panics if the cell is not in
// a readers state, which would mean the bookkeeping itself is broken.
func (g *ReadGuard[V]) Release() {
	if g.released {
		panic("borrowcell: internal error: read guard released twice")
	}
	g.released = true
	g.cell.assertOwner("release_read")

	st := g.cell.state.Get()
	if st.ReaderCount() < 1 {
		panic("borrowcell: internal error: read guard released while cell state is " + st.String())
	}

	next := st.DropReader()
	g.cell.state.Set(next)
	trace.Transition(g.cell.id, "release_read", st.String(), next.String())
}

// WriteGuard is the live exclusive borrow. It exposes the cell's value
// for reading and writing and keeps the cell in the writer state until
// released.
//
// A guard represents a unique claim: it must not be copied, and
// Release must be called exactly once, normally with defer. Using a
// guard after releasing it panics.
type WriteGuard[V any] struct {
	cell     *Cell[V]
	value    *V
	released bool
}

// Get returns a mutable pointer to the cell's value.
func (g *WriteGuard[V]) Get() *V {
	if g.released {
		panic("borrowcell: use of released write guard")
	}
	return g.value
}

// Set overwrites the cell's value.
func (g *WriteGuard[V]) Set(value V) {
	*g.Get() = value
}

// Release ends the exclusive borrow, returning the cell to the unused
// state. It panics on a second call, and panics if the cell is not in
// the writer state, which would mean the bookkeeping itself is broken.
func (g *WriteGuard[V]) Release() {
	if g.released {
		panic("borrowcell: internal error: write guard released twice")
	}
	g.released = true
	g.cell.assertOwner("release_write")

	st := g.cell.state.Get()
	if !st.IsWriter() {
		panic("borrowcell: internal error: write guard released while cell state is " + st.String())
	}

	g.cell.state.Set(state.Unused)
	g.cell.writerSite = nil
	trace.Transition(g.cell.id, "release_write", st.String(), state.Unused.String())
}
