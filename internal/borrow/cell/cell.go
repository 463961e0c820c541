package cell

import "github.com/kolkov/borrowcell/internal/borrow/rawcell"

// Cell is a single-slot holder whose contents can be read and replaced
// through shared handles. All mutation is unchecked in-place
// replacement; there are no error conditions.
type Cell[S any] struct {
	slot *rawcell.Cell[S]
}

// New creates a cell holding value.
func New[S any](value S) *Cell[S] {
	return &Cell[S]{slot: rawcell.New(value)}
}

// Get returns a copy of the contents.
//
// S should be cheap to copy; the checked layer stores a one-word state
// value here for exactly that reason.
func (c *Cell[S]) Get() S {
	return *c.slot.Get()
}

// Set overwrites the contents unconditionally.
func (c *Cell[S]) Set(value S) {
	*c.slot.Get() = value
}

// Replace stores value and returns the previous contents.
func (c *Cell[S]) Replace(value S) S {
	p := c.slot.Get()
	old := *p
	*p = value
	return old
}

// Take replaces the contents with the zero value of S and returns the
// previous contents.
func (c *Cell[S]) Take() S {
	var zero S
	return c.Replace(zero)
}

// Ptr returns a mutable pointer to the contents.
//
// The caller must hold the only handle to the cell for the lifetime of
// the pointer; this is the raw escape hatch, with rawcell's contract.
func (c *Cell[S]) Ptr() *S {
	return c.slot.Get()
}

// Unwrap returns the contents. The cell must not be used afterwards.
func (c *Cell[S]) Unwrap() S {
	return c.slot.Unwrap()
}
