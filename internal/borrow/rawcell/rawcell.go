package rawcell

// Cell owns a value and grants mutable access to it through a shared
// handle. It is the trusted leaf of the borrow stack: every checked
// guarantee in this module bottoms out in a rawcell pointer whose
// exclusivity some caller has already established.
type Cell[V any] struct {
	value V
}

// New creates a cell owning value.
func New[V any](value V) *Cell[V] {
	return &Cell[V]{value: value}
}

// Get returns a mutable pointer to the contents.
//
// Contract (caller-upheld, not checked here): at the moment the
// returned pointer is read or written, no other live pointer obtained
// from this cell may be in use. Violating this is exactly the bug the
// checked layer exists to catch; code that bypasses the checked layer
// takes the contract on itself.
func (c *Cell[V]) Get() *V {
	return &c.value
}

// Unwrap returns the contained value. The cell must not be used
// afterwards; the caller is asserting no outstanding pointers exist.
func (c *Cell[V]) Unwrap() V {
	return c.value
}
