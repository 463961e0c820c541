package state

import "strconv"

// State is the borrow status of a checked cell, packed into one signed
// word. Use the predicates and transitions below rather than comparing
// raw values; only Unused and Writer are meaningful as constants.
type State int32

const (
	// Unused means no guard is outstanding.
	Unused State = 0

	// Writer means exactly one write guard is outstanding.
	Writer State = -1
)

// Readers returns the state for n live read guards. n must be >= 1.
func Readers(n int) State {
	if n < 1 {
		panic("borrowcell: internal error: Readers(" + strconv.Itoa(n) + ") with n < 1")
	}
	return State(n)
}

// IsUnused reports whether no guard is outstanding.
func (s State) IsUnused() bool {
	return s == Unused
}

// IsWriter reports whether a write guard is outstanding.
func (s State) IsWriter() bool {
	return s == Writer
}

// ReaderCount returns the number of live read guards, zero when the
// state is Unused or Writer.
func (s State) ReaderCount() int {
	if s > 0 {
		return int(s)
	}
	return 0
}

// AddReader returns the state after one more read guard is created.
// Valid only from Unused or a readers state; a writer state here means
// the acquisition protocol upstream is broken.
func (s State) AddReader() State {
	if s.IsWriter() {
		panic("borrowcell: internal error: AddReader on writer state")
	}
	return s + 1
}

// DropReader returns the state after one read guard is released,
// falling back to Unused when the last reader leaves. Valid only from a
// readers state.
func (s State) DropReader() State {
	if s.ReaderCount() < 1 {
		panic("borrowcell: internal error: DropReader on " + s.String())
	}
	return s - 1
}

// String returns the status in human-readable form: "unused",
// "writer", or "readers(n)". Used in trace output and panic messages,
// never on a decision path.
func (s State) String() string {
	switch {
	case s.IsUnused():
		return "unused"
	case s.IsWriter():
		return "writer"
	default:
		return "readers(" + strconv.Itoa(s.ReaderCount()) + ")"
	}
}
