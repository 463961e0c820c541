package checked

import "errors"

// Borrow contention errors. These are the recoverable channel: a
// rejected borrow is a point-in-time fact the caller can handle by
// scoping guards differently. Internal-consistency violations are a
// separate channel and always panic.
var (
	// ErrMutablyBorrowed is returned by TryBorrow while a write guard
	// is outstanding.
	ErrMutablyBorrowed = errors.New("already mutably borrowed")

	// ErrBorrowed is returned by TryBorrowMut, Replace, Take and
	// Unwrap while any guard is outstanding.
	ErrBorrowed = errors.New("already borrowed")
)
