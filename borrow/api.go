// Package borrow is the public API; the machinery lives under
// internal/borrow. See doc.go for detailed documentation and examples.
package borrow

import (
	"github.com/kolkov/borrowcell/internal/borrow/cell"
	"github.com/kolkov/borrowcell/internal/borrow/checked"
)

// Cell is a borrow-checked container: many readers or one writer,
// enforced at run time. See [New].
type Cell[V any] = checked.Cell[V]

// ReadGuard is a live shared borrow of a Cell's value. Release it
// exactly once.
type ReadGuard[V any] = checked.ReadGuard[V]

// WriteGuard is the live exclusive borrow of a Cell's value. Release
// it exactly once.
type WriteGuard[V any] = checked.WriteGuard[V]

// Slot is an unchecked single-slot cell: unconditional get, set,
// replace and take, no borrow tracking, no error conditions. See
// [NewSlot].
type Slot[S any] = cell.Cell[S]

// Contention errors returned by the Try forms. The panicking forms
// (Borrow, BorrowMut) surface the same conditions as caller-fatal
// panics instead.
var (
	// ErrMutablyBorrowed reports a read borrow denied by a live write
	// guard.
	ErrMutablyBorrowed = checked.ErrMutablyBorrowed

	// ErrBorrowed reports a write borrow (or Replace, Take, Unwrap)
	// denied by any live guard.
	ErrBorrowed = checked.ErrBorrowed
)

// New creates a borrow-checked cell owning value, with no borrows
// outstanding.
func New[V any](value V) *Cell[V] {
	return checked.New(value)
}

// NewSlot creates an unchecked single-slot cell holding value.
func NewSlot[S any](value S) *Slot[S] {
	return cell.New(value)
}
