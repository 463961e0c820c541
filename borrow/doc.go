// Package borrow provides a runtime-checked borrow discipline for
// values shared through multiple handles.
//
// A borrow.Cell holds one value and enforces, dynamically, the rule a
// static aliasing checker enforces at compile time: at any moment the
// value has either any number of readers or exactly one writer, never
// both. Use it when a value is reachable through several owners — so
// exclusivity cannot be proven statically — but simultaneous
// mutable-and-other access would still be a bug worth a clear,
// recoverable error instead of silent corruption.
//
// # Quick Start
//
//	c := borrow.New(42)
//
//	// Shared read access; any number may coexist.
//	r := c.Borrow()
//	fmt.Println(*r.Get())
//	r.Release()
//
//	// Exclusive write access; fails while anything else is live.
//	w, err := c.TryBorrowMut()
//	if err != nil {
//		// another guard is outstanding
//	}
//	w.Set(43)
//	w.Release()
//
// Every successful borrow returns a guard. Release it exactly once,
// normally with defer, on every path out of the scope that acquired
// it. Releasing drives the cell's state machine back; the cell and
// its guards are the only things that ever touch that state.
//
// # Checked and unchecked forms
//
// TryBorrow and TryBorrowMut report contention as sentinel errors
// ([ErrMutablyBorrowed], [ErrBorrowed]) for callers that expect it.
// Borrow and BorrowMut panic on contention, for callers asserting the
// borrow must succeed. A third channel — panics prefixed with
// "borrowcell: internal error" — signals inconsistent bookkeeping,
// which is a bug in this library, never an expected outcome.
//
// # Single-threaded by contract
//
// Cells use no locks and no atomics: sharing one across goroutines
// without external handoff is a caller bug. Two environment switches
// aid debugging:
//
//	BORROWCELL_CHECKGO=1  cells panic when used off their creating goroutine
//	BORROWCELL_TRACE=1    borrow transitions and denials are logged,
//	                      with the holder's acquisition site on denials
//
// # The unchecked slot
//
// [Slot] is the companion primitive: a single-slot cell with
// unconditional Get/Set/Replace/Take and no borrow tracking, for small
// values where the discipline would be overhead. The checked cell
// stores its own borrow state in one.
package borrow
