// Package state encodes the borrow status of a checked cell.
//
// The three logical states — unused, n readers, one writer — are packed
// into a single signed 32-bit word so the whole status fits in one
// register and copies for free:
//
//	 0  unused
//	 n  n live readers (n > 0)
//	-1  one live writer
//
// The encoding is an implementation detail of this package; callers go
// through the predicates and transition helpers, which keep the word in
// the valid range by construction.
package state
