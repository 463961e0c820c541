// Package cell implements an unchecked single-slot value cell.
//
// cell.Cell offers get/set/replace/take over a value reachable through
// shared handles, with no borrow tracking of any kind. Every operation
// is O(1) and never fails. It exists for small copyable state — the
// checked layer stores its borrow-state word in one — but is usable on
// its own wherever unchecked replacement is acceptable.
//
// Single-threaded only: nothing is synchronized, and sharing a cell
// across goroutines is a caller bug (see the checked layer's optional
// owner check for catching exactly that).
package cell
