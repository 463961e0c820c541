// Package rawcell implements the raw mutable slot the borrow machinery
// is built on.
//
// A rawcell.Cell hands out a mutable pointer to its contents through a
// shared (non-exclusive) handle. It performs no bookkeeping and no
// checking: it is a capability, not a safety primitive. The aliasing
// contract — at the moment the pointer is used, no other live view of
// the contents may exist — is upheld entirely by callers. In this
// module the only callers are cell.Cell and checked.Cell, which layer
// their own disciplines on top.
//
// Single-threaded only. Nothing here is synchronized.
package rawcell
