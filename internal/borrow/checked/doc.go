// Package checked implements the borrow-checked cell.
//
// A checked.Cell owns a value and enforces, at run time, the aliasing
// rule a static checker would enforce at compile time: any number of
// simultaneous readers, or exactly one writer, never both. Access is
// granted through guards; creating a guard is the only way to move the
// cell's borrow state forward, and releasing it is the only way to move
// the state back. Contention is reported through recoverable sentinel
// errors; a state that no sequence of guard operations could legally
// produce is a bug in this package and panics.
//
// The enforcement path uses no atomics and no locks: the cell is
// single-threaded by contract. Set BORROWCELL_CHECKGO=1 to have cells
// remember their creating goroutine and panic on use from any other,
// which turns a silent contract violation into an immediate report —
// the same philosophy, one level up, as the borrow check itself.
package checked
