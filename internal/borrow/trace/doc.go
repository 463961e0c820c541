// Package trace implements opt-in diagnostics for the checked layer.
//
// When the BORROWCELL_TRACE environment variable is set to "1" (or
// "true"), every borrow-state transition and every denied borrow is
// logged through a zap logger, and write-guard acquisitions capture a
// short call stack so a later denial can point at the holder's
// acquisition site.
//
// Tracing is strictly an observer: it never synchronizes anything and
// never changes the outcome of an operation. When disabled (the
// default) every entry point is a cheap no-op against a nop logger.
package trace
