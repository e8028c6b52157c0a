// Package trap runs a block of fallible code inside a scoped boundary
// and converts its outcome into a Result: an explicit success signal
// becomes ok, a panic carrying a filtered failure becomes error, and
// anything else propagates past the boundary unhandled.
//
// Highlights:
// - Run: execute a block against a single-write Trapped outcome cell
// - Is/As/Any: build the failure filter
// - Try: guarded call for code that returns errors instead of panicking
//
// The outcome is captured on every exit path; a block that never
// signals reads as an error result rather than an undefined value.
package trap
