// Package result provides Result[T], a fallible outcome built on the
// variant engine: ok(value) or error(failure). The failure side is a
// plain Go error.
//
// Highlights:
// - Ok/Error: construct a Result
// - Map: transform the ok value, passing errors through untouched
// - Unwrap: access the value, or recover the exact captured failure
// - ToMaybe: discard the failure, keeping only the optional value
//
// Combined with the trap package, Result turns panicking code into
// values that can be matched and composed.
package result
