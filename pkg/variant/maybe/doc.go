// Package maybe provides Maybe[T], an optional value built on the
// variant engine: just(value) or nothing().
//
// Highlights:
// - Just/Nothing: construct a Maybe
// - Map/Filter: transform or drop the contained value
// - Unwrap/UnwrapOr: access the value, with or without a default
// - Seq: iterate the 0-or-1 contained values
//
// The zero Maybe behaves as nothing. When used consistently instead of
// nil checks, a missed-empty bug becomes an explicit unwrap failure.
package maybe
