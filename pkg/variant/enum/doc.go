// Package enum resolves literal values back to the variant alternative
// that declared them as its default, modeling classic enums on top of
// variant families.
//
// Highlights:
// - FromValue: literal -> Maybe of the matching zero-arity instance
//
// Lookups are memoized per (family, value) for the lifetime of the
// process and safe for concurrent use.
package enum
