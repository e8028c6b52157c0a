// Package variant declares algebraic variant types (tagged unions) at
// runtime: a Family is a named, ordered set of alternatives, each a
// constructible Form producing immutable Instances.
//
// Highlights:
// - New/MustNew: declare a family from Alt/AltValue alternative declarations
// - Form.New/MustNew: construct an instance with arity checking
// - Instance.Equal/Hash/String: structural equality, hashing, representation
// - Form.Match, Family.Match: destructure values for pattern matching
// - Match: fluent dispatch helper replacing a native match expression
// - Family.Exhaust: runtime stand-in for compile-time exhaustiveness
// - ParseFamilies: declare families from a YAML schema
//
// Families are declare-once, construct-many: nothing mutates a family
// after declaration, and instances are immutable and freely shareable.
package variant
