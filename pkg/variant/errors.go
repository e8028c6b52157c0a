package variant

import (
	"errors"
	"fmt"
)

// ErrEmptyUnwrap marks unwrap attempts on values that carry nothing:
// Maybe.nothing(), an empty Result, or a trap cell that never received
// a result.
var ErrEmptyUnwrap = errors.New("empty unwrap")

// ArityMismatchError reports a construction call whose argument count
// does not equal the alternative's declared arity.
type ArityMismatchError struct {
	Alternative string
	Expected    int
	Actual      int
}

func (e ArityMismatchError) Error() string {
	return fmt.Sprintf("%s() takes exactly %d arguments (%d given)",
		e.Alternative, e.Expected, e.Actual)
}

// DuplicateAlternativeError reports two alternatives declared under the
// same name within one family.
type DuplicateAlternativeError struct {
	Family string
	Name   string
}

func (e DuplicateAlternativeError) Error() string {
	return fmt.Sprintf("family %s declares alternative %q more than once", e.Family, e.Name)
}

// UnhashableError reports a field whose type does not support hashing,
// e.g. a slice or map. It propagates instead of degrading to identity
// hashing so callers know the instance cannot go into hash-based
// containers.
type UnhashableError struct {
	Alternative string
	Field       int
	Type        string
}

func (e UnhashableError) Error() string {
	return fmt.Sprintf("unhashable field _%d of %s: %s", e.Field, e.Alternative, e.Type)
}

// UnmatchedVariantError reports a value that reached the default arm of
// a match that was meant to be exhaustive.
type UnmatchedVariantError struct {
	Value string
}

func (e UnmatchedVariantError) Error() string {
	return fmt.Sprintf("unsupported match arm: %s", e.Value)
}
