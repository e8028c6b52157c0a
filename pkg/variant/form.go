package variant

import (
	"time"

	"github.com/google/uuid"
)

// Form is one constructible, matchable alternative scoped under its
// family.
type Form struct {
	family   *Family
	name     string
	arity    int
	ordinal  int
	value    any
	hasValue bool
}

func (f *Form) Family() *Family {
	return f.family
}

func (f *Form) Name() string {
	return f.name
}

func (f *Form) Arity() int {
	return f.arity
}

// Ordinal is the alternative's position in the declaration order.
func (f *Form) Ordinal() int {
	return f.ordinal
}

// Value returns the default literal registered at declaration, if any.
func (f *Form) Value() (any, bool) {
	return f.value, f.hasValue
}

// New constructs an instance of this alternative, populating fields
// positionally. Fails with ArityMismatchError unless exactly Arity
// arguments are supplied.
func (f *Form) New(args ...any) (*Instance, error) {
	if len(args) != f.arity {
		return nil, ArityMismatchError{
			Alternative: f.String(),
			Expected:    f.arity,
			Actual:      len(args),
		}
	}
	fields := make([]any, len(args))
	copy(fields, args)
	return &Instance{
		form:      f,
		fields:    fields,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}, nil
}

// MustNew is New for call sites where the arity is statically known; it
// panics on mismatch.
func (f *Form) MustNew(args ...any) *Instance {
	in, err := f.New(args...)
	if err != nil {
		panic(err)
	}
	return in
}

// Match reports whether v is an instance of this alternative and, if
// so, returns its field values in declared order for destructuring.
func (f *Form) Match(v any) ([]any, bool) {
	in := AsInstance(v)
	if in == nil || in.form != f {
		return nil, false
	}
	return in.Fields(), true
}

// Is reports whether v is an instance of this alternative.
func (f *Form) Is(v any) bool {
	_, ok := f.Match(v)
	return ok
}

func (f *Form) String() string {
	return f.family.name + "." + f.name
}
