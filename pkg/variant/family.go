package variant

import "fmt"

// AltDecl describes one alternative before its family is declared.
type AltDecl struct {
	name     string
	arity    int
	value    any
	hasValue bool
}

// Alt declares an alternative with the given name and field arity.
func Alt(name string, arity int) AltDecl {
	return AltDecl{name: name, arity: arity}
}

// AltValue declares an alternative carrying a default literal, later
// resolvable through enum.FromValue.
func AltValue(name string, arity int, value any) AltDecl {
	return AltDecl{name: name, arity: arity, value: value, hasValue: true}
}

// Family is a named algebraic type: an ordered set of alternatives.
// Immutable once declared.
type Family struct {
	name  string
	forms []*Form
	index map[string]*Form
}

// New declares a family from the given alternatives, in order. Fails
// with DuplicateAlternativeError when two alternatives share a name.
func New(name string, alts ...AltDecl) (*Family, error) {
	f := &Family{
		name:  name,
		forms: make([]*Form, 0, len(alts)),
		index: make(map[string]*Form, len(alts)),
	}
	for ordinal, alt := range alts {
		if _, dup := f.index[alt.name]; dup {
			return nil, DuplicateAlternativeError{Family: name, Name: alt.name}
		}
		form := &Form{
			family:   f,
			name:     alt.name,
			arity:    alt.arity,
			ordinal:  ordinal,
			value:    alt.value,
			hasValue: alt.hasValue,
		}
		f.forms = append(f.forms, form)
		f.index[alt.name] = form
	}
	return f, nil
}

// MustNew is New for static package-level declarations; it panics on a
// declaration error.
func MustNew(name string, alts ...AltDecl) *Family {
	f, err := New(name, alts...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Family) Name() string {
	return f.name
}

// Alternative returns the form declared under name, nil when unknown.
func (f *Family) Alternative(name string) *Form {
	return f.index[name]
}

// Alternatives returns the forms in declaration order.
func (f *Family) Alternatives() []*Form {
	out := make([]*Form, len(f.forms))
	copy(out, f.forms)
	return out
}

// Match reports whether v is an instance of any alternative of this
// family and returns it for field access.
func (f *Family) Match(v any) (*Instance, bool) {
	in := AsInstance(v)
	if in == nil || in.form.family != f {
		return nil, false
	}
	return in, true
}

// Is reports whether v belongs to this family.
func (f *Family) Is(v any) bool {
	_, ok := f.Match(v)
	return ok
}

// Exhaust unconditionally fails with the full representation of v.
// Call it from the default arm of a match so that an alternative added
// without updating every match is caught at runtime.
func (f *Family) Exhaust(v any) error {
	return UnmatchedVariantError{Value: renderValue(v)}
}

func (f *Family) String() string {
	return f.name
}

func renderValue(v any) string {
	if in := AsInstance(v); in != nil {
		return in.String()
	}
	return fmt.Sprintf("%v", v)
}
