package variant

// Matcher dispatches on the alternative of a value, standing in for a
// native match expression. Arms run eagerly: the first Case or When
// that matches runs its handler and later arms are skipped.
type Matcher struct {
	in      *Instance
	raw     any
	matched bool
}

// Match starts a dispatch over v, which may be a *Instance or any
// Value wrapper.
func Match(v any) Matcher {
	return Matcher{in: AsInstance(v), raw: v}
}

// Case runs arm with the destructured field values when the value
// belongs to alternative f.
func (m Matcher) Case(f *Form, arm func(fields ...any)) Matcher {
	if m.matched || m.in == nil || m.in.form != f {
		return m
	}
	if arm != nil {
		arm(m.in.Fields()...)
	}
	m.matched = true
	return m
}

// When runs arm when the value belongs to any alternative of family f.
func (m Matcher) When(f *Family, arm func(in *Instance)) Matcher {
	if m.matched || m.in == nil || m.in.form.family != f {
		return m
	}
	if arm != nil {
		arm(m.in)
	}
	m.matched = true
	return m
}

// Default runs arm when no earlier arm matched. The instance argument
// is nil when the matched value was not a variant value at all.
func (m Matcher) Default(arm func(in *Instance)) Matcher {
	if m.matched {
		return m
	}
	if arm != nil {
		arm(m.in)
	}
	m.matched = true
	return m
}

func (m Matcher) Matched() bool {
	return m.matched
}

// Exhaust closes the dispatch: it returns nil when an arm ran and an
// UnmatchedVariantError carrying the value's representation otherwise.
// Use it instead of Default when the arms are meant to be exhaustive.
func (m Matcher) Exhaust() error {
	if m.matched {
		return nil
	}
	return UnmatchedVariantError{Value: renderValue(m.raw)}
}
