package variant

// Value is implemented by wrapper types that carry a variant Instance,
// such as Maybe and Result. Matching accepts a wrapper anywhere it
// accepts a bare *Instance.
type Value interface {
	// Instance returns the wrapped instance, nil for zero-value wrappers.
	Instance() *Instance
}

// AsInstance extracts the Instance behind v, unwrapping Value
// implementations. Returns nil when v is not a variant value.
func AsInstance(v any) *Instance {
	switch t := v.(type) {
	case *Instance:
		return t
	case Value:
		return t.Instance()
	default:
		return nil
	}
}
