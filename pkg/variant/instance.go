package variant

import (
	"fmt"
	"hash"
	"hash/fnv"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Instance is an immutable value of exactly one alternative, holding
// that alternative's field values in order. The id and creation time
// are construction metadata and take no part in equality, hashing or
// representation.
type Instance struct {
	form      *Form
	fields    []any
	id        uuid.UUID
	createdAt time.Time
}

func (in *Instance) Form() *Form {
	return in.form
}

func (in *Instance) Family() *Family {
	return in.form.family
}

func (in *Instance) Arity() int {
	return in.form.arity
}

// Field returns the field value at position i.
func (in *Instance) Field(i int) any {
	return in.fields[i]
}

// Fields returns a copy of the field values in declared order.
func (in *Instance) Fields() []any {
	out := make([]any, len(in.fields))
	copy(out, in.fields)
	return out
}

func (in *Instance) Id() uuid.UUID {
	return in.id
}

func (in *Instance) CreatedAt() time.Time {
	return in.createdAt
}

// IsA reports whether the instance belongs to alternative f.
func (in *Instance) IsA(f *Form) bool {
	return in != nil && in.form == f
}

// In reports whether the instance belongs to family f.
func (in *Instance) In(f *Family) bool {
	return in != nil && in.form.family == f
}

// Equal reports structural equality: same alternative of the same
// family, then pairwise equal fields in declared order, stopping at the
// first mismatch. Instances of different alternatives are never equal,
// even at zero arity.
func (in *Instance) Equal(other *Instance) bool {
	if in == nil || other == nil {
		return in == other
	}
	if in.form != other.form {
		return false
	}
	for i, field := range in.fields {
		if !fieldEqual(field, other.fields[i]) {
			return false
		}
	}
	return true
}

func fieldEqual(a, b any) bool {
	ai := AsInstance(a)
	bi := AsInstance(b)
	if ai != nil || bi != nil {
		return ai.Equal(bi)
	}
	return reflect.DeepEqual(a, b)
}

// Hash combines the alternative identity with the ordered field values.
// Fails with UnhashableError when any field's type is not comparable.
func (in *Instance) Hash() (uint64, error) {
	h := fnv.New64a()
	if err := in.hashInto(h); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

func (in *Instance) hashInto(h hash.Hash64) error {
	io.WriteString(h, in.form.String())
	fmt.Fprintf(h, "/%d(", in.form.ordinal)
	for i, field := range in.fields {
		if err := hashField(h, in.form, i, field); err != nil {
			return err
		}
	}
	io.WriteString(h, ")")
	return nil
}

func hashField(h hash.Hash64, form *Form, index int, field any) error {
	if nested := AsInstance(field); nested != nil {
		return nested.hashInto(h)
	}
	if field == nil {
		io.WriteString(h, "<nil>;")
		return nil
	}
	return hashValue(h, form, index, reflect.ValueOf(field))
}

// hashValue hashes by pointed-to value, not by address, so that
// instances equal under Equal always hash alike. Pointers are followed
// at every depth, matching how reflect.DeepEqual compares them.
func hashValue(h hash.Hash64, form *Form, index int, v reflect.Value) error {
	for {
		if v.CanInterface() {
			if nested := AsInstance(v.Interface()); nested != nil {
				return nested.hashInto(h)
			}
		}
		if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			break
		}
		if v.IsNil() {
			io.WriteString(h, "<nil>;")
			return nil
		}
		v = v.Elem()
	}
	if !v.Comparable() {
		return UnhashableError{
			Alternative: form.String(),
			Field:       index,
			Type:        v.Type().String(),
		}
	}
	switch v.Kind() {
	case reflect.Struct:
		io.WriteString(h, v.Type().String())
		io.WriteString(h, "{")
		for i := 0; i < v.NumField(); i++ {
			if err := hashValue(h, form, index, v.Field(i)); err != nil {
				return err
			}
		}
		io.WriteString(h, "};")
		return nil
	case reflect.Array:
		io.WriteString(h, v.Type().String())
		io.WriteString(h, "[")
		for i := 0; i < v.Len(); i++ {
			if err := hashValue(h, form, index, v.Index(i)); err != nil {
				return err
			}
		}
		io.WriteString(h, "];")
		return nil
	default:
		io.WriteString(h, v.Type().String())
		fmt.Fprintf(h, "=%v;", v)
		return nil
	}
}

// String renders as Family.alternative(field_0, ..., field_k); zero
// arity renders with empty parentheses.
func (in *Instance) String() string {
	var b strings.Builder
	b.WriteString(in.form.String())
	b.WriteByte('(')
	for i, field := range in.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatField(field))
	}
	b.WriteByte(')')
	return b.String()
}

func formatField(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	if in := AsInstance(v); in != nil {
		return in.String()
	}
	return fmt.Sprintf("%v", v)
}
