package maybe

import (
	"fmt"
	"iter"

	"github.com/ib-77/variant/pkg/variant"
)

// Family declares Maybe as a variant family: just carries one value,
// nothing carries none.
var Family = variant.MustNew("Maybe",
	variant.Alt("just", 1),
	variant.Alt("nothing", 0),
)

var (
	justForm    = Family.Alternative("just")
	nothingForm = Family.Alternative("nothing")
)

// Maybe is an optional value: just(v) or nothing().
type Maybe[T any] struct {
	inst *variant.Instance
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{inst: justForm.MustNew(v)}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{inst: nothingForm.MustNew()}
}

// Instance returns the underlying variant instance, nil for the zero
// Maybe.
func (m Maybe[T]) Instance() *variant.Instance {
	return m.inst
}

func (m Maybe[T]) IsJust() bool {
	return m.inst.IsA(justForm)
}

func (m Maybe[T]) IsNothing() bool {
	return !m.IsJust()
}

func (m Maybe[T]) get() T {
	v, _ := m.inst.Field(0).(T)
	return v
}

// Map applies f to the contained value, returning nothing untouched.
// f is never invoked for nothing. Methods cannot introduce type
// parameters, so the type-changing version is the package-level Map.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if !m.IsJust() {
		return m
	}
	return Just(f(m.get()))
}

// Map applies f to the contained value of m, changing the value type.
func Map[In, Out any](m Maybe[In], f func(In) Out) Maybe[Out] {
	if !m.IsJust() {
		return Nothing[Out]()
	}
	return Just(f(m.get()))
}

// Filter keeps just(v) when pred(v) holds and degrades to nothing
// otherwise. pred is never invoked for nothing.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if !m.IsJust() {
		return m
	}
	if pred(m.get()) {
		return m
	}
	return Nothing[T]()
}

// Unwrap returns the contained value; unwrapping nothing fails with an
// error wrapping variant.ErrEmptyUnwrap.
func (m Maybe[T]) Unwrap() (T, error) {
	if m.IsJust() {
		return m.get(), nil
	}
	var zero T
	return zero, fmt.Errorf("cannot unwrap Maybe.nothing(); only Maybe.just(val) carries a value: %w",
		variant.ErrEmptyUnwrap)
}

// UnwrapOr returns the contained value, or def for nothing.
func (m Maybe[T]) UnwrapOr(def T) T {
	if m.IsJust() {
		return m.get()
	}
	return def
}

// Seq yields the contained value once for just and nothing otherwise.
// The sequence is restartable: re-iterating yields the same result.
func (m Maybe[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.IsJust() {
			yield(m.get())
		}
	}
}

func (m Maybe[T]) Equal(other Maybe[T]) bool {
	if m.inst == nil || other.inst == nil {
		return m.IsNothing() && other.IsNothing()
	}
	return m.inst.Equal(other.inst)
}

func (m Maybe[T]) String() string {
	if m.inst == nil {
		return "Maybe.nothing()"
	}
	return m.inst.String()
}

var _ variant.Value = Maybe[int]{}
