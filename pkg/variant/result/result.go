package result

import (
	"fmt"

	"github.com/ib-77/variant/pkg/variant"
	"github.com/ib-77/variant/pkg/variant/maybe"
)

// Family declares Result as a variant family: ok carries the success
// value, error carries the failure.
var Family = variant.MustNew("Result",
	variant.Alt("ok", 1),
	variant.Alt("error", 1),
)

var (
	okForm  = Family.Alternative("ok")
	errForm = Family.Alternative("error")
)

// Result is a fallible outcome: ok(v) or error(err). The zero Result is
// empty and unwraps to an empty-unwrap failure.
type Result[T any] struct {
	inst *variant.Instance
}

func Ok[T any](v T) Result[T] {
	return Result[T]{inst: okForm.MustNew(v)}
}

func Error[T any](err error) Result[T] {
	return Result[T]{inst: errForm.MustNew(err)}
}

// Instance returns the underlying variant instance, nil for the zero
// Result.
func (r Result[T]) Instance() *variant.Instance {
	return r.inst
}

func (r Result[T]) IsOk() bool {
	return r.inst.IsA(okForm)
}

func (r Result[T]) IsError() bool {
	return r.inst.IsA(errForm)
}

func (r Result[T]) IsEmpty() bool {
	return r.inst == nil
}

// Err returns the captured failure, nil for ok and empty results.
func (r Result[T]) Err() error {
	if !r.IsError() {
		return nil
	}
	err, _ := r.inst.Field(0).(error)
	return err
}

func (r Result[T]) get() T {
	v, _ := r.inst.Field(0).(T)
	return v
}

// Map applies f to the ok value; error results pass through unchanged
// and f is never invoked. The type-changing version is the
// package-level Map.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if !r.IsOk() {
		return r
	}
	return Ok(f(r.get()))
}

// Map applies f to the ok value of r, changing the value type. The
// error side passes through carrying the same failure instance.
func Map[In, Out any](r Result[In], f func(In) Out) Result[Out] {
	if !r.IsOk() {
		return Result[Out]{inst: r.inst}
	}
	return Ok(f(r.get()))
}

// Unwrap returns the ok value. For an error result it returns the exact
// failure captured at construction, so callers can recover it by
// identity. Unwrapping an empty Result fails with an error wrapping
// variant.ErrEmptyUnwrap.
func (r Result[T]) Unwrap() (T, error) {
	var zero T
	switch {
	case r.IsOk():
		return r.get(), nil
	case r.IsError():
		return zero, r.Err()
	default:
		return zero, fmt.Errorf("cannot unwrap an empty Result: %w", variant.ErrEmptyUnwrap)
	}
}

// ToMaybe converts ok(v) to just(v) and anything else to nothing,
// discarding the failure.
func (r Result[T]) ToMaybe() maybe.Maybe[T] {
	if r.IsOk() {
		return maybe.Just(r.get())
	}
	return maybe.Nothing[T]()
}

func (r Result[T]) Equal(other Result[T]) bool {
	if r.inst == nil || other.inst == nil {
		return r.inst == other.inst
	}
	return r.inst.Equal(other.inst)
}

func (r Result[T]) String() string {
	if r.inst == nil {
		return "Result(<empty>)"
	}
	return r.inst.String()
}

var _ variant.Value = Result[int]{}
