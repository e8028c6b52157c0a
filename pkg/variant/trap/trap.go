package trap

import (
	"errors"
	"fmt"

	"github.com/ib-77/variant/pkg/variant"
	"github.com/ib-77/variant/pkg/variant/result"
)

// Kind decides whether a captured failure belongs to the trap filter.
type Kind func(error) bool

// Is matches failures against a sentinel target with errors.Is.
func Is(target error) Kind {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// As matches failures whose chain contains an E. E may be an interface,
// e.g. As[runtime.Error]() traps runtime failures such as division by
// zero.
func As[E error]() Kind {
	return func(err error) bool {
		var e E
		return errors.As(err, &e)
	}
}

// Any matches every failure.
func Any() Kind {
	return func(error) bool {
		return true
	}
}

// Trapped is the single-write outcome cell of one Run block. The first
// signal wins: once Ok or Error has written the cell, later signals are
// ignored.
type Trapped[T any] struct {
	res result.Result[T]
	set bool
}

// Ok signals the success value of the block.
func (t *Trapped[T]) Ok(v T) {
	if t.set {
		return
	}
	t.res = result.Ok(v)
	t.set = true
}

// Error signals a failure. Usually invoked by Run's capture rather than
// by the block itself.
func (t *Trapped[T]) Error(err error) {
	if t.set {
		return
	}
	t.res = result.Error[T](err)
	t.set = true
}

// Signaled reports whether the cell has been written.
func (t *Trapped[T]) Signaled() bool {
	return t.set
}

// Result reads the outcome. A cell that never received a signal reads
// as an error result wrapping variant.ErrEmptyUnwrap, not as an
// undefined value.
func (t *Trapped[T]) Result() result.Result[T] {
	if !t.set {
		return result.Error[T](fmt.Errorf("no result produced; Trapped.Ok was never called: %w",
			variant.ErrEmptyUnwrap))
	}
	return t.res
}

// Run executes block inside a trap boundary. A panic whose value is an
// error matching one of kinds (or any error, when no kinds are given)
// is captured into the outcome and considered handled. A panic that
// does not match, or whose value is not an error, propagates past the
// boundary unchanged.
func Run[T any](block func(t *Trapped[T]), kinds ...Kind) result.Result[T] {
	t := &Trapped[T]{}
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			err, ok := r.(error)
			if !ok || !filtered(err, kinds) {
				panic(r)
			}
			t.Error(err)
		}()
		block(t)
	}()
	return t.Result()
}

// Try converts a (value, error) call into a Result directly, for code
// that reports failures as return values instead of panicking.
func Try[T any](fn func() (T, error)) result.Result[T] {
	v, err := fn()
	if err != nil {
		return result.Error[T](err)
	}
	return result.Ok(v)
}

func filtered(err error, kinds []Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, kind := range kinds {
		if kind != nil && kind(err) {
			return true
		}
	}
	return false
}
