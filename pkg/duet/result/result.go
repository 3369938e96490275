package result

import (
	"fmt"

	"github.com/ib-77/duet/pkg/duet"
)

// Result is the outcome of a fallible computation: Ok holding a value of
// type A, or Err holding a failure of type E. The zero value is Err holding
// E's zero value.
type Result[A, E any] struct {
	val A
	err E
	ok  bool
}

func Ok[A, E any](val A) Result[A, E] {
	return Result[A, E]{val: val, ok: true}
}

func Err[A, E any](err E) Result[A, E] {
	return Result[A, E]{err: err}
}

// Of lifts Go's (value, error) pair into a Result. A nil error means Ok.
func Of[A any](val A, err error) Result[A, error] {
	if err != nil {
		return Err[A](err)
	}
	return Ok[A, error](val)
}

func (r Result[A, E]) IsOk() bool {
	return r.ok
}

func (r Result[A, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value, or a *duet.EmptyValueError when r is Err.
// The Err payload is never surfaced here; read it with UnpackErr.
func (r Result[A, E]) Get() (A, error) {
	if !r.ok {
		var zero A
		return zero, &duet.EmptyValueError{Variant: duet.VariantErr}
	}
	return r.val, nil
}

// MustGet returns the success value, panicking with a
// *duet.EmptyValueError when r is Err.
func (r Result[A, E]) MustGet() A {
	v, err := r.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// GetOrElse returns the success value, or fallback when r is Err.
func (r Result[A, E]) GetOrElse(fallback A) A {
	if !r.ok {
		return fallback
	}
	return r.val
}

// Unpack returns the success value and whether r is Ok.
func (r Result[A, E]) Unpack() (A, bool) {
	return r.val, r.ok
}

// UnpackErr returns the failure value and whether r is Err.
func (r Result[A, E]) UnpackErr() (E, bool) {
	return r.err, !r.ok
}

// Swap exchanges the channels: Ok(v) becomes Err(v) and Err(e) becomes
// Ok(e). Swapping twice is the identity.
func (r Result[A, E]) Swap() Result[E, A] {
	if !r.ok {
		return Ok[E, A](r.err)
	}
	return Err[E](r.val)
}

func (r Result[A, E]) String() string {
	if !r.ok {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.val)
}
