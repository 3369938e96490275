package maybe

import (
	"fmt"

	"github.com/ib-77/duet/pkg/duet"
)

// Maybe is an optional value: Just holding one value of type A, or Nothing.
// The zero value is Nothing.
type Maybe[A any] struct {
	val     A
	present bool
}

func Just[A any](val A) Maybe[A] {
	return Maybe[A]{val: val, present: true}
}

// Nothing returns the empty Maybe. Every Nothing[A]() and every zero
// Maybe[A] is the identical value, so independently obtained empty Maybes
// always compare equal.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// Of lifts Go's comma-ok pair into a Maybe.
func Of[A any](val A, ok bool) Maybe[A] {
	if !ok {
		return Nothing[A]()
	}
	return Just(val)
}

// FromPtr lifts a nilable pointer into a Maybe, dereferencing a non-nil p.
func FromPtr[A any](p *A) Maybe[A] {
	if p == nil {
		return Nothing[A]()
	}
	return Just(*p)
}

func (m Maybe[A]) IsJust() bool {
	return m.present
}

func (m Maybe[A]) IsNothing() bool {
	return !m.present
}

// Get returns the contained value, or a *duet.EmptyValueError when m is
// Nothing.
func (m Maybe[A]) Get() (A, error) {
	if !m.present {
		var zero A
		return zero, &duet.EmptyValueError{Variant: duet.VariantNothing}
	}
	return m.val, nil
}

// MustGet returns the contained value, panicking with a
// *duet.EmptyValueError when m is Nothing.
func (m Maybe[A]) MustGet() A {
	v, err := m.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// GetOrElse returns the contained value, or fallback when m is Nothing.
func (m Maybe[A]) GetOrElse(fallback A) A {
	if !m.present {
		return fallback
	}
	return m.val
}

// Unpack returns the contained value and whether it is present.
func (m Maybe[A]) Unpack() (A, bool) {
	return m.val, m.present
}

func (m Maybe[A]) String() string {
	if !m.present {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.val)
}
