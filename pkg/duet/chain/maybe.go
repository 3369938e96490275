package chain

import "github.com/ib-77/duet/pkg/duet/maybe"

// MaybeChain composes operations over a maybe.Maybe without unwrapping at
// each step
type MaybeChain[A any] struct {
	cur maybe.Maybe[A]
}

// FromMaybe starts a chain from an existing Maybe
func FromMaybe[A any](m maybe.Maybe[A]) MaybeChain[A] {
	return MaybeChain[A]{cur: m}
}

// FromJust starts a chain from a present value
func FromJust[A any](val A) MaybeChain[A] {
	return MaybeChain[A]{cur: maybe.Just(val)}
}

// Maybe returns the underlying Maybe
func (c MaybeChain[A]) Maybe() maybe.Maybe[A] {
	return c.cur
}

// Map transforms the present value
func (c MaybeChain[A]) Map(fn func(A) A) MaybeChain[A] {
	return MaybeChain[A]{cur: maybe.Map(c.cur, fn)}
}

// FlatMap composes a function that already returns a Maybe
func (c MaybeChain[A]) FlatMap(fn func(A) maybe.Maybe[A]) MaybeChain[A] {
	return MaybeChain[A]{cur: maybe.FlatMap(c.cur, fn)}
}

// Tee runs a side effect on the present value without changing the chain
func (c MaybeChain[A]) Tee(fn func(A)) MaybeChain[A] {
	if v, ok := c.cur.Unpack(); ok {
		fn(v)
	}
	return c
}

// GetOrElse collapses the chain to the present value, or fallback
func (c MaybeChain[A]) GetOrElse(fallback A) A {
	return c.cur.GetOrElse(fallback)
}

// Finally collapses the chain via the handler for its variant
func (c MaybeChain[A]) Finally(onJust func(A) A, onNothing func() A) A {
	return maybe.Fold(c.cur, onJust, onNothing)
}
