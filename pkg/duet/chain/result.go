package chain

import "github.com/ib-77/duet/pkg/duet/result"

// ResultChain composes operations over a result.Result without unwrapping
// at each step
type ResultChain[A, E any] struct {
	cur result.Result[A, E]
}

// FromResult starts a chain from an existing Result
func FromResult[A, E any](r result.Result[A, E]) ResultChain[A, E] {
	return ResultChain[A, E]{cur: r}
}

// FromOk starts a chain from a success value
func FromOk[A, E any](val A) ResultChain[A, E] {
	return ResultChain[A, E]{cur: result.Ok[A, E](val)}
}

// Result returns the underlying Result
func (c ResultChain[A, E]) Result() result.Result[A, E] {
	return c.cur
}

// Map transforms the success value
func (c ResultChain[A, E]) Map(fn func(A) A) ResultChain[A, E] {
	return ResultChain[A, E]{cur: result.Map(c.cur, fn)}
}

// MapErr transforms the failure value
func (c ResultChain[A, E]) MapErr(fn func(E) E) ResultChain[A, E] {
	return ResultChain[A, E]{cur: result.MapErr(c.cur, fn)}
}

// FlatMap composes a function that already returns a Result
func (c ResultChain[A, E]) FlatMap(fn func(A) result.Result[A, E]) ResultChain[A, E] {
	return ResultChain[A, E]{cur: result.FlatMap(c.cur, fn)}
}

// FlatMapErr composes a function over the failure channel
func (c ResultChain[A, E]) FlatMapErr(fn func(E) result.Result[A, E]) ResultChain[A, E] {
	return ResultChain[A, E]{cur: result.FlatMapErr(c.cur, fn)}
}

// Tee runs a side effect on the success value without changing the chain
func (c ResultChain[A, E]) Tee(fn func(A)) ResultChain[A, E] {
	if v, ok := c.cur.Unpack(); ok {
		fn(v)
	}
	return c
}

// TeeErr runs a side effect on the failure value without changing the chain
func (c ResultChain[A, E]) TeeErr(fn func(E)) ResultChain[A, E] {
	if e, isErr := c.cur.UnpackErr(); isErr {
		fn(e)
	}
	return c
}

// GetOrElse collapses the chain to the success value, or fallback
func (c ResultChain[A, E]) GetOrElse(fallback A) A {
	return c.cur.GetOrElse(fallback)
}

// Finally collapses the chain via the handler for its variant
func (c ResultChain[A, E]) Finally(onOk func(A) A, onErr func(E) A) A {
	return result.Fold(c.cur, onOk, onErr)
}
