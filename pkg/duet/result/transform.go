package result

// Map transforms the success value with fn. Err passes through unchanged and
// fn is not invoked.
func Map[A, B, E any](r Result[A, E], fn func(A) B) Result[B, E] {
	if !r.ok {
		return Err[B](r.err)
	}
	return Ok[B, E](fn(r.val))
}

// MapErr transforms the failure value with fn. Ok passes through unchanged
// and fn is not invoked.
func MapErr[A, E, F any](r Result[A, E], fn func(E) F) Result[A, F] {
	if r.ok {
		return Ok[A, F](r.val)
	}
	return Err[A](fn(r.err))
}

// FlatMap composes a function that already returns a Result. The Result
// returned by fn is passed through as is, never re-wrapped; an Err receiver
// passes through with fn not invoked.
func FlatMap[A, B, E any](r Result[A, E], fn func(A) Result[B, E]) Result[B, E] {
	if !r.ok {
		return Err[B](r.err)
	}
	return fn(r.val)
}

// FlatMapErr composes a function over the failure channel: the Result
// returned by fn is passed through as is, and an Ok receiver passes through
// with fn not invoked. The success channel keeps type A while the failure
// channel re-types from E to F in the same call.
func FlatMapErr[A, E, F any](r Result[A, E], fn func(E) Result[A, F]) Result[A, F] {
	if r.ok {
		return Ok[A, F](r.val)
	}
	return fn(r.err)
}

// Apply applies a function held in fns to the success value held in r. An
// Err receiver wins without consulting fns; an Ok receiver takes the error
// of an Err fns container, so a chain of applies surfaces the first failure
// encountered left to right.
func Apply[A, B, E any](r Result[A, E], fns Result[func(A) B, E]) Result[B, E] {
	if !r.ok {
		return Err[B](r.err)
	}
	if !fns.ok {
		return Err[B](fns.err)
	}
	return Ok[B, E](fns.val(r.val))
}

// Fold collapses r into a single value via the handler for its variant.
func Fold[A, E, B any](r Result[A, E], onOk func(A) B, onErr func(E) B) B {
	if !r.ok {
		return onErr(r.err)
	}
	return onOk(r.val)
}
