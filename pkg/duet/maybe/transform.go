package maybe

// Map transforms the contained value with fn. Nothing maps to Nothing and fn
// is not invoked.
func Map[A, B any](m Maybe[A], fn func(A) B) Maybe[B] {
	if !m.present {
		return Nothing[B]()
	}
	return Just(fn(m.val))
}

// FlatMap composes a function that already returns a Maybe. The Maybe
// returned by fn is passed through as is, never re-wrapped, so chains of
// lookups short-circuit on the first Nothing without nesting containers.
func FlatMap[A, B any](m Maybe[A], fn func(A) Maybe[B]) Maybe[B] {
	if !m.present {
		return Nothing[B]()
	}
	return fn(m.val)
}

// Apply applies a function held in fns to the value held in m. Nothing on
// either side yields Nothing; a Nothing receiver wins without consulting
// fns.
func Apply[A, B any](m Maybe[A], fns Maybe[func(A) B]) Maybe[B] {
	if !m.present || !fns.present {
		return Nothing[B]()
	}
	return Just(fns.val(m.val))
}

// Fold collapses m into a single value via the handler for its variant.
func Fold[A, B any](m Maybe[A], onJust func(A) B, onNothing func() B) B {
	if !m.present {
		return onNothing()
	}
	return onJust(m.val)
}
