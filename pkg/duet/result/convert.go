package result

import "github.com/ib-77/duet/pkg/duet/maybe"

// FromMaybe converts a Maybe into a Result, substituting failObj for the
// missing value: Just(v) becomes Ok(v) and Nothing becomes Err(failObj).
func FromMaybe[A, E any](m maybe.Maybe[A], failObj E) Result[A, E] {
	if v, ok := m.Unpack(); ok {
		return Ok[A, E](v)
	}
	return Err[A](failObj)
}

// ToMaybe converts to a Maybe, discarding the failure: Ok(v) becomes
// Just(v) and Err becomes Nothing.
func (r Result[A, E]) ToMaybe() maybe.Maybe[A] {
	if !r.ok {
		return maybe.Nothing[A]()
	}
	return maybe.Just(r.val)
}
