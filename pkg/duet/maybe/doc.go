// Package maybe provides Maybe[A], an immutable optional-value container
// with exactly two variants: Just holding one value, and Nothing holding
// none.
//
// Key operations:
// - Just/Nothing/Of/FromPtr: construct a Maybe
// - Get/MustGet/GetOrElse/Unpack: read the contained value
// - Map/FlatMap/Apply: transform without unwrapping, short-circuiting on Nothing
// - Fold: collapse to a plain value via per-variant handlers
//
// The zero value of Maybe[A] is Nothing, so every empty Maybe of a given
// instantiation is the same canonical value. Instances are never mutated;
// every transform returns a new Maybe. Two Maybes compare equal with ==
// exactly when they are the same variant holding equal values (A must be
// comparable for == to apply; any A still flows through the transforms).
package maybe
