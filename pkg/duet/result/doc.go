// Package result provides Result[A, E], an immutable success-or-failure
// container with exactly two variants: Ok holding a value of type A, and Err
// holding a failure of type E. The two type slots are independent and E
// carries no constraint, so failures need not be Go errors.
//
// Key operations:
// - Ok/Err/Of: construct a Result
// - Get/MustGet/GetOrElse/Unpack/UnpackErr: read either channel
// - Map/MapErr/FlatMap/FlatMapErr: transform one channel, leaving the other
//   untouched and short-circuiting past it
// - Apply: combine a Result holding a function with one holding a value
// - Swap: exchange the success and failure channels
// - Fold: collapse to a plain value via per-variant handlers
// - FromMaybe/ToMaybe: convert to and from the maybe package
//
// Failure is ordinary data on the Err channel, not a raised error; callers
// pick between Get (surface an error), GetOrElse (substitute a default), and
// the transform chain (carry the failure along). Instances are never
// mutated; every transform returns a new Result.
package result
