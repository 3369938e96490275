// Package chain provides fluent wrappers around the maybe and result
// containers for building synchronous pipelines without branching on the
// variant at each step.
//
// Key operations:
// - FromMaybe/FromJust: begin a MaybeChain
// - FromResult/FromOk: begin a ResultChain
// - Map/MapErr/FlatMap/FlatMapErr: transform a channel in place
// - Tee/TeeErr: run side effects without changing the result
// - Maybe/Result/GetOrElse/Finally: leave the chain
//
// A chain holds a single value type end to end; pipelines that change the
// value type compose the free functions of the maybe and result packages
// directly. Short-circuiting comes from the underlying containers, so a
// chain that goes empty or fails stays that way through the remaining steps.
package chain
