// Package duet holds the pieces shared by the maybe and result containers:
// the single error kind raised on empty-value access and the capability
// interfaces both containers satisfy.
//
// Key types:
// - EmptyValueError: reported by Get and MustGet on a variant holding no value
// - Getter/Value: read-side contracts common to Maybe and Result
//
// All failure inside the containers themselves is ordinary data (an Err
// payload or a Nothing); EmptyValueError exists only for callers that reach
// for a value that is not there.
package duet
