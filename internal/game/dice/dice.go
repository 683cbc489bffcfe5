// Package dice provides the randomness abstraction and the d6 die stream
// that feeds ability score generation.
package dice

import "errors"

// Sides is the number of faces on every die rolled by this package.
const Sides = 6

// ErrExhaustedSource is returned when a finite stream cannot supply a face
// that was required.
var ErrExhaustedSource = errors.New("dice: source exhausted")

// ErrInvalidFace is returned when a finite stream holds a value outside [1, Sides].
var ErrInvalidFace = errors.New("dice: face out of range")

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Stream yields die faces one at a time in draw order.
//
// A Stream is a cursor: each face is returned exactly once and never reused.
type Stream interface {
	// Next returns the next face in [1, Sides].
	//
	// Postcondition: err != nil only if the stream cannot produce a face;
	// the returned face is then 0.
	Next() (int, error)
}
