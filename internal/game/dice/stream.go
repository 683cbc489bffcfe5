package dice

import "fmt"

// D6Stream is an unbounded Stream of uniform d6 faces drawn from a Source.
type D6Stream struct {
	src Source
}

// NewD6Stream returns a Stream that draws every face independently from src.
//
// Precondition: src must be non-nil.
func NewD6Stream(src Source) *D6Stream {
	if src == nil {
		panic("dice: NewD6Stream precondition violated: src must be non-nil")
	}
	return &D6Stream{src: src}
}

// Next draws a fresh face. It never fails.
//
// Postcondition: 1 <= face <= Sides.
func (s *D6Stream) Next() (int, error) {
	return s.src.Intn(Sides) + 1, nil
}

// FixedStream replays a known, finite sequence of faces.
type FixedStream struct {
	faces []int
	pos   int
}

// NewFixedStream returns a Stream yielding faces in order, then ErrExhaustedSource.
func NewFixedStream(faces ...int) *FixedStream {
	cp := make([]int, len(faces))
	copy(cp, faces)
	return &FixedStream{faces: cp}
}

// Next returns the next recorded face.
//
// Postcondition: returns ErrExhaustedSource once every face has been consumed,
// or an error wrapping ErrInvalidFace if the recorded face is outside [1, Sides].
func (s *FixedStream) Next() (int, error) {
	if s.pos >= len(s.faces) {
		return 0, ErrExhaustedSource
	}
	face := s.faces[s.pos]
	if face < 1 || face > Sides {
		return 0, fmt.Errorf("%w: %d at position %d", ErrInvalidFace, face, s.pos)
	}
	s.pos++
	return face, nil
}

// Remaining reports how many faces have not yet been consumed.
func (s *FixedStream) Remaining() int {
	return len(s.faces) - s.pos
}
