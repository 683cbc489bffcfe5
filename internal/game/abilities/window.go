// Package abilities turns a stream of d6 faces into sets of six ability
// scores and averages those sets across many trials.
package abilities

import (
	"fmt"

	"github.com/cory-johannsen/abilityroll/internal/game/dice"
)

// WindowSize is the number of dice rolled for a single ability score.
const WindowSize = 4

// Window is one group of WindowSize faces, in draw order.
type Window [WindowSize]int

// Score sums the window and drops its lowest face ("4d6 drop lowest").
// When the minimum appears more than once only one occurrence is dropped.
//
// Postcondition: return value == sum(w) - min(w).
func (w Window) Score() int {
	sum, low := 0, w[0]
	for _, face := range w {
		sum += face
		if face < low {
			low = face
		}
	}
	return sum - low
}

// String renders the window as "[3 1 4 1]".
func (w Window) String() string {
	return fmt.Sprint([WindowSize]int(w))
}

// Chunker cuts a Stream into consecutive, non-overlapping Windows.
//
// A Chunker holds no buffered faces; every face it pulls lands in exactly one
// Window. It is not safe for concurrent use.
type Chunker struct {
	src dice.Stream
}

// NewChunker returns a Chunker reading from src.
//
// Precondition: src must be non-nil.
func NewChunker(src dice.Stream) *Chunker {
	if src == nil {
		panic("abilities: NewChunker precondition violated: src must be non-nil")
	}
	return &Chunker{src: src}
}

// Next pulls the next WindowSize faces from the stream.
//
// Postcondition: on success every element of the Window came from the stream
// in draw order. If the stream fails part way the faces already drawn are
// discarded and the error is returned; a short or zero-filled Window is never
// produced.
func (c *Chunker) Next() (Window, error) {
	var w Window
	for i := range w {
		face, err := c.src.Next()
		if err != nil {
			return Window{}, fmt.Errorf("filling window after %d of %d faces: %w", i, WindowSize, err)
		}
		w[i] = face
	}
	return w, nil
}
