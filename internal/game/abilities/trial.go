package abilities

import (
	"fmt"

	"github.com/cory-johannsen/abilityroll/internal/game/dice"
)

// Trial is the full audit trail of one strategy execution.
type Trial struct {
	Strategy Strategy
	Windows  []Window // windows in draw order
	Scores   []int    // Scores[i] == Windows[i].Score()
	Outcome  Outcome
}

// RunTrial produces one Outcome for strategy, drawing from stream.
//
// Precondition: stream must be non-nil.
// Postcondition: returns a complete Outcome or a non-nil error, never both.
func RunTrial(strategy Strategy, stream dice.Stream) (Outcome, error) {
	t, err := strategy.Roll(NewChunker(stream))
	if err != nil {
		return Outcome{}, err
	}
	return t.Outcome, nil
}

// RunTrials runs n trials of strategy back to back on one continuous stream
// and returns an Accumulator holding all n Outcomes.
//
// Precondition: stream must be non-nil.
// Postcondition: on success acc.Count() == n. Returns an error wrapping
// ErrEmptyAverage if n <= 0.
func RunTrials(strategy Strategy, stream dice.Stream, n int) (*Accumulator, error) {
	if n <= 0 {
		return nil, errNoTrials(n)
	}
	chunker := NewChunker(stream)
	acc := NewAccumulator()
	for i := 0; i < n; i++ {
		t, err := strategy.Roll(chunker)
		if err != nil {
			return nil, fmt.Errorf("trial %d of %d: %w", i+1, n, err)
		}
		acc.Incorporate(t.Outcome)
	}
	return acc, nil
}

func errNoTrials(n int) error {
	return fmt.Errorf("%w: trials must be >= 1, got %d", ErrEmptyAverage, n)
}
