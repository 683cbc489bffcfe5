package abilities

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/abilityroll/internal/game/dice"
)

// Generator runs strategies against one continuous stream and logs every trial.
// Trials at debug level carry the windows, raw scores and outcome.
//
// A Generator is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	chunker *Chunker
	logger  *zap.Logger
}

// NewGenerator creates a Generator drawing from stream and logging to logger.
//
// Precondition: stream and logger must be non-nil.
func NewGenerator(stream dice.Stream, logger *zap.Logger) *Generator {
	return &Generator{chunker: NewChunker(stream), logger: logger}
}

// Trial runs one trial of s.
//
// Postcondition: returns a complete Outcome or a non-nil error.
func (g *Generator) Trial(s Strategy) (Outcome, error) {
	t, err := g.roll(s)
	if err != nil {
		return Outcome{}, err
	}
	return t.Outcome, nil
}

// Average runs n trials of s and returns their Accumulator.
//
// Postcondition: on success acc.Count() == n. Returns an error wrapping
// ErrEmptyAverage if n <= 0.
func (g *Generator) Average(s Strategy, n int) (*Accumulator, error) {
	if n <= 0 {
		return nil, errNoTrials(n)
	}
	acc := NewAccumulator()
	for i := 0; i < n; i++ {
		t, err := g.roll(s)
		if err != nil {
			g.logger.Error("trial failed",
				zap.Stringer("strategy", s),
				zap.Int("trial", i+1),
				zap.Int("trials", n),
				zap.Error(err),
			)
			return nil, fmt.Errorf("trial %d of %d: %w", i+1, n, err)
		}
		acc.Incorporate(t.Outcome)
	}
	g.logger.Info("averaged trials",
		zap.Stringer("strategy", s),
		zap.Int("trials", acc.Count()),
	)
	return acc, nil
}

func (g *Generator) roll(s Strategy) (Trial, error) {
	t, err := s.Roll(g.chunker)
	if err != nil {
		return Trial{}, err
	}
	windows := make([]string, len(t.Windows))
	for i, w := range t.Windows {
		windows[i] = w.String()
	}
	g.logger.Debug("ability trial",
		zap.Stringer("strategy", s),
		zap.Strings("windows", windows),
		zap.Ints("scores", t.Scores),
		zap.Ints("outcome", t.Outcome[:]),
	)
	return t, nil
}
