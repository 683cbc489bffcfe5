package abilities

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownStrategy is returned for a strategy name or value that is not defined.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy names a rule for turning scored windows into an Outcome.
type Strategy int

const (
	// Traditional rolls six windows and sorts the scores ascending.
	Traditional Strategy = iota
	// DropTwice rolls seven windows and discards the lowest score.
	DropTwice
)

type strategyDef struct {
	name        string
	description string
	windows     int
	reduce      func(scores []int) Outcome
}

var strategyDefs = map[Strategy]strategyDef{
	Traditional: {
		name:        "traditional",
		description: "4d6 drop lowest",
		windows:     OutcomeSize,
		reduce:      sortScores,
	},
	DropTwice: {
		name:        "drop-twice",
		description: "4d6 drop lowest, then drop the lowest stat",
		windows:     OutcomeSize + 1,
		reduce:      dropLowestScore,
	},
}

// Strategies returns every defined strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Traditional, DropTwice}
}

// ParseStrategy resolves a command-line strategy name. Matching ignores case
// and accepts "_" or no separator in place of "-".
func ParseStrategy(name string) (Strategy, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		canonical := strategyDefs[s].name
		if norm == canonical ||
			norm == strings.ReplaceAll(canonical, "-", "_") ||
			norm == strings.ReplaceAll(canonical, "-", "") {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownStrategy, name)
}

// String returns the strategy's command-line name.
func (s Strategy) String() string {
	if def, ok := strategyDefs[s]; ok {
		return def.name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Description returns a one-line summary suitable for help text.
func (s Strategy) Description() string {
	return strategyDefs[s].description
}

// Windows returns how many windows one trial of s consumes, or 0 for an
// undefined strategy.
func (s Strategy) Windows() int {
	return strategyDefs[s].windows
}

// Roll runs one trial of s, pulling exactly s.Windows() windows from c.
//
// Postcondition: on success len(t.Scores) == s.Windows() and t.Outcome is
// sorted ascending. On error no Outcome is returned.
func (s Strategy) Roll(c *Chunker) (Trial, error) {
	def, ok := strategyDefs[s]
	if !ok {
		return Trial{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	t := Trial{
		Strategy: s,
		Windows:  make([]Window, 0, def.windows),
		Scores:   make([]int, 0, def.windows),
	}
	for i := 0; i < def.windows; i++ {
		w, err := c.Next()
		if err != nil {
			return Trial{}, fmt.Errorf("rolling %s window %d: %w", s, i+1, err)
		}
		t.Windows = append(t.Windows, w)
		t.Scores = append(t.Scores, w.Score())
	}
	t.Outcome = def.reduce(t.Scores)
	return t, nil
}

// sortScores keeps all six scores, ordered ascending.
//
// Precondition: len(scores) == OutcomeSize.
func sortScores(scores []int) Outcome {
	var o Outcome
	copy(o[:], scores)
	slices.Sort(o[:])
	return o
}

// dropLowestScore sorts the scores and discards exactly one minimal value.
//
// Precondition: len(scores) == OutcomeSize+1.
func dropLowestScore(scores []int) Outcome {
	sorted := slices.Clone(scores)
	slices.Sort(sorted)
	var o Outcome
	copy(o[:], sorted[1:])
	return o
}
