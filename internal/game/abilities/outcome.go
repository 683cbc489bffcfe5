package abilities

import (
	"strconv"
	"strings"
)

// OutcomeSize is the number of ability scores in one Outcome.
const OutcomeSize = 6

// Outcome is one complete set of ability scores produced by a single trial.
type Outcome [OutcomeSize]int

// String renders the outcome as "3, 8, 9, 10, 12, 14".
func (o Outcome) String() string {
	parts := make([]string, len(o))
	for i, v := range o {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
