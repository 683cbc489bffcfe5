package abilities

import (
	"errors"
	"strconv"
	"strings"
)

// ErrEmptyAverage is returned when means are requested before any trial.
var ErrEmptyAverage = errors.New("no trials to average")

// Accumulator keeps per-position running sums over a sequence of Outcomes.
//
// Invariant: after k calls to Incorporate, Count() == k and Sums()[i] is the
// sum of position i over exactly those k Outcomes.
type Accumulator struct {
	count int
	sums  [OutcomeSize]int
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Incorporate adds o to the running sums.
func (a *Accumulator) Incorporate(o Outcome) {
	for i, v := range o {
		a.sums[i] += v
	}
	a.count++
}

// Count returns the number of Outcomes incorporated.
func (a *Accumulator) Count() int {
	return a.count
}

// Sums returns a copy of the per-position running sums.
func (a *Accumulator) Sums() [OutcomeSize]int {
	return a.sums
}

// Means returns the per-position mean.
//
// Postcondition: returns ErrEmptyAverage if Count() == 0.
func (a *Accumulator) Means() ([OutcomeSize]float64, error) {
	var means [OutcomeSize]float64
	if a.count == 0 {
		return means, ErrEmptyAverage
	}
	for i, sum := range a.sums {
		means[i] = float64(sum) / float64(a.count)
	}
	return means, nil
}

// Render formats the means to two decimal places, e.g. "2.00, 3.00, ...".
//
// Postcondition: returns ErrEmptyAverage if Count() == 0.
func (a *Accumulator) Render() (string, error) {
	means, err := a.Means()
	if err != nil {
		return "", err
	}
	parts := make([]string, len(means))
	for i, m := range means {
		parts[i] = strconv.FormatFloat(m, 'f', 2, 64)
	}
	return strings.Join(parts, ", "), nil
}

// String is Render without the error.
//
// Precondition: Count() > 0.
func (a *Accumulator) String() string {
	s, err := a.Render()
	if err != nil {
		panic("abilities: Accumulator.String() precondition violated: " + err.Error())
	}
	return s
}
