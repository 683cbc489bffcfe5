// Package report renders ability score results for the terminal or for
// machine consumption.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/abilityroll/internal/game/abilities"
)

// Format selects how a result is rendered.
type Format string

const (
	// Text prints comma-joined values, one result per line.
	Text Format = "text"
	// JSON prints a single JSON document.
	JSON Format = "json"
	// YAML prints a single YAML document.
	YAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// document is the structured form of a result.
type document struct {
	Strategy string    `json:"strategy" yaml:"strategy"`
	Trials   int       `json:"trials" yaml:"trials"`
	Outcome  []int     `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	Means    []float64 `json:"means,omitempty" yaml:"means,omitempty"`
}

// WriteOutcome renders a single trial's outcome.
//
// Postcondition: in Text format w receives "a, b, c, d, e, f\n".
func WriteOutcome(w io.Writer, f Format, s abilities.Strategy, o abilities.Outcome) error {
	if f == Text {
		_, err := fmt.Fprintln(w, o.String())
		return err
	}
	return encode(w, f, document{
		Strategy: s.String(),
		Trials:   1,
		Outcome:  o[:],
	})
}

// WriteAverages renders the per-position means held by acc, to two decimal places.
//
// Precondition: acc.Count() > 0; otherwise an error wrapping
// abilities.ErrEmptyAverage is returned and nothing is written.
func WriteAverages(w io.Writer, f Format, s abilities.Strategy, acc *abilities.Accumulator) error {
	if f == Text {
		line, err := acc.Render()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, line)
		return err
	}

	means, err := acc.Means()
	if err != nil {
		return err
	}
	rounded := make([]float64, len(means))
	for i, m := range means {
		rounded[i] = math.Round(m*100) / 100
	}
	return encode(w, f, document{
		Strategy: s.String(),
		Trials:   acc.Count(),
		Means:    rounded,
	})
}

func encode(w io.Writer, f Format, doc document) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}
