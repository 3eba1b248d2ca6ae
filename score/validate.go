package score

import (
	"errors"
	"fmt"
)

var (
	// ErrMeasureSum indicates a measure whose notated duration does not
	// equal its time signature's nominal duration.
	ErrMeasureSum = errors.New("score: measure duration does not fill time signature")

	// ErrRestTie indicates a rest carrying a tie flag.
	ErrRestTie = errors.New("score: rest carries tie flag")

	// ErrUnreducedRatio indicates a tuplet ratio not in lowest terms.
	ErrUnreducedRatio = errors.New("score: tuplet ratio not reduced")
)

// Validate checks the invariants of a finished measure: exact duration
// sum, no tied rests, reduced tuplet ratios. Generation discards all
// measures when any one of them fails, so a tree handed onward is
// always fully valid.
func Validate(m Measure) error {
	if got, want := m.Duration(), m.Signature.Duration(); got.Cmp(want) != 0 {
		return fmt.Errorf("%w: have %s, want %s (%s)", ErrMeasureSum, got, want, m.Signature)
	}
	if err := validateElements(m.Elements); err != nil {
		return err
	}
	return nil
}

func validateElements(elements []Element) error {
	for _, e := range elements {
		switch n := e.(type) {
		case *Leaf:
			if n.Rest && (n.TiePrev || n.TieNext) {
				return fmt.Errorf("%w: rest of %s", ErrRestTie, n.Written)
			}
		case *Tuplet:
			if r := n.Ratio; r.Reduce() != r {
				return fmt.Errorf("%w: %s", ErrUnreducedRatio, r)
			}
			if err := validateElements(n.Children); err != nil {
				return err
			}
		}
	}
	return nil
}
