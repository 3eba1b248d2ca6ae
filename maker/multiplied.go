package maker

import (
	"errors"
	"fmt"

	"github.com/ostrev/tactus/duration"
	"github.com/ostrev/tactus/score"
)

// ErrBadWrittenDuration indicates a written duration that is not a
// positive assignable value.
var ErrBadWrittenDuration = errors.New("maker: bad written duration")

// MakeMultipliedDuration fills each measure with a single leaf of the
// given written duration, stretched to the measure by its multiplier.
// A 4/8 measure under a written whole note yields one whole note with
// multiplier 1/2. Signatures only need positive terms here — a
// multiplier absorbs any denominator, so 1/3 is as good as 3/8.
func MakeMultipliedDuration(sigs []score.TimeSignature, written duration.Rational, rest bool, opts Options, st State) ([]score.Measure, State, error) {
	if !duration.Zero.Less(written) || !duration.IsAssignable(written) {
		return nil, st, fmt.Errorf("%w: %s", ErrBadWrittenDuration, written)
	}
	for _, sig := range sigs {
		if sig.Numerator <= 0 || sig.Denominator <= 0 {
			return nil, st, fmt.Errorf("%w: %s", ErrBadTimeSignature, sig)
		}
	}

	measures := make([]score.Measure, len(sigs))
	for i, sig := range sigs {
		leaf := score.NewLeaf(written, rest)
		leaf.Multiplier = sig.Duration().Div(written)
		measures[i] = score.Measure{Signature: sig, Elements: []score.Element{leaf}}
	}

	if err := finish(measures, opts); err != nil {
		return nil, st, err
	}
	st.DurationsConsumed += len(sigs)
	st.LogicalTiesProduced += len(sigs)
	st.IncompleteLastNote = false
	return measures, st, nil
}
