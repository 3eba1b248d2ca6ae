package maker

import (
	"errors"

	"github.com/ostrev/tactus/duration"
	"github.com/ostrev/tactus/feather"
	"github.com/ostrev/tactus/score"
)

// ErrNoInterpolations indicates an accelerando run without a single
// interpolation to draw from.
var ErrNoInterpolations = errors.New("maker: no interpolations")

// MakeAccelerando fills each measure with one feathered figure,
// cycling the given interpolations across measures (rotated by the
// measures already consumed, so successive calls stay in phase). Each
// figure is wrapped in a structural 1:1 tuplet carrying a full-length
// bracket; the leaf count is derived from the figure's average
// duration. The talea cursor is untouched.
func MakeAccelerando(sigs []score.TimeSignature, interps []feather.Interpolation, opts Options, st State) ([]score.Measure, State, error) {
	if len(interps) == 0 {
		return nil, st, ErrNoInterpolations
	}
	if err := validateSignatures(sigs); err != nil {
		return nil, st, err
	}
	rotated := rotate(interps, st.DurationsConsumed)
	measures := make([]score.Measure, len(sigs))
	for i, sig := range sigs {
		interp := rotated[i%len(rotated)]
		slot := sig.Duration()
		count := feather.EstimateCount(slot, interp)
		leaves, err := feather.MakeLeaves(slot, interp, count, opts.Interpolation)
		if err != nil {
			return nil, st, err
		}
		children := make([]score.Element, len(leaves))
		for j, l := range leaves {
			children[j] = l
		}
		measures[i] = score.Measure{
			Signature: sig,
			Elements: []score.Element{&score.Tuplet{
				Ratio:             duration.Ratio{N: 1, M: 1},
				Children:          children,
				FullLengthBracket: true,
			}},
		}
	}
	if err := finish(measures, opts); err != nil {
		return nil, st, err
	}
	st.DurationsConsumed += len(sigs)
	st.LogicalTiesProduced += chainsProduced(measures)
	st.IncompleteLastNote = false
	return measures, st, nil
}
