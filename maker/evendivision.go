package maker

import (
	"errors"
	"fmt"

	"github.com/ostrev/tactus/duration"
	"github.com/ostrev/tactus/score"
	"github.com/ostrev/tactus/tuplet"
)

// ErrBadDivision indicates a division denominator that is not a
// positive power of two, or an empty denominator list.
var ErrBadDivision = errors.New("maker: bad division denominator")

// MakeEvenDivision fills each measure with notes of one written
// duration: the measure's nominal duration divided into 1/d notes,
// with d drawn cyclically from denominators (rotated by the measures
// already consumed, like extra counts). Extra counts adjust the note
// count per measure: positive counts add notes modulo the unprolated
// count, negative counts remove up to half of it. A measure shorter
// than two division notes is spelled as a single note instead.
//
// The resulting tuplet ratio compares the notated fill against the
// nominal duration, in lowest terms. The talea cursor is untouched.
func MakeEvenDivision(sigs []score.TimeSignature, denominators []int, opts Options, st State) ([]score.Measure, State, error) {
	if len(denominators) == 0 {
		return nil, st, fmt.Errorf("%w: none given", ErrBadDivision)
	}
	for _, d := range denominators {
		if d <= 0 || !duration.IsPowerOfTwo(int64(d)) {
			return nil, st, fmt.Errorf("%w: %d", ErrBadDivision, d)
		}
	}
	if err := validateSignatures(sigs); err != nil {
		return nil, st, err
	}

	dens := rotate(denominators, st.DurationsConsumed)
	extras := rotate(opts.ExtraCounts, st.DurationsConsumed)
	measures := make([]score.Measure, len(sigs))
	for i, sig := range sigs {
		slot := sig.Duration()
		noteDur := duration.Must(1, int64(dens[i%len(dens)]))
		e := 0
		if len(extras) > 0 {
			e = extras[i%len(extras)]
		}

		var children []score.Element
		ratio := duration.Ratio{N: 1, M: 1}
		if slot.Less(noteDur.Mul(duration.FromInt(2))) {
			// Too short to divide; one spelled note fills the slot.
			leaves, err := spellTied(slot, opts.Spelling, false)
			if err != nil {
				return nil, st, err
			}
			for _, l := range leaves {
				children = append(children, l)
			}
		} else {
			q := slot.Div(noteDur)
			unprolated := int(q.Num() / q.Den())
			count := unprolated + evenDivisionExtra(e, unprolated)
			for j := 0; j < count; j++ {
				children = append(children, score.NewLeaf(noteDur, false))
			}
			fill := noteDur.Mul(duration.FromInt(int64(count)))
			var err error
			ratio, err = tuplet.FromDurations(fill, slot)
			if err != nil {
				return nil, st, err
			}
		}
		measures[i] = score.Measure{
			Signature: sig,
			Elements: []score.Element{&score.Tuplet{
				Ratio:    ratio,
				Children: children,
				Label:    tuplet.Label(ratio, slot, opts.TupletLabels, opts.RhythmLabel),
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

// evenDivisionExtra bounds an extra count against the unprolated note
// count: additions wrap modulo the count, removals never take more
// than half of it.
func evenDivisionExtra(e, unprolated int) int {
	switch {
	case e > 0:
		return e % unprolated
	case e < 0:
		half := (unprolated + 1) / 2
		return -(-e % half)
	}
	return 0
}
