package maker

import (
	"errors"
	"fmt"

	"github.com/ostrev/tactus/duration"
	"github.com/ostrev/tactus/score"
	"github.com/ostrev/tactus/tuplet"
)

// ErrBadProportion indicates an empty proportion list or a proportion
// with a zero term.
var ErrBadProportion = errors.New("maker: bad proportion")

// MakeTuplets fills each measure with a single tuplet shaped by the
// matching proportion, cycled across measures. Proportion terms are
// relative note weights; a negative term is a rest of the same weight.
// [1 2] in 4/8 yields a 3:2 tuplet of a quarter and a half.
//
// The written unit behind the terms is the power of two that lands the
// notated fill within one power of the slot, so brackets never nest.
// The talea cursor is untouched.
func MakeTuplets(sigs []score.TimeSignature, proportions [][]int, opts Options, st State) ([]score.Measure, State, error) {
	if len(proportions) == 0 {
		return nil, st, fmt.Errorf("%w: none given", ErrBadProportion)
	}
	for _, p := range proportions {
		if len(p) == 0 {
			return nil, st, fmt.Errorf("%w: empty", ErrBadProportion)
		}
		for _, term := range p {
			if term == 0 {
				return nil, st, fmt.Errorf("%w: zero term", ErrBadProportion)
			}
		}
	}
	if err := validateSignatures(sigs); err != nil {
		return nil, st, err
	}

	measures := make([]score.Measure, len(sigs))
	for i, sig := range sigs {
		p := proportions[i%len(proportions)]
		slot := sig.Duration()
		total := 0
		for _, term := range p {
			total += absInt(term)
		}
		unit := proportionUnit(total, slot)

		var children []score.Element
		for _, term := range p {
			value := unit.Mul(duration.FromInt(int64(absInt(term))))
			leaves, err := spellTied(value, opts.Spelling, term < 0)
			if err != nil {
				return nil, st, err
			}
			for _, l := range leaves {
				children = append(children, l)
			}
		}
		fill := unit.Mul(duration.FromInt(int64(total)))
		ratio, err := tuplet.FromDurations(fill, slot)
		if err != nil {
			return nil, st, err
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

// proportionUnit returns the power-of-two duration u with
// slot <= total×u < 2×slot.
func proportionUnit(total int, slot duration.Rational) duration.Rational {
	two := duration.FromInt(2)
	fill := duration.FromInt(int64(total))
	unit := duration.One
	for !fill.Mul(unit).Less(slot.Mul(two)) {
		unit = unit.Div(two)
	}
	for fill.Mul(unit).Less(slot) {
		unit = unit.Mul(two)
	}
	return unit
}
