package maker

import (
	"errors"
	"fmt"

	"github.com/ostrev/tactus/beam"
	"github.com/ostrev/tactus/duration"
	"github.com/ostrev/tactus/partition"
	"github.com/ostrev/tactus/score"
	"github.com/ostrev/tactus/talea"
	"github.com/ostrev/tactus/tie"
	"github.com/ostrev/tactus/tuplet"
)

// ErrBadTimeSignature indicates a time signature with a non-positive
// numerator or a denominator that is not a power of two.
var ErrBadTimeSignature = errors.New("maker: bad time signature")

// Make generates one measure per time signature from the talea.
//
// Each measure's nominal numerator is scaled to the least common
// denominator of the run, prolated by the matching extra count, filled
// from the talea, and wrapped in a tuplet of ratio prolated:nominal —
// trivial (1:1, unbracketed) when no extra count applies. Boundary
// splits tie per opts.TieAcrossBarlines, spelling splits always tie,
// and beam counts are computed per measure.
//
// Returns the measures, the advanced state, and the first error
// encountered; on error the measure slice is nil.
func Make(sigs []score.TimeSignature, t talea.Talea, opts Options, st State) ([]score.Measure, State, error) {
	if len(sigs) == 0 {
		return nil, st, nil
	}
	if err := validateSignatures(sigs); err != nil {
		return nil, st, err
	}

	lcd := int64(t.Denominator)
	for _, sig := range sigs {
		lcd = duration.LCM(lcd, int64(sig.Denominator))
	}
	mult := int(lcd) / t.Denominator
	scaled := t.Scale(mult)

	// Nominal and prolated numerators per measure, in 1/lcd units.
	extras := rotate(opts.ExtraCounts, st.DurationsConsumed)
	nominal := make([]int, len(sigs))
	prolated := make([]int, len(sigs))
	slots := make([]duration.Rational, len(sigs))
	target := duration.Zero
	for i, sig := range sigs {
		nominal[i] = sig.Numerator * int(lcd) / sig.Denominator
		e := 0
		if len(extras) > 0 {
			e = extras[i%len(extras)] * mult
		}
		if e != 0 {
			e %= nominal[i]
		}
		prolated[i] = nominal[i] + e
		slots[i] = duration.Must(int64(prolated[i]), lcd)
		target = target.Add(slots[i])
	}

	flat, cursor, err := talea.Interpret(scaled, st.Cursor, target)
	if err != nil {
		return nil, st, err
	}
	groups, err := partition.Slots(flat, slots)
	if err != nil {
		return nil, st, err
	}

	measures := make([]score.Measure, len(sigs))
	var last *score.Leaf
	for i, sig := range sigs {
		ratio, err := tuplet.Resolve(prolated[i], nominal[i])
		if err != nil {
			return nil, st, err
		}
		children, lastInMeasure, err := spellFragments(groups[i], opts, last)
		if err != nil {
			return nil, st, err
		}
		last = lastInMeasure
		measures[i] = score.Measure{
			Signature: sig,
			Elements: []score.Element{&score.Tuplet{
				Ratio:    ratio,
				Children: children,
				Label:    tuplet.Label(ratio, sig.Duration(), opts.TupletLabels, opts.RhythmLabel),
			}},
		}
	}

	if err := finish(measures, opts); err != nil {
		return nil, st, err
	}
	return measures, advance(st, t, cursor, measures, last), nil
}

// spellFragments turns one measure's fragments into leaves: each
// fragment spelled into assignable written durations, spelling splits
// tied, and the fragment's barline split tied back to the previous
// measure's final leaf when configured.
func spellFragments(frags []partition.Fragment, opts Options, last *score.Leaf) ([]score.Element, *score.Leaf, error) {
	var children []score.Element
	for _, frag := range frags {
		parts, err := duration.Spell(frag.Value, opts.Spelling, frag.Rest)
		if err != nil {
			return nil, nil, fmt.Errorf("spelling %s: %w", frag.Value, err)
		}
		for j, part := range parts {
			leaf := score.NewLeaf(part, frag.Rest)
			if j > 0 {
				tie.Tie(last, leaf)
			} else if frag.SplitPrev && opts.TieAcrossBarlines {
				tie.Tie(last, leaf)
			}
			children = append(children, leaf)
			last = leaf
		}
	}
	return children, last, nil
}

// spellTied spells value into leaves of assignable written durations,
// tying interior spelling splits. Rests never tie.
func spellTied(value duration.Rational, sp duration.Spelling, rest bool) ([]*score.Leaf, error) {
	parts, err := duration.Spell(value, sp, rest)
	if err != nil {
		return nil, fmt.Errorf("spelling %s: %w", value, err)
	}
	leaves := make([]*score.Leaf, len(parts))
	var prev *score.Leaf
	for j, part := range parts {
		leaf := score.NewLeaf(part, rest)
		tie.Tie(prev, leaf)
		leaves[j] = leaf
		prev = leaf
	}
	return leaves, nil
}

// chainsProduced counts the tie chains across a run of measures.
func chainsProduced(measures []score.Measure) int {
	var leaves []*score.Leaf
	for i := range measures {
		leaves = append(leaves, score.Leaves(measures[i].Elements)...)
	}
	return len(tie.Chains(leaves))
}

// finish beams and validates every measure.
func finish(measures []score.Measure, opts Options) error {
	for i := range measures {
		beam.Apply(score.Leaves(measures[i].Elements), opts.Beam)
		if err := score.Validate(measures[i]); err != nil {
			return err
		}
	}
	return nil
}

// advance rolls the run state past the generated measures.
func advance(st State, t talea.Talea, cursor talea.Cursor, measures []score.Measure, last *score.Leaf) State {
	produced := chainsProduced(measures)
	if st.IncompleteLastNote {
		// The first chain continues the previous call's final note.
		produced--
	}
	return State{
		Cursor:              cursor,
		DurationsConsumed:   st.DurationsConsumed + len(measures),
		LogicalTiesProduced: st.LogicalTiesProduced + produced,
		IncompleteLastNote:  last != nil && !last.Rest && !talea.Aligned(t, cursor),
	}
}

func validateSignatures(sigs []score.TimeSignature) error {
	for _, sig := range sigs {
		if sig.Numerator <= 0 || !duration.IsPowerOfTwo(int64(sig.Denominator)) {
			return fmt.Errorf("%w: %s", ErrBadTimeSignature, sig)
		}
	}
	return nil
}
