package maker

import (
	"errors"
	"fmt"

	"github.com/ostrev/tactus/duration"
	"github.com/ostrev/tactus/score"
	"github.com/ostrev/tactus/tuplet"
)

// ErrBadIncise indicates an incision with a denominator that is not a
// positive power of two, a negative count, or a non-positive body
// proportion term.
var ErrBadIncise = errors.New("maker: bad incision")

// Incise describes notched measures: prefix and suffix taleas carve
// counts off the start and end, and what remains in the middle is the
// body.
//
// Fields:
//   - Denominator    — the unit of every talea count, a positive
//     power of two.
//   - PrefixTalea    — counts carved off the start of a measure;
//     negative counts are rests. Cycles across measures.
//   - PrefixCounts   — how many PrefixTalea entries each measure
//     takes; cycles. Empty means no prefix anywhere.
//   - SuffixTalea    — like PrefixTalea, carved off the end.
//   - SuffixCounts   — like PrefixCounts, for the suffix.
//   - BodyProportion — positive terms sharding the middle; empty
//     means one undivided note.
//   - FillWithRests  — make the middle a single rest instead.
//   - OuterOnly      — incise only the run's outer edges: the prefix
//     lands on the first measure, the suffix on the last, and
//     interior middles stay whole.
type Incise struct {
	Denominator    int
	PrefixTalea    []int
	PrefixCounts   []int
	SuffixTalea    []int
	SuffixCounts   []int
	BodyProportion []int
	FillWithRests  bool
	OuterOnly      bool
}

// MakeIncised fills each measure with its prefix counts, a middle
// shaped by the body proportion, and its suffix counts. A prefix too
// heavy for the measure is truncated to fit; the suffix then takes
// whatever room is left, if any. Extra counts prolate a measure the
// usual way, wrapping the result in the fill:nominal ratio. The talea
// cursor is untouched.
func MakeIncised(sigs []score.TimeSignature, inc Incise, opts Options, st State) ([]score.Measure, State, error) {
	if inc.Denominator <= 0 || !duration.IsPowerOfTwo(int64(inc.Denominator)) {
		return nil, st, fmt.Errorf("%w: denominator %d", ErrBadIncise, inc.Denominator)
	}
	for _, counts := range [][]int{inc.PrefixCounts, inc.SuffixCounts} {
		for _, c := range counts {
			if c < 0 {
				return nil, st, fmt.Errorf("%w: negative count %d", ErrBadIncise, c)
			}
		}
	}
	body := inc.BodyProportion
	if len(body) == 0 {
		body = []int{1}
	}
	bodyTotal := 0
	for _, term := range body {
		if term <= 0 {
			return nil, st, fmt.Errorf("%w: body term %d", ErrBadIncise, term)
		}
		bodyTotal += term
	}
	if err := validateSignatures(sigs); err != nil {
		return nil, st, err
	}

	lcd := int64(inc.Denominator)
	for _, sig := range sigs {
		lcd = duration.LCM(lcd, int64(sig.Denominator))
	}
	scale := int(lcd) / inc.Denominator
	unit := duration.Must(1, lcd)
	extras := opts.ExtraCounts

	var prefixIdx, suffixIdx int
	measures := make([]score.Measure, len(sigs))
	for i, sig := range sigs {
		nominal := sig.Numerator * int(lcd) / sig.Denominator
		e := 0
		if len(extras) > 0 {
			e = extras[i%len(extras)] * scale
		}
		numerator := nominal + posMod(e, nominal)

		var prefix, suffix []int
		if inc.OuterOnly {
			if i == 0 && len(inc.PrefixCounts) > 0 {
				prefix, prefixIdx = cyclicTake(inc.PrefixTalea, prefixIdx, inc.PrefixCounts[0])
			}
			if i == len(sigs)-1 && len(inc.SuffixCounts) > 0 {
				suffix, suffixIdx = cyclicTake(inc.SuffixTalea, suffixIdx, inc.SuffixCounts[0])
			}
		} else {
			if len(inc.PrefixCounts) > 0 {
				prefix, prefixIdx = cyclicTake(inc.PrefixTalea, prefixIdx, inc.PrefixCounts[i%len(inc.PrefixCounts)])
			}
			if len(inc.SuffixCounts) > 0 {
				suffix, suffixIdx = cyclicTake(inc.SuffixTalea, suffixIdx, inc.SuffixCounts[i%len(inc.SuffixCounts)])
			}
		}
		scaleCounts(prefix, scale)
		scaleCounts(suffix, scale)

		// Middle and suffix room are judged against the untruncated
		// prefix weight before any trimming happens.
		pw, sw := countsWeight(prefix), countsWeight(suffix)
		middle := numerator - pw - sw
		if numerator < pw {
			prefix = truncateCounts(prefix, numerator)
		}
		if room := numerator - pw; room <= 0 {
			suffix = nil
		} else if room < sw {
			suffix = truncateCounts(suffix, room)
		}

		var children []score.Element
		emit := func(value duration.Rational, rest bool) error {
			leaves, err := spellTied(value, opts.Spelling, rest)
			if err != nil {
				return err
			}
			for _, l := range leaves {
				children = append(children, l)
			}
			return nil
		}
		emitCounts := func(counts []int) error {
			for _, c := range counts {
				if c == 0 {
					continue
				}
				if err := emit(unit.Mul(duration.FromInt(int64(absInt(c)))), c < 0); err != nil {
					return err
				}
			}
			return nil
		}

		if err := emitCounts(prefix); err != nil {
			return nil, st, err
		}
		if middle > 0 {
			mid := unit.Mul(duration.FromInt(int64(middle)))
			switch {
			case inc.FillWithRests:
				if err := emit(mid, true); err != nil {
					return nil, st, err
				}
			case inc.OuterOnly:
				if err := emit(mid, false); err != nil {
					return nil, st, err
				}
			default:
				for _, term := range body {
					shard := mid.Mul(duration.Must(int64(term), int64(bodyTotal)))
					if err := emit(shard, false); err != nil {
						return nil, st, err
					}
				}
			}
		}
		if err := emitCounts(suffix); err != nil {
			return nil, st, err
		}

		ratio, err := tuplet.FromDurations(duration.Must(int64(numerator), lcd), sig.Duration())
		if err != nil {
			return nil, st, err
		}
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
	st.DurationsConsumed += len(sigs)
	st.LogicalTiesProduced += chainsProduced(measures)
	st.IncompleteLastNote = false
	return measures, st, nil
}

// cyclicTake reads n entries from s starting at the running index,
// wrapping around, and returns them with the advanced index.
func cyclicTake(s []int, start, n int) ([]int, int) {
	if len(s) == 0 || n <= 0 {
		return nil, start
	}
	out := make([]int, n)
	for k := range out {
		out[k] = s[(start+k)%len(s)]
	}
	return out, start + n
}

func scaleCounts(counts []int, scale int) {
	for i := range counts {
		counts[i] *= scale
	}
}

func countsWeight(counts []int) int {
	w := 0
	for _, c := range counts {
		w += absInt(c)
	}
	return w
}

// truncateCounts trims counts to the given total weight, keeping each
// count's sign; counts past the weight are dropped.
func truncateCounts(counts []int, weight int) []int {
	var out []int
	for _, c := range counts {
		if weight <= 0 {
			break
		}
		w := absInt(c)
		if w > weight {
			w = weight
		}
		if c < 0 {
			out = append(out, -w)
		} else {
			out = append(out, w)
		}
		weight -= w
	}
	return out
}

func posMod(e, n int) int {
	return (e%n + n) % n
}
