package partition

import (
	"errors"
	"fmt"

	"github.com/ostrev/tactus/duration"
	"github.com/ostrev/tactus/score"
)

var (
	// ErrOverspecifiedInput indicates that the flat duration sequence is
	// too short to fill every requested slot.
	ErrOverspecifiedInput = errors.New("partition: durations insufficient to fill slots")

	// ErrZeroDuration indicates a zero entry in the flat sequence.
	ErrZeroDuration = errors.New("partition: zero duration")

	// ErrBadSlot indicates a slot of zero or negative duration.
	ErrBadSlot = errors.New("partition: slot duration must be positive")
)

// Fragment is one piece of a partitioned duration: a positive value,
// a voicing flag, and split links recording that the fragment was cut
// from a neighbor at a slot boundary. Split links exist only on notes.
type Fragment struct {
	Value duration.Rational
	Rest  bool

	SplitPrev bool
	SplitNext bool
}

// Slots partitions flat across the given slot durations, one group per
// slot. Negative flat entries are rests. A duration straddling one or
// more boundaries is split; note fragments are split-linked.
//
// Flat entries left over after the final slot are ignored: the
// interpreter trims its output to the exact requested total, so
// leftovers only occur when Slots is driven by hand.
func Slots(flat []duration.Rational, slots []duration.Rational) ([][]Fragment, error) {
	groups := make([][]Fragment, 0, len(slots))
	idx := 0
	var pending *Fragment // carried remainder of a split duration
	for _, slot := range slots {
		if slot.Sign() <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrBadSlot, slot)
		}
		var group []Fragment
		remain := slot
		for remain.Sign() > 0 {
			frag, err := take(flat, &idx, &pending)
			if err != nil {
				return nil, err
			}
			if frag.Value.Cmp(remain) <= 0 {
				group = append(group, frag)
				remain = remain.Sub(frag.Value)
				continue
			}
			// Straddles the boundary: keep what fills this slot, carry
			// the rest. Rests split without recording a link.
			head := frag
			head.Value = remain
			tail := frag
			tail.Value = frag.Value.Sub(remain)
			tail.SplitPrev = false
			if !frag.Rest {
				head.SplitNext = true
				tail.SplitPrev = true
			}
			group = append(group, head)
			pending = &tail
			remain = duration.Zero
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// take yields the next fragment: a carried split remainder if one is
// pending, otherwise the next flat entry.
func take(flat []duration.Rational, idx *int, pending **Fragment) (Fragment, error) {
	if *pending != nil {
		f := **pending
		*pending = nil
		return f, nil
	}
	if *idx >= len(flat) {
		return Fragment{}, ErrOverspecifiedInput
	}
	v := flat[*idx]
	*idx++
	if v.IsZero() {
		return Fragment{}, ErrZeroDuration
	}
	return Fragment{Value: v.Abs(), Rest: v.Sign() < 0}, nil
}

// BySignatures partitions flat against the nominal durations of the
// given time signatures.
func BySignatures(flat []duration.Rational, sigs []score.TimeSignature) ([][]Fragment, error) {
	slots := make([]duration.Rational, len(sigs))
	for i, sig := range sigs {
		slots[i] = sig.Duration()
	}
	return Slots(flat, slots)
}
