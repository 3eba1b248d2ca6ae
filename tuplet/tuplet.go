package tuplet

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/ostrev/tactus/duration"
)

// ErrDegenerateRatio indicates a tuplet ratio with a non-positive
// numerator or denominator.
var ErrDegenerateRatio = errors.New("tuplet: degenerate ratio")

// LabelPolicy selects the display text of a non-trivial tuplet.
type LabelPolicy int

const (
	// Suppressed hides all tuplet labels.
	Suppressed LabelPolicy = iota

	// Fraction always shows the reduced "n:m".
	Fraction

	// Rhythm shows a rhythm-duration label when the slot duration maps
	// onto a single notatable value, and the fraction otherwise.
	Rhythm
)

// RhythmLabelFunc decides whether a slot duration qualifies for a
// rhythm-duration label and, if so, what the label is. Returning false
// falls back to the fraction form.
type RhythmLabelFunc func(slot duration.Rational) (string, bool)

// Resolve reduces the prescribed subdivision count n against the
// power-of-two fill count m and returns the ratio in lowest terms.
// Returns ErrDegenerateRatio when either side is not positive.
func Resolve(n, m int) (duration.Ratio, error) {
	if n <= 0 || m <= 0 {
		return duration.Ratio{}, fmt.Errorf("%w: %d:%d", ErrDegenerateRatio, n, m)
	}
	return duration.Ratio{N: n, M: m}.Reduce(), nil
}

// FromDurations derives the reduced ratio that scales children to fill
// slot: children × N/M == slot. Returns ErrDegenerateRatio when either
// duration is not positive.
func FromDurations(children, slot duration.Rational) (duration.Ratio, error) {
	if !duration.Zero.Less(children) || !duration.Zero.Less(slot) {
		return duration.Ratio{}, fmt.Errorf("%w: %s in %s", ErrDegenerateRatio, children, slot)
	}
	q := children.Div(slot)
	return duration.Ratio{N: int(q.Num()), M: int(q.Den())}, nil
}

// Label resolves the display text for a tuplet of the given reduced
// ratio filling slot. Trivial ratios never show a label regardless of
// policy. A nil fn uses DefaultRhythmLabel.
func Label(r duration.Ratio, slot duration.Rational, policy LabelPolicy, fn RhythmLabelFunc) string {
	if r.Trivial() {
		return ""
	}
	switch policy {
	case Fraction:
		return r.String()
	case Rhythm:
		if fn == nil {
			fn = DefaultRhythmLabel
		}
		if label, ok := fn(slot); ok {
			return label
		}
		return r.String()
	default:
		return ""
	}
}

// DefaultRhythmLabel maps a slot onto a rhythm-duration label when it
// is a single assignable duration no longer than a whole note:
// 1/4 → "4", 3/8 → "4.", 7/16 → "4..", 1/1 → "1".
func DefaultRhythmLabel(slot duration.Rational) (string, bool) {
	if !duration.IsAssignable(slot) {
		return "", false
	}
	base := duration.Base(slot)
	if duration.One.Less(base) {
		return "", false
	}
	// Base is 2^j/den with a power-of-two denominator; the written
	// figure is den/2^j.
	figure := base.Den() >> (bits.Len64(uint64(base.Num())) - 1)
	var b strings.Builder
	b.WriteString(strconv.FormatInt(figure, 10))
	for i := 0; i < duration.Dots(slot); i++ {
		b.WriteByte('.')
	}
	return b.String(), true
}
