package feather

import (
	"errors"
	"math"

	"github.com/ostrev/tactus/duration"
	"github.com/ostrev/tactus/score"
)

var (
	// ErrBadLeafCount indicates a requested figure of fewer than one leaf.
	ErrBadLeafCount = errors.New("feather: leaf count must be at least 1")

	// ErrBadSlot indicates a non-positive slot duration.
	ErrBadSlot = errors.New("feather: slot duration must be positive")

	// ErrBadInterpolation indicates a non-positive start, stop or
	// written duration.
	ErrBadInterpolation = errors.New("feather: interpolation durations must be positive")
)

// Mode selects the interpolation curve.
type Mode int

const (
	// Geometric keeps a constant ratio between consecutive durations.
	Geometric Mode = iota

	// Arithmetic keeps a constant difference between consecutive durations.
	Arithmetic
)

// Interpolation describes one feathered figure: the sounding duration
// of the first leaf, of the last leaf, and the common written duration
// every leaf is notated with. Start > Stop is an accelerando in
// notation-speak (durations shrink); Start < Stop a decelerando.
type Interpolation struct {
	Start   duration.Rational
	Stop    duration.Rational
	Written duration.Rational
}

// Reverse swaps the start and stop bounds.
func (i Interpolation) Reverse() Interpolation {
	return Interpolation{Start: i.Stop, Stop: i.Start, Written: i.Written}
}

func (i Interpolation) validate() error {
	if i.Start.Sign() <= 0 || i.Stop.Sign() <= 0 || i.Written.Sign() <= 0 {
		return ErrBadInterpolation
	}
	return nil
}

// maxRatioDen bounds the denominator of the geometric common ratio.
const maxRatioDen = 1 << 10

// Interpolate returns count exact multiplier fractions for a feathered
// figure filling slot. Leaf i sounds for interp.Written × result[i];
// the multiplied durations sum to slot exactly. The sequence is
// strictly monotonic whenever the interpolation bounds differ.
func Interpolate(slot duration.Rational, interp Interpolation, count int, mode Mode) ([]duration.Rational, error) {
	if count < 1 {
		return nil, ErrBadLeafCount
	}
	if slot.Sign() <= 0 {
		return nil, ErrBadSlot
	}
	if err := interp.validate(); err != nil {
		return nil, err
	}

	durs := make([]duration.Rational, count)
	switch {
	case count == 1:
		durs[0] = slot
	case mode == Arithmetic:
		step := interp.Stop.Sub(interp.Start).Div(duration.FromInt(int64(count - 1)))
		d := interp.Start
		for i := range durs {
			durs[i] = d
			d = d.Add(step)
		}
	default:
		ratio := commonRatio(interp.Start, interp.Stop, count)
		d := interp.Start
		for i := range durs {
			durs[i] = d
			d = d.Mul(ratio)
		}
	}

	// Exact rescale: Σ durs × (slot/Σ durs) == slot. Scaling by a
	// positive constant preserves strict monotonicity.
	sum := duration.Zero
	for _, d := range durs {
		sum = sum.Add(d)
	}
	scale := slot.Div(sum)
	out := make([]duration.Rational, count)
	for i, d := range durs {
		out[i] = d.Mul(scale).Div(interp.Written)
	}
	return out, nil
}

// commonRatio approximates (stop/start)^(1/(count−1)) by the best
// rational with denominator ≤ 1024, nudged off 1 when the bounds
// differ so that monotonicity survives the approximation.
func commonRatio(start, stop duration.Rational, count int) duration.Rational {
	if start.Cmp(stop) == 0 {
		return duration.One
	}
	root := math.Pow(stop.Div(start).Float64(), 1/float64(count-1))
	ratio := approximate(root, maxRatioDen)
	if ratio.Cmp(duration.One) == 0 {
		if start.Less(stop) {
			return duration.Must(maxRatioDen+1, maxRatioDen)
		}
		return duration.Must(maxRatioDen-1, maxRatioDen)
	}
	return ratio
}

// approximate returns the continued-fraction convergent of x with
// denominator at most maxDen.
func approximate(x float64, maxDen int64) duration.Rational {
	p0, q0 := int64(0), int64(1)
	p1, q1 := int64(1), int64(0)
	v := x
	for i := 0; i < 64; i++ {
		a := int64(math.Floor(v))
		if q0+a*q1 > maxDen && q1 > 0 {
			break
		}
		p0, q0, p1, q1 = p1, q1, p0+a*p1, q0+a*q1
		frac := v - math.Floor(v)
		if frac < 1e-12 {
			break
		}
		v = 1 / frac
	}
	return duration.Must(p1, q1)
}

// EstimateCount returns the number of leaves whose average duration
// best fills slot: ⌊2·slot/(start+stop)⌋, at least 1. The pipeline
// uses it when a figure's leaf count is not prescribed.
func EstimateCount(slot duration.Rational, interp Interpolation) int {
	if slot.Sign() <= 0 || interp.Start.Sign() <= 0 || interp.Stop.Sign() <= 0 {
		return 1
	}
	k := slot.Mul(duration.FromInt(2)).Div(interp.Start.Add(interp.Stop))
	n := k.Num() / k.Den()
	if n < 1 {
		return 1
	}
	return int(n)
}

// MakeLeaves builds the figure's leaves: each written interp.Written
// with its interpolated multiplier. The caller wraps them in a 1:1
// tuplet carrying the feathered beam.
func MakeLeaves(slot duration.Rational, interp Interpolation, count int, mode Mode) ([]*score.Leaf, error) {
	mults, err := Interpolate(slot, interp, count, mode)
	if err != nil {
		return nil, err
	}
	leaves := make([]*score.Leaf, count)
	for i, m := range mults {
		l := score.NewLeaf(interp.Written, false)
		l.Multiplier = m
		leaves[i] = l
	}
	return leaves, nil
}
