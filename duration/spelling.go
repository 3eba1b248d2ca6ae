package duration

import "math/bits"

// Spelling controls how a rational duration is decomposed into written
// (dotted power-of-two) durations.
//
// Fields:
//   - IncreaseMonotonic      — emit parts shortest-first instead of the
//     default longest-first ordering.
//   - ForbiddenNoteDuration  — written note durations ≥ this value are
//     respelled as tied repeats of a shorter duration. Zero means no limit.
//   - ForbiddenRestDuration  — same rule for rests.
type Spelling struct {
	IncreaseMonotonic     bool
	ForbiddenNoteDuration Rational
	ForbiddenRestDuration Rational
}

// maxAssignable bounds a single written duration; anything ≥ 16 whole
// notes has no standard glyph and is emitted as repeated maximas.
var maxAssignable = FromInt(16)

// IsAssignable reports whether r can be written as one note head:
// a positive value strictly below 16 whose reduced form is
// (2^a − 2^b) / 2^k, i.e. a dotted power-of-two duration.
// 1/4, 3/8 and 7/16 are assignable; 5/16 is not.
func IsAssignable(r Rational) bool {
	if r.Sign() <= 0 || !r.Less(maxAssignable) {
		return false
	}
	if !IsPowerOfTwo(r.Den()) {
		return false
	}
	n := r.Num()
	// Contiguous ones in binary: adding the lowest set bit must clear
	// the whole run.
	return n&(n+(n&-n)) == 0
}

// Dots returns the dot count of an assignable duration: 0 for 1/4,
// 1 for 3/8, 2 for 7/16. The result is meaningless for durations that
// are not assignable.
func Dots(r Rational) int {
	return bits.OnesCount64(uint64(r.Num())) - 1
}

// Base returns the undotted value of an assignable duration:
// Base(3/8) = 1/4, Base(7/16) = 1/4, Base(1/2) = 1/2.
func Base(r Rational) Rational {
	n := r.Num()
	hi := int64(1) << (bits.Len64(uint64(n)) - 1)
	return Must(hi, r.Den())
}

// Spell decomposes the positive rational r into a sequence of
// assignable written durations whose exact sum is r.
//
// The default ordering is monotonically decreasing; set
// s.IncreaseMonotonic for the reverse. isRest selects which forbidden
// limit applies. Consecutive parts of a spelled note are tied by the
// caller; this package only computes the values.
//
// Returns ErrUnsupportedDuration when the denominator of r is not a
// power of two, and ErrZeroDenominator never (r is already reduced).
func Spell(r Rational, s Spelling, isRest bool) ([]Rational, error) {
	if r.Sign() <= 0 {
		return nil, ErrUnsupportedDuration
	}
	if !IsPowerOfTwo(r.Den()) {
		return nil, ErrUnsupportedDuration
	}
	forbidden := s.ForbiddenNoteDuration
	if isRest {
		forbidden = s.ForbiddenRestDuration
	}

	var parts []Rational
	n, d := r.Num(), r.Den()
	for n > 0 {
		chunk := leadingRun(n)
		part := reduced(chunk, d)
		n -= chunk
		parts = append(parts, respell(part, forbidden)...)
	}
	if s.IncreaseMonotonic {
		for l, r := 0, len(parts)-1; l < r; l, r = l+1, r-1 {
			parts[l], parts[r] = parts[r], parts[l]
		}
	}
	return parts, nil
}

// respell expands a single assignable chunk against the forbidden
// limit: a part at or above the limit becomes 2^k equal halves, the
// smallest power of two that lands below the limit. Oversized values
// (≥ 16) halve the same way regardless of limit.
func respell(part Rational, forbidden Rational) []Rational {
	limit := forbidden
	if limit.IsZero() || !limit.Less(maxAssignable) {
		limit = maxAssignable
	}
	if part.Less(limit) {
		return []Rational{part}
	}
	copies := int64(1)
	for !part.Less(limit) {
		part = part.Mul(Must(1, 2))
		copies *= 2
	}
	out := make([]Rational, copies)
	for i := range out {
		out[i] = part
	}
	return out
}

// leadingRun returns the value of the leading run of one-bits of n:
// leadingRun(0b1101) = 0b1100.
func leadingRun(n int64) int64 {
	hi := bits.Len64(uint64(n)) - 1
	var run int64
	for k := hi; k >= 0 && n&(1<<k) != 0; k-- {
		run |= 1 << k
	}
	return run
}

// Flags returns the number of beams/flags carried by a written
// duration: 0 for 1/4 and longer, 1 for 1/8, 2 for 1/16, and so on.
// Dotted values count as their undotted base (3/16 → 1).
func Flags(r Rational) int {
	if r.Sign() <= 0 {
		return 0
	}
	exp := bits.Len64(uint64(r.Den())) - 1 - (bits.Len64(uint64(r.Num())) - 1)
	if exp < 3 {
		return 0
	}
	return exp - 2
}
