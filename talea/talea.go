package talea

import (
	"errors"

	"github.com/ostrev/tactus/duration"
)

var (
	// ErrEmptyTalea indicates a talea with no counts to cycle while a
	// nonzero duration is requested.
	ErrEmptyTalea = errors.New("talea: empty talea")

	// ErrBadDenominator indicates a denominator that is not a positive
	// integer power of two.
	ErrBadDenominator = errors.New("talea: denominator must be a positive power of two")

	// ErrZeroCount indicates a zero entry among counts, preamble counts
	// or end counts; a zero count has no duration and no voicing.
	ErrZeroCount = errors.New("talea: zero count")

	// ErrBadTarget indicates a negative target duration.
	ErrBadTarget = errors.New("talea: negative target duration")

	// ErrBadEndCounts indicates end counts whose total weight exceeds
	// the weight of the interpreted sequence.
	ErrBadEndCounts = errors.New("talea: end counts exceed sequence weight")

	// ErrReadOnce indicates a read-once talea whose counts are too short
	// to satisfy the requested duration without cycling.
	ErrReadOnce = errors.New("talea: counts too short to read once")
)

// Talea is a cyclically repeating sequence of signed counts over a
// shared denominator. Sign encodes voicing: positive counts are notes,
// negative counts rests. Preamble counts are read exactly once before
// the cycle begins; EndCounts replace the trailing weight of an
// interpreted sequence.
//
// A Talea is never mutated by interpretation; the cycle position lives
// in a Cursor. With ReadOnce set the counts are a one-shot sequence:
// interpretation that would have to cycle fails with ErrReadOnce
// instead.
type Talea struct {
	Counts      []int
	Denominator int
	Preamble    []int
	EndCounts   []int
	ReadOnce    bool
}

// Period returns the absolute weight of one cycle of counts, in units
// of 1/Denominator. Rests and preamble make no difference.
func (t Talea) Period() int {
	w := 0
	for _, c := range t.Counts {
		w += abs(c)
	}
	return w
}

// Scale returns a copy of t with every count multiplied by k and the
// denominator multiplied by the same k, leaving every duration
// unchanged. The partitioning pipeline uses it to bring a talea onto
// the least common denominator of a time-signature sequence.
func (t Talea) Scale(k int) Talea {
	return Talea{
		Counts:      scaled(t.Counts, k),
		Denominator: t.Denominator * k,
		Preamble:    scaled(t.Preamble, k),
		EndCounts:   scaled(t.EndCounts, k),
		ReadOnce:    t.ReadOnce,
	}
}

func scaled(counts []int, k int) []int {
	if counts == nil {
		return nil
	}
	out := make([]int, len(counts))
	for i, c := range counts {
		out[i] = c * k
	}
	return out
}

func (t Talea) validate() error {
	if !duration.IsPowerOfTwo(int64(t.Denominator)) {
		return ErrBadDenominator
	}
	for _, group := range [][]int{t.Counts, t.Preamble, t.EndCounts} {
		for _, c := range group {
			if c == 0 {
				return ErrZeroCount
			}
		}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func weight(counts []int) int {
	w := 0
	for _, c := range counts {
		w += abs(c)
	}
	return w
}
