package maker

import (
	"github.com/ostrev/tactus/beam"
	"github.com/ostrev/tactus/duration"
	"github.com/ostrev/tactus/feather"
	"github.com/ostrev/tactus/talea"
	"github.com/ostrev/tactus/tuplet"
)

// Options configures one generation run.
//
// Fields:
//   - TieAcrossBarlines — tie the two fragments of a duration split at
//     a measure boundary (rests never tie either way).
//   - ExtraCounts       — per-measure additive adjustment to the
//     prolated subdivision count, cycled across measures and rotated
//     by the number of measures already consumed. Positive values are
//     reduced modulo the measure numerator, negative values modulo its
//     negation.
//   - Beam              — beam-count policy, see package beam.
//   - TupletLabels      — label policy for non-trivial tuplets.
//   - RhythmLabel       — qualifying rule for rhythm-duration labels;
//     nil uses tuplet.DefaultRhythmLabel.
//   - Interpolation     — curve for feathered figures.
//   - Spelling          — written-duration spelling rules.
type Options struct {
	TieAcrossBarlines bool
	ExtraCounts       []int
	Beam              beam.Options
	TupletLabels      tuplet.LabelPolicy
	RhythmLabel       tuplet.RhythmLabelFunc
	Interpolation     feather.Mode
	Spelling          duration.Spelling
}

// DefaultOptions ties across barlines, beams with the default policy,
// labels non-trivial tuplets with their reduced fraction, and feathers
// geometrically.
func DefaultOptions() Options {
	return Options{
		TieAcrossBarlines: true,
		Beam:              beam.DefaultOptions(),
		TupletLabels:      tuplet.Fraction,
		Interpolation:     feather.Geometric,
	}
}

// State is everything one generation run carries between calls: the
// talea cursor and the counters a subsequent call needs to stay in
// phase. The zero value starts a run.
type State struct {
	// Cursor is the talea's cyclic position, in consumed duration.
	Cursor talea.Cursor

	// DurationsConsumed counts measures produced so far; extra counts
	// and interpolations rotate by it.
	DurationsConsumed int

	// LogicalTiesProduced counts tie chains produced so far. A chain
	// left incomplete by the previous call is not counted twice.
	LogicalTiesProduced int

	// IncompleteLastNote records that the previous call stopped inside
	// a talea count, leaving its final note to be continued.
	IncompleteLastNote bool
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// rotate returns s rotated left by n places: rotate([a b c], 1) = [b c a].
func rotate[T any](s []T, n int) []T {
	if len(s) == 0 {
		return s
	}
	n %= len(s)
	if n < 0 {
		n += len(s)
	}
	out := make([]T, 0, len(s))
	out = append(out, s[n:]...)
	out = append(out, s[:n]...)
	return out
}
