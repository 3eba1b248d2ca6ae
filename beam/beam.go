package beam

import (
	"github.com/ostrev/tactus/duration"
	"github.com/ostrev/tactus/score"
)

// Policy selects how beam counts are computed.
type Policy int

const (
	// Default computes counts from written-duration flags.
	Default Policy = iota

	// None leaves every count at zero (no beams drawn).
	None

	// Custom delegates per-leaf counting to Options.Counts.
	Custom
)

// CountFunc computes the left/right counts of cur given its run
// neighbors; prev and next are nil at run boundaries.
type CountFunc func(prev, cur, next *score.Leaf) (left, right int)

// Options configures beaming.
//
// Fields:
//   - Policy   — Default, None or Custom.
//   - Stemlets — mark rests adjacent to a run for stemlet rendering.
//   - Counts   — the counting function for Policy == Custom; ignored
//     otherwise. A nil Counts under Custom behaves like None.
type Options struct {
	Policy   Policy
	Stemlets bool
	Counts   CountFunc
}

// DefaultOptions returns the default beaming configuration.
func DefaultOptions() Options {
	return Options{Policy: Default}
}

// Beamable reports whether a leaf can join a beam run: a sounding leaf
// whose written duration carries at least one flag.
func Beamable(l *score.Leaf) bool {
	return !l.Rest && duration.Flags(l.Written) > 0
}

// Apply computes beam counts for every maximal run of beamable leaves
// in the sequence, which is typically one measure's flattened leaves.
// Left/right counts outside runs, and under Policy None, stay zero.
func Apply(leaves []*score.Leaf, opts Options) {
	if opts.Policy == None {
		return
	}
	start := -1
	for i := 0; i <= len(leaves); i++ {
		if i < len(leaves) && Beamable(leaves[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			applyRun(leaves[start:i], opts)
			markStemlets(leaves, start, i, opts)
			start = -1
		}
	}
}

func applyRun(run []*score.Leaf, opts Options) {
	if len(run) < 2 {
		// An isolated leaf draws no beam.
		return
	}
	for i, l := range run {
		var prev, next *score.Leaf
		if i > 0 {
			prev = run[i-1]
		}
		if i < len(run)-1 {
			next = run[i+1]
		}
		switch opts.Policy {
		case Custom:
			if opts.Counts != nil {
				l.LeftBeams, l.RightBeams = opts.Counts(prev, l, next)
			}
		default:
			l.LeftBeams, l.RightBeams = defaultCounts(prev, l, next)
		}
	}
}

// defaultCounts joins a leaf to each neighbor with the smaller of the
// two flag counts; run boundaries contribute zero.
func defaultCounts(prev, cur, next *score.Leaf) (left, right int) {
	f := duration.Flags(cur.Written)
	if prev != nil {
		left = min(f, duration.Flags(prev.Written))
	}
	if next != nil {
		right = min(f, duration.Flags(next.Written))
	}
	return left, right
}

// markStemlets flags the rests immediately before and after the run
// [start, end) so a renderer can carry a stemlet into them. Only rests
// are eligible; a run ending at the sequence edge marks nothing.
func markStemlets(leaves []*score.Leaf, start, end int, opts Options) {
	if !opts.Stemlets || end-start < 2 {
		return
	}
	if start > 0 && leaves[start-1].Rest {
		leaves[start-1].Stemlet = true
	}
	if end < len(leaves) && leaves[end].Rest {
		leaves[end].Stemlet = true
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
