package beam_test

import (
	"testing"

	"github.com/ostrev/tactus/beam"
	"github.com/ostrev/tactus/duration"
	"github.com/ostrev/tactus/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func r(n, d int64) duration.Rational { return duration.Must(n, d) }

func leaves(rests map[int]bool, written ...duration.Rational) []*score.Leaf {
	out := make([]*score.Leaf, len(written))
	for i, w := range written {
		out[i] = score.NewLeaf(w, rests[i])
	}
	return out
}

func lefts(ls []*score.Leaf) []int {
	out := make([]int, len(ls))
	for i, l := range ls {
		out[i] = l.LeftBeams
	}
	return out
}

func rights(ls []*score.Leaf) []int {
	out := make([]int, len(ls))
	for i, l := range ls {
		out[i] = l.RightBeams
	}
	return out
}

// TestBeamable excludes rests and unflagged durations.
func TestBeamable(t *testing.T) {
	assert.True(t, beam.Beamable(score.NewLeaf(r(1, 8), false)))
	assert.True(t, beam.Beamable(score.NewLeaf(r(1, 32), false)))
	assert.False(t, beam.Beamable(score.NewLeaf(r(1, 4), false)), "no flags")
	assert.False(t, beam.Beamable(score.NewLeaf(r(1, 8), true)), "rest")
	assert.False(t, beam.Beamable(score.NewLeaf(r(3, 8), false)), "dotted quarter")
}

// TestApply_UniformRun beams a run of equal flag counts, open only at
// the interior boundaries.
func TestApply_UniformRun(t *testing.T) {
	ls := leaves(nil, r(1, 16), r(1, 16), r(1, 16), r(1, 16), r(1, 16), r(1, 16))
	beam.Apply(ls, beam.DefaultOptions())

	assert.Equal(t, []int{0, 2, 2, 2, 2, 2}, lefts(ls))
	assert.Equal(t, []int{2, 2, 2, 2, 2, 0}, rights(ls))
}

// TestApply_MixedFlags joins neighbors with the smaller flag count.
func TestApply_MixedFlags(t *testing.T) {
	ls := leaves(nil, r(1, 8), r(1, 16), r(1, 16), r(1, 8))
	beam.Apply(ls, beam.DefaultOptions())

	assert.Equal(t, []int{0, 1, 2, 1}, lefts(ls))
	assert.Equal(t, []int{1, 2, 1, 0}, rights(ls))
}

// TestApply_RunsSplitByRests resets counts at every rest; an isolated
// beamable leaf draws nothing.
func TestApply_RunsSplitByRests(t *testing.T) {
	ls := leaves(map[int]bool{2: true},
		r(1, 8), r(1, 8), r(1, 8), r(1, 8), r(1, 4), r(1, 8))
	beam.Apply(ls, beam.DefaultOptions())

	assert.Equal(t, []int{0, 1, 0, 0, 0, 0}, lefts(ls))
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0}, rights(ls))
}

// TestApply_SymmetryInvariant checks that, inside a run, each boundary
// agrees from both sides: right of i equals left of i+1.
func TestApply_SymmetryInvariant(t *testing.T) {
	ls := leaves(nil, r(1, 8), r(1, 32), r(1, 16), r(1, 32), r(1, 8))
	beam.Apply(ls, beam.DefaultOptions())

	for i := 0; i < len(ls)-1; i++ {
		assert.Equal(t, ls[i].RightBeams, ls[i+1].LeftBeams, "boundary %d", i)
	}
	assert.Zero(t, ls[0].LeftBeams)
	assert.Zero(t, ls[len(ls)-1].RightBeams)
}

// TestApply_None leaves every count zero.
func TestApply_None(t *testing.T) {
	ls := leaves(nil, r(1, 16), r(1, 16))
	beam.Apply(ls, beam.Options{Policy: beam.None})

	assert.Equal(t, []int{0, 0}, lefts(ls))
	assert.Equal(t, []int{0, 0}, rights(ls))
}

// TestApply_Custom delegates counting to the provided function.
func TestApply_Custom(t *testing.T) {
	ls := leaves(nil, r(1, 16), r(1, 16), r(1, 16))
	opts := beam.Options{
		Policy: beam.Custom,
		Counts: func(prev, cur, next *score.Leaf) (int, int) {
			l, rr := 0, 0
			if prev != nil {
				l = 1
			}
			if next != nil {
				rr = 1
			}
			return l, rr
		},
	}
	beam.Apply(ls, opts)

	assert.Equal(t, []int{0, 1, 1}, lefts(ls))
	assert.Equal(t, []int{1, 1, 0}, rights(ls))

	// Custom with a nil Counts draws nothing.
	ls = leaves(nil, r(1, 16), r(1, 16))
	beam.Apply(ls, beam.Options{Policy: beam.Custom})
	assert.Equal(t, []int{0, 0}, lefts(ls))
}

// TestApply_Stemlets marks rests adjacent to a genuine run.
func TestApply_Stemlets(t *testing.T) {
	ls := leaves(map[int]bool{0: true, 3: true},
		r(1, 8), r(1, 8), r(1, 8), r(1, 8))
	beam.Apply(ls, beam.Options{Policy: beam.Default, Stemlets: true})

	require.True(t, ls[0].Stemlet)
	require.True(t, ls[3].Stemlet)
	assert.False(t, ls[1].Stemlet)
	assert.False(t, ls[2].Stemlet)

	// An isolated leaf is not a run; neighbors stay unmarked.
	ls = leaves(map[int]bool{0: true, 2: true}, r(1, 8), r(1, 8), r(1, 8))
	beam.Apply(ls, beam.Options{Policy: beam.Default, Stemlets: true})
	assert.False(t, ls[0].Stemlet)
	assert.False(t, ls[2].Stemlet)
}
