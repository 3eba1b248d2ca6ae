package maker_test

import (
	"testing"

	"github.com/ostrev/tactus/duration"
	"github.com/ostrev/tactus/feather"
	"github.com/ostrev/tactus/maker"
	"github.com/ostrev/tactus/score"
	"github.com/ostrev/tactus/talea"
	"github.com/ostrev/tactus/tie"
	"github.com/ostrev/tactus/tuplet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func r(n, d int64) duration.Rational { return duration.Must(n, d) }

func sig(n, d int) score.TimeSignature { return score.TimeSignature{Numerator: n, Denominator: d} }

func measureLeaves(m score.Measure) []*score.Leaf { return score.Leaves(m.Elements) }

func writtens(ls []*score.Leaf) []duration.Rational {
	out := make([]duration.Rational, len(ls))
	for i, l := range ls {
		out[i] = l.Written
	}
	return out
}

// TestMake_Basic fills two measures from a talea that lands exactly on
// both barlines.
func TestMake_Basic(t *testing.T) {
	tl := talea.Talea{Counts: []int{1, 2, 3}, Denominator: 8}
	sigs := []score.TimeSignature{sig(3, 8), sig(3, 8)}

	measures, st, err := maker.Make(sigs, tl, maker.DefaultOptions(), maker.State{})
	require.NoError(t, err)
	require.Len(t, measures, 2)

	first := measureLeaves(measures[0])
	assert.Equal(t, []duration.Rational{r(1, 8), r(1, 4)}, writtens(first))
	second := measureLeaves(measures[1])
	assert.Equal(t, []duration.Rational{r(3, 8)}, writtens(second))

	// Exact talea fit: trivial tuplets, no labels, no ties.
	for _, m := range measures {
		tup := m.Elements[0].(*score.Tuplet)
		assert.True(t, tup.Trivial())
		assert.Empty(t, tup.Label)
	}
	assert.False(t, first[0].TieNext)
	assert.False(t, second[0].TiePrev)

	assert.Equal(t, r(3, 4), st.Cursor.Consumed)
	assert.Equal(t, 2, st.DurationsConsumed)
	assert.Equal(t, 3, st.LogicalTiesProduced)
	assert.False(t, st.IncompleteLastNote)
}

// TestMake_TieAcrossBarlines splits a long note at the barline and ties
// the halves when configured.
func TestMake_TieAcrossBarlines(t *testing.T) {
	tl := talea.Talea{Counts: []int{7}, Denominator: 8}
	sigs := []score.TimeSignature{sig(3, 8), sig(4, 8)}

	measures, st, err := maker.Make(sigs, tl, maker.DefaultOptions(), maker.State{})
	require.NoError(t, err)

	first := measureLeaves(measures[0])
	second := measureLeaves(measures[1])
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, r(3, 8), first[0].Written)
	assert.Equal(t, r(1, 2), second[0].Written)
	assert.True(t, first[0].TieNext)
	assert.True(t, second[0].TiePrev)
	assert.Equal(t, 1, st.LogicalTiesProduced, "one logical note across the barline")

	// The two leaves form a single chain whose sounding duration is
	// the full 7/8 the talea asked for.
	chains := tie.Chains(append(first, second...))
	require.Len(t, chains, 1)
	assert.Equal(t, r(7, 8), chains[0].Duration())

	opts := maker.DefaultOptions()
	opts.TieAcrossBarlines = false
	measures, st, err = maker.Make(sigs, tl, opts, maker.State{})
	require.NoError(t, err)
	assert.False(t, measureLeaves(measures[0])[0].TieNext)
	assert.False(t, measureLeaves(measures[1])[0].TiePrev)
	assert.Equal(t, 2, st.LogicalTiesProduced)
}

// TestMake_ExtraCounts prolates the second measure by one talea unit
// and wraps it in the resulting non-trivial ratio.
func TestMake_ExtraCounts(t *testing.T) {
	tl := talea.Talea{Counts: []int{3, -1, 1}, Denominator: 4}
	sigs := []score.TimeSignature{sig(3, 8), sig(3, 8)}
	opts := maker.DefaultOptions()
	opts.ExtraCounts = []int{0, 1}

	measures, st, err := maker.Make(sigs, tl, opts, maker.State{})
	require.NoError(t, err)
	require.Len(t, measures, 2)

	m0 := measures[0].Elements[0].(*score.Tuplet)
	assert.True(t, m0.Trivial())
	first := measureLeaves(measures[0])
	require.Len(t, first, 1)
	assert.Equal(t, r(3, 8), first[0].Written)
	assert.True(t, first[0].TieNext, "note continues past the barline")

	m1 := measures[1].Elements[0].(*score.Tuplet)
	assert.Equal(t, duration.Ratio{N: 5, M: 3}, m1.Ratio)
	assert.Equal(t, "5:3", m1.Label)
	second := measureLeaves(measures[1])
	require.Len(t, second, 2)
	assert.Equal(t, r(3, 8), second[0].Written)
	assert.True(t, second[0].TiePrev)
	assert.True(t, second[1].Rest)
	assert.Equal(t, r(1, 4), second[1].Written)

	// Prolation never changes the notated measure length.
	assert.Equal(t, r(3, 8), measures[1].Duration())

	assert.Equal(t, duration.One, st.Cursor.Consumed)
	assert.Equal(t, 2, st.LogicalTiesProduced)
	assert.False(t, st.IncompleteLastNote, "final leaf is a rest")
}

// TestMake_RhythmLabels labels prolated measures with the measure's
// rhythm figure when it has one.
func TestMake_RhythmLabels(t *testing.T) {
	tl := talea.Talea{Counts: []int{3, -1, 1}, Denominator: 4}
	sigs := []score.TimeSignature{sig(3, 8), sig(3, 8)}
	opts := maker.DefaultOptions()
	opts.ExtraCounts = []int{0, 1}
	opts.TupletLabels = tuplet.Rhythm

	measures, _, err := maker.Make(sigs, tl, opts, maker.State{})
	require.NoError(t, err)
	assert.Empty(t, measures[0].Elements[0].(*score.Tuplet).Label)
	assert.Equal(t, "4.", measures[1].Elements[0].(*score.Tuplet).Label)
}

// TestMake_NegativeExtraCounts shrinks the prolated numerator.
func TestMake_NegativeExtraCounts(t *testing.T) {
	tl := talea.Talea{Counts: []int{1}, Denominator: 8}
	opts := maker.DefaultOptions()
	opts.ExtraCounts = []int{-1}

	measures, _, err := maker.Make([]score.TimeSignature{sig(3, 8)}, tl, opts, maker.State{})
	require.NoError(t, err)

	tup := measures[0].Elements[0].(*score.Tuplet)
	assert.Equal(t, duration.Ratio{N: 2, M: 3}, tup.Ratio)
	assert.Equal(t, []duration.Rational{r(1, 8), r(1, 8)}, writtens(measureLeaves(measures[0])))
	assert.Equal(t, r(3, 8), measures[0].Duration())
}

// TestMake_StateContinuity resumes a run mid-count: the two calls
// together render the same rhythm an unbroken run would.
func TestMake_StateContinuity(t *testing.T) {
	tl := talea.Talea{Counts: []int{2}, Denominator: 8}
	sigs := []score.TimeSignature{sig(3, 8)}

	measures, st, err := maker.Make(sigs, tl, maker.DefaultOptions(), maker.State{})
	require.NoError(t, err)
	assert.Equal(t, []duration.Rational{r(1, 4), r(1, 8)}, writtens(measureLeaves(measures[0])))
	assert.Equal(t, 2, st.LogicalTiesProduced)
	assert.True(t, st.IncompleteLastNote, "stopped inside a count")

	measures, st, err = maker.Make(sigs, tl, maker.DefaultOptions(), st)
	require.NoError(t, err)
	assert.Equal(t, []duration.Rational{r(1, 8), r(1, 4)}, writtens(measureLeaves(measures[0])))
	assert.Equal(t, 3, st.LogicalTiesProduced, "continuation chain counted once")
	assert.Equal(t, 2, st.DurationsConsumed)
	assert.False(t, st.IncompleteLastNote)
}

// TestMake_MeasureSums checks the notated length of every measure
// against its signature across a mixed run.
func TestMake_MeasureSums(t *testing.T) {
	tl := talea.Talea{Counts: []int{5, -3, 2, 1}, Denominator: 16}
	sigs := []score.TimeSignature{sig(2, 4), sig(3, 8), sig(5, 16), sig(4, 4)}
	opts := maker.DefaultOptions()
	opts.ExtraCounts = []int{1, 0, -1}

	measures, _, err := maker.Make(sigs, tl, opts, maker.State{})
	require.NoError(t, err)
	for i, m := range measures {
		assert.Equal(t, sigs[i].Duration(), m.Duration(), "measure %d", i)
	}
}

// TestMake_EmptyRun yields nothing and leaves the state alone.
func TestMake_EmptyRun(t *testing.T) {
	st := maker.State{DurationsConsumed: 3}
	measures, next, err := maker.Make(nil, talea.Talea{Counts: []int{1}, Denominator: 8}, maker.DefaultOptions(), st)
	require.NoError(t, err)
	assert.Nil(t, measures)
	assert.Equal(t, st, next)
}

// TestMake_Errors discards all measures on failure.
func TestMake_Errors(t *testing.T) {
	tl := talea.Talea{Counts: []int{1}, Denominator: 8}

	measures, _, err := maker.Make([]score.TimeSignature{sig(0, 8)}, tl, maker.DefaultOptions(), maker.State{})
	assert.ErrorIs(t, err, maker.ErrBadTimeSignature)
	assert.Nil(t, measures)

	measures, _, err = maker.Make([]score.TimeSignature{sig(3, 6)}, tl, maker.DefaultOptions(), maker.State{})
	assert.ErrorIs(t, err, maker.ErrBadTimeSignature)
	assert.Nil(t, measures)

	bad := talea.Talea{Counts: []int{1}, Denominator: 12}
	measures, _, err = maker.Make([]score.TimeSignature{sig(3, 8)}, bad, maker.DefaultOptions(), maker.State{})
	assert.ErrorIs(t, err, talea.ErrBadDenominator)
	assert.Nil(t, measures)
}

// TestMakeNotes sustains each measure with one spelled, tied note.
func TestMakeNotes(t *testing.T) {
	sigs := []score.TimeSignature{sig(3, 8), sig(5, 8)}

	measures, st, err := maker.MakeNotes(sigs, maker.DefaultOptions(), maker.State{})
	require.NoError(t, err)
	require.Len(t, measures, 2)

	first := measureLeaves(measures[0])
	require.Len(t, first, 1)
	assert.Equal(t, r(3, 8), first[0].Written)

	second := measureLeaves(measures[1])
	require.Len(t, second, 2)
	assert.Equal(t, []duration.Rational{r(1, 2), r(1, 8)}, writtens(second))
	assert.True(t, second[0].TieNext)
	assert.True(t, second[1].TiePrev)

	assert.Equal(t, 2, st.DurationsConsumed)
	assert.Equal(t, 2, st.LogicalTiesProduced, "one logical note per measure")
	assert.False(t, st.IncompleteLastNote)
}

// TestMakeAccelerando fills each measure with one feathered figure in a
// full-length 1:1 bracket.
func TestMakeAccelerando(t *testing.T) {
	sigs := []score.TimeSignature{sig(2, 4)}
	interps := []feather.Interpolation{{Start: r(1, 8), Stop: r(1, 16), Written: r(1, 16)}}

	measures, st, err := maker.MakeAccelerando(sigs, interps, maker.DefaultOptions(), maker.State{})
	require.NoError(t, err)
	require.Len(t, measures, 1)

	tup := measures[0].Elements[0].(*score.Tuplet)
	assert.Equal(t, duration.Ratio{N: 1, M: 1}, tup.Ratio)
	assert.True(t, tup.FullLengthBracket)

	leaves := measureLeaves(measures[0])
	require.Len(t, leaves, 5)
	for i := 0; i < len(leaves)-1; i++ {
		assert.True(t, leaves[i+1].Duration().Less(leaves[i].Duration()), "at %d", i)
	}
	assert.Equal(t, sigs[0].Duration(), measures[0].Duration())

	assert.Equal(t, 1, st.DurationsConsumed)
	assert.Equal(t, 5, st.LogicalTiesProduced)
}

// TestMakeAccelerando_CyclePhase rotates the interpolation cycle by the
// measures a previous call consumed.
func TestMakeAccelerando_CyclePhase(t *testing.T) {
	interps := []feather.Interpolation{
		{Start: r(1, 8), Stop: r(1, 16), Written: r(1, 16)},
		{Start: r(1, 4), Stop: r(1, 8), Written: r(1, 8)},
	}

	// 2/4 slot: the first figure estimates ⌊2·(1/2)/(3/16)⌋ = 5 leaves,
	// the second ⌊2·(1/2)/(3/8)⌋ = 2.
	measures, _, err := maker.MakeAccelerando(
		[]score.TimeSignature{sig(2, 4)}, interps, maker.DefaultOptions(),
		maker.State{DurationsConsumed: 1})
	require.NoError(t, err)
	assert.Len(t, measureLeaves(measures[0]), 2, "phase picks the second interpolation")

	_, _, err = maker.MakeAccelerando([]score.TimeSignature{sig(2, 4)}, nil, maker.DefaultOptions(), maker.State{})
	assert.ErrorIs(t, err, maker.ErrNoInterpolations)
}
