// Package maker runs the full generation pipeline: from a talea and a
// time-signature sequence to finished, validated measures.
//
// The pipeline order is fixed: the talea interpreter produces a flat
// signed duration sequence, the partitioner slices it into per-measure
// slots (prolated by extra counts), the ratio resolver and tie stage
// run together per measure, and the beam calculator runs over each
// finished measure's leaves. The other entry points swap the talea
// front end for a different fill: MakeNotes sustains one spelled note
// per measure, MakeEvenDivision divides each measure into equal
// written durations, MakeIncised carves prefix and suffix counts
// around a shaped middle, MakeTuplets shapes each measure by a weight
// proportion, MakeMultipliedDuration stretches one written value with
// a multiplier, and MakeAccelerando fills measures with feathered
// figures.
//
// Every entry point takes and returns a State value — the talea cursor
// plus bookkeeping counters. State is the only thing carried between
// calls within one generation run; pass the zero value to start a run
// and thread the returned state into the next call. Nothing else
// persists, so a run replays deterministically.
//
// Failure discards everything: on any error the measure slice is nil,
// never a partially consistent tree.
//
// ⚙️ Usage:
//
//	t := talea.Talea{Counts: []int{3, -1, 1}, Denominator: 8}
//	sigs := []score.TimeSignature{{3, 8}, {4, 8}}
//	measures, state, err := maker.Make(sigs, t, maker.DefaultOptions(), maker.State{})
package maker
