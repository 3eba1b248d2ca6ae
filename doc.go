// Package tactus turns abstract duration specifications — cyclic
// taleas of signed counts plus time-signature sequences — into fully
// notated rhythmic trees: measures of leaves and tuplets with exact
// durations, resolved tuplet ratios, tie flags and beam counts.
//
// 🚀 What is tactus?
//
//	A pure, deterministic rhythm-generation library:
//	  • Exact rational arithmetic end to end — no floating-point drift
//	  • Cyclic talea interpretation with an explicit, replayable cursor
//	  • Measure partitioning with tie-linked boundary splits
//	  • Tuplet ratios in lowest terms, with trivial-ratio suppression
//	  • Partial beaming with stemlet marks next to rests
//	  • Feathered-beam (accelerando/decelerando) figures
//
// ✨ Why choose tactus?
//
//   - Deterministic — same inputs, same tree, every time
//   - Invariant-checked — every measure sums to its time signature exactly
//   - Renderer-agnostic — the output tree carries every rhythmic
//     decision; an engraving engine consumes it without recomputation
//
// Everything is organized under small focused packages:
//
//	duration/  — exact rationals, tuplet ratios, written-duration spelling
//	score/     — the output tree: TimeSignature, Leaf, Tuplet, Measure
//	talea/     — cyclic duration-sequence interpretation
//	partition/ — slicing flat durations into measure slots
//	tuplet/    — ratio resolution and label policy
//	tie/       — tie placement and tie-chain views
//	beam/      — sub-beam counts for partial beaming
//	feather/   — feathered-beam interpolation
//	maker/     — the pipeline tying it all together
//
// Start with package maker; the rest are usable on their own.
//
//	go get github.com/ostrev/tactus
package tactus
