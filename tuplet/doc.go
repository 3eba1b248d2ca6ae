// Package tuplet resolves tuplet ratios and their display labels.
//
// A measure slot that prescribes n subdivisions against a pulse that
// would fill it with m yields the ratio n:m, reduced to lowest terms.
// A ratio that reduces to 1:1 is trivial: the wrapper stays in the
// tree (sibling measures keep a uniform shape) but scales nothing,
// draws no bracket, and shows no label.
//
// Label policy is one of:
//   - Suppressed — never show a label
//   - Fraction   — show the reduced "n:m"
//   - Rhythm     — show a rhythm-duration label ("4.", "8") when the
//     slot maps onto a single notatable duration, otherwise fall back
//     to the fraction
//
// Which slots qualify for a rhythm label is a pluggable policy
// (RhythmLabelFunc); DefaultRhythmLabel admits exactly the assignable
// dotted power-of-two durations.
package tuplet
