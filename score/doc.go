// Package score defines the rhythmic tree handed to a rendering or
// engraving engine: measures owning tuplets owning leaves.
//
// Ownership is strictly top-down — a Measure owns its Elements, a
// Tuplet owns its Children, and nothing stores a parent pointer. Any
// "which measure am I in" question is an index the caller already
// holds. This keeps the tree a tree (no ownership cycles) and makes
// measures independently constructible.
//
// The one derived view is TieChain: consecutive tied leaves regarded
// as a single sounding event. Chains are recomputed from tie flags by
// the tie package, never stored.
//
// Validate checks the invariants every generated measure must satisfy:
//   - the notated duration of the tree, after tuplet-ratio scaling,
//     equals the time signature's nominal duration exactly
//   - rests never carry tie flags
//   - tuplet ratios are in lowest terms
package score
