// Package tie sets and derives tie relationships between leaves.
//
// Ties come from three places: the spelling of a nonassignable
// duration into several written notes, the synthetic split of a
// duration at a measure boundary, and explicitly forced interior ties
// ("no split here, tie instead"). All three reduce to the same
// primitive: Tie joins two adjacent leaves unless either is a rest —
// a tie never enters or leaves a rest, without exception.
//
// Chains recomputes the derived TieChain view from the tie flags:
// every maximal run of tied notes is one logical sounding event, and
// every rest is a chain of one. The chain view is what duration-sum
// invariants are stated over: a chain built from a split duration sums
// back to the original count's magnitude.
package tie
