package tie

import (
	"errors"

	"github.com/ostrev/tactus/score"
)

// ErrIndex indicates a forced-tie position outside the leaf sequence.
var ErrIndex = errors.New("tie: index out of range")

// Tie joins two adjacent leaves and reports whether a tie was set.
// Rests never tie: if either leaf is a rest the call is a no-op.
func Tie(a, b *score.Leaf) bool {
	if a == nil || b == nil || a.Rest || b.Rest {
		return false
	}
	a.TieNext = true
	b.TiePrev = true
	return true
}

// Untie clears the tie between two adjacent leaves.
func Untie(a, b *score.Leaf) {
	if a != nil {
		a.TieNext = false
	}
	if b != nil {
		b.TiePrev = false
	}
}

// Force ties leaves[i] to leaves[i+1]: the caller marked an interior
// boundary as "no split, force tie". Rests still refuse the tie, so
// forcing across a rest silently does nothing.
func Force(leaves []*score.Leaf, i int) error {
	if i < 0 || i+1 >= len(leaves) {
		return ErrIndex
	}
	Tie(leaves[i], leaves[i+1])
	return nil
}

// Chains derives the TieChain view from tie flags: maximal runs of
// tied notes, with every rest as a singleton chain. Recompute after
// any tie mutation; chains are never stored.
func Chains(leaves []*score.Leaf) []score.TieChain {
	var out []score.TieChain
	var cur []*score.Leaf
	flush := func() {
		if len(cur) > 0 {
			out = append(out, score.TieChain{Leaves: cur})
			cur = nil
		}
	}
	for _, l := range leaves {
		if l.Rest {
			flush()
			out = append(out, score.TieChain{Leaves: []*score.Leaf{l}})
			continue
		}
		if !l.TiePrev {
			flush()
		}
		cur = append(cur, l)
		if !l.TieNext {
			flush()
		}
	}
	flush()
	return out
}
