// Package partition slices a flat sequence of signed exact durations
// into per-slot groups whose totals equal the slot durations exactly.
//
// A duration that straddles a slot boundary is split into two
// fragments carrying the original sign; for notes the two fragments
// are marked as split siblings (SplitNext on the earlier, SplitPrev on
// the later) so the tie stage can join them. Rests split silently —
// a rest is never tied.
//
// Slots is the general entry point; BySignatures partitions against
// the nominal durations of a time-signature sequence. The generation
// pipeline calls Slots with prolated slot weights, so tupletted
// measures partition exactly like plain ones.
//
// Invariant: for every slot, the sum of its fragments' values equals
// the slot duration, in exact rational arithmetic.
package partition
