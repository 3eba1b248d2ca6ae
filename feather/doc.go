// Package feather computes the duration multipliers of feathered-beam
// figures: accelerando and decelerando runs whose leaf durations move
// monotonically between two bounds.
//
// Every result is an exact rational. Arithmetic interpolation is exact
// by construction. Geometric interpolation needs a constant ratio —
// the (k−1)-th root of stop/start, which is irrational in general —
// so the ratio is replaced by its best rational approximation with
// denominator at most 1024; powers of a rational stay exact and the
// sequence stays strictly monotonic. In both modes a final exact
// rescale makes the multiplied durations sum to the enclosing slot
// precisely, so the measure-sum invariant holds without rounding.
//
// An Interpolation names the start/stop sounding bounds and the common
// written duration of the figure's leaves; multipliers are quoted
// against that written duration.
//
// Errors:
//   - ErrBadLeafCount     — fewer than one leaf requested
//   - ErrBadSlot          — non-positive slot duration
//   - ErrBadInterpolation — non-positive start/stop/written duration
package feather
