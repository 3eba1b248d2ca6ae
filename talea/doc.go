// Package talea expands a cyclic sequence of signed integer counts
// into a flat sequence of exact signed durations.
//
// A talea is the rhythmic germ of a figure: counts cycle forever over a
// shared power-of-two denominator, positive counts sounding and
// negative counts resting. An optional preamble is read once before
// the cycle starts, and optional end counts replace the trailing
// weight of an interpreted sequence — both straight from classical
// talea practice (lead-in and cadence figures). A read-once talea
// refuses to cycle at all: asking for more duration than one pass
// holds is an error rather than a repetition.
//
// Interpretation is driven by an explicit Cursor: the only state the
// wider generation pipeline carries between calls. A cursor is a plain
// value (total duration consumed so far), so replaying
//
//	out, next, err := talea.Interpret(t, cur, target)
//
// with the same inputs always yields the same outputs, and successive
// measures can be produced independently once their cursor values are
// known.
//
// Errors:
//   - ErrEmptyTalea      — nothing to cycle while duration is requested
//   - ErrBadDenominator  — denominator not a positive power of two
//   - ErrZeroCount       — a zero entry in counts/preamble/end counts
//   - ErrBadTarget       — negative target duration
//   - ErrBadEndCounts    — end counts outweigh the interpreted sequence
//   - ErrReadOnce        — a read-once talea asked to cycle
package talea
