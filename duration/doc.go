// Package duration provides the exact rational arithmetic that every
// other tactus package is built on: reduced fractions, tuplet ratios,
// and the spelling of arbitrary rational durations as notatable
// (dotted power-of-two) written durations.
//
// ✨ Key features:
//   - Rational — immutable, always-normalized fraction value type;
//     safe as a map key and comparable with ==
//   - Ratio — tuplet ratio n:m with gcd reduction and 1:1 detection
//   - IsAssignable / Spell — decide whether a duration has a single
//     dotted power-of-two form, and decompose it when it does not
//   - Flags — beam/flag count of a written duration (1/8 → 1, 1/16 → 2)
//
// All arithmetic is exact: there is no floating point anywhere in this
// package, so duration sums and tuplet scalings never drift.
//
// ⚙️ Usage:
//
//	import "github.com/ostrev/tactus/duration"
//
//	r := duration.Must(5, 16)
//	parts, _ := duration.Spell(r, duration.Spelling{}, false)
//	// parts == [1/4 1/16]
//
// Errors:
//   - ErrZeroDenominator      — constructing n/0
//   - ErrUnsupportedDuration  — spelling a duration with no dotted
//     power-of-two decomposition (non power-of-two denominator)
package duration
