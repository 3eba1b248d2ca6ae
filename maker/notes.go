package maker

import (
	"github.com/ostrev/tactus/score"
)

// MakeNotes fills each measure with a single sustained note: the
// measure's nominal duration spelled into tied written durations.
// 3/8 yields one dotted quarter; 5/8 a tied quarter-pair per the
// spelling options. The talea cursor is untouched.
func MakeNotes(sigs []score.TimeSignature, opts Options, st State) ([]score.Measure, State, error) {
	if err := validateSignatures(sigs); err != nil {
		return nil, st, err
	}
	measures := make([]score.Measure, len(sigs))
	for i, sig := range sigs {
		leaves, err := spellTied(sig.Duration(), opts.Spelling, false)
		if err != nil {
			return nil, st, err
		}
		elements := make([]score.Element, len(leaves))
		for j, l := range leaves {
			elements[j] = l
		}
		measures[i] = score.Measure{Signature: sig, Elements: elements}
	}
	if err := finish(measures, opts); err != nil {
		return nil, st, err
	}
	st.DurationsConsumed += len(sigs)
	st.LogicalTiesProduced += len(sigs)
	st.IncompleteLastNote = false
	return measures, st, nil
}
