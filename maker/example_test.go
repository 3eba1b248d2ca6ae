package maker_test

import (
	"fmt"
	"strings"

	"github.com/ostrev/tactus/maker"
	"github.com/ostrev/tactus/score"
	"github.com/ostrev/tactus/talea"
)

// render prints one measure per line: the signature, then each leaf's
// written duration, rests prefixed "r" and ties suffixed "~".
func render(measures []score.Measure) string {
	var b strings.Builder
	for _, m := range measures {
		b.WriteString(m.Signature.String())
		b.WriteString(" |")
		for _, l := range score.Leaves(m.Elements) {
			b.WriteByte(' ')
			if l.Rest {
				b.WriteByte('r')
			}
			b.WriteString(l.Written.String())
			if l.TieNext {
				b.WriteByte('~')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Scenario:
//
//	Fill two 3/8 measures from the cycle [1, 2, 3] of eighths. The cycle
//	weight equals the run length, so every measure closes on a count
//	boundary and no ties appear.
//
// ExampleMake demonstrates the basic talea-to-measures pipeline.
func ExampleMake() {
	tl := talea.Talea{Counts: []int{1, 2, 3}, Denominator: 8}
	sigs := []score.TimeSignature{
		{Numerator: 3, Denominator: 8},
		{Numerator: 3, Denominator: 8},
	}

	measures, _, err := maker.Make(sigs, tl, maker.DefaultOptions(), maker.State{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(render(measures))
	// Output:
	// 3/8 | 1/8 1/4
	// 3/8 | 3/8
}

// Scenario:
//
//	A single seven-eighths count straddles the barline between a 3/8 and
//	a 4/8 measure. The default options tie the split halves back into
//	one logical note.
//
// ExampleMake_acrossBarlines demonstrates barline splitting and tying.
func ExampleMake_acrossBarlines() {
	tl := talea.Talea{Counts: []int{7}, Denominator: 8}
	sigs := []score.TimeSignature{
		{Numerator: 3, Denominator: 8},
		{Numerator: 4, Denominator: 8},
	}

	measures, st, err := maker.Make(sigs, tl, maker.DefaultOptions(), maker.State{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(render(measures))
	fmt.Println("logical notes:", st.LogicalTiesProduced)
	// Output:
	// 3/8 | 3/8~
	// 4/8 | 1/2
	// logical notes: 1
}

// Scenario:
//
//	The second measure is prolated by one extra quarter: five quarters
//	of talea material squeezed into the time of three, notated as a 5:3
//	tuplet. The first measure's note continues across the barline.
//
// ExampleMake_extraCounts demonstrates per-measure prolation.
func ExampleMake_extraCounts() {
	tl := talea.Talea{Counts: []int{3, -1, 1}, Denominator: 4}
	sigs := []score.TimeSignature{
		{Numerator: 3, Denominator: 8},
		{Numerator: 3, Denominator: 8},
	}
	opts := maker.DefaultOptions()
	opts.ExtraCounts = []int{0, 1}

	measures, _, err := maker.Make(sigs, tl, opts, maker.State{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, m := range measures {
		tup := m.Elements[0].(*score.Tuplet)
		fmt.Printf("%s ratio=%s label=%q\n", m.Signature, tup.Ratio, tup.Label)
	}
	fmt.Print(render(measures))
	// Output:
	// 3/8 ratio=1:1 label=""
	// 3/8 ratio=5:3 label="5:3"
	// 3/8 | 3/8~
	// 3/8 | 3/8 r1/4
}
