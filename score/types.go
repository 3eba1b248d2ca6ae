package score

import (
	"strconv"

	"github.com/ostrev/tactus/duration"
)

// TimeSignature is an immutable numerator/denominator pair. It is
// supplied by the caller and only ever read.
type TimeSignature struct {
	Numerator   int
	Denominator int
}

// Duration returns the nominal measure duration, numerator/denominator.
func (ts TimeSignature) Duration() duration.Rational {
	return duration.Must(int64(ts.Numerator), int64(ts.Denominator))
}

// String renders "n/d".
func (ts TimeSignature) String() string {
	return strconv.Itoa(ts.Numerator) + "/" + strconv.Itoa(ts.Denominator)
}

// Element is a node in a measure's tree: either *Leaf or *Tuplet.
type Element interface {
	// Duration is the sounding duration of the node, with tuplet
	// ratios applied recursively.
	Duration() duration.Rational
}

// Leaf is a single notated event. Written is an assignable (dotted
// power-of-two) value; Multiplier scales it for feathered figures and
// is 1 everywhere else. Leaves never own other leaves.
type Leaf struct {
	Written    duration.Rational
	Multiplier duration.Rational
	Rest       bool

	// Tie flags; rests never carry either.
	TiePrev bool
	TieNext bool

	// Beam counts toward the previous and next leaf, plus the stemlet
	// mark used for partial beaming next to rests.
	LeftBeams  int
	RightBeams int
	Stemlet    bool
}

// NewLeaf returns a leaf with unit multiplier.
func NewLeaf(written duration.Rational, rest bool) *Leaf {
	return &Leaf{Written: written, Multiplier: duration.One, Rest: rest}
}

// Duration returns Written × Multiplier.
func (l *Leaf) Duration() duration.Rational {
	return l.Written.Mul(l.Multiplier)
}

// Tuplet scales an ordered run of children by Ratio so that it fills a
// slot of a different nominal duration. A 1:1 tuplet is retained
// structurally so sibling measures keep a uniform tree shape, but it
// draws no bracket and carries no label.
type Tuplet struct {
	Ratio    duration.Ratio
	Children []Element

	// FullLengthBracket extends the bracket across the whole slot;
	// feathered figures set it.
	FullLengthBracket bool

	// Label is the display text resolved by the tuplet package:
	// "" when suppressed or trivial, "n:m", or a rhythm-duration label.
	Label string
}

// Trivial reports whether the tuplet performs no scaling.
func (t *Tuplet) Trivial() bool {
	return t.Ratio.Trivial()
}

// Duration returns the scaled duration: Σ children × M/N.
func (t *Tuplet) Duration() duration.Rational {
	sum := duration.Zero
	for _, c := range t.Children {
		sum = sum.Add(c.Duration())
	}
	return sum.Mul(t.Ratio.Multiplier())
}

// Measure is a time signature plus its top-level elements.
type Measure struct {
	Signature TimeSignature
	Elements  []Element
}

// Duration returns the notated duration of the measure's tree.
func (m Measure) Duration() duration.Rational {
	sum := duration.Zero
	for _, e := range m.Elements {
		sum = sum.Add(e.Duration())
	}
	return sum
}

// Leaves flattens the element tree in order.
func Leaves(elements []Element) []*Leaf {
	var out []*Leaf
	for _, e := range elements {
		switch n := e.(type) {
		case *Leaf:
			out = append(out, n)
		case *Tuplet:
			out = append(out, Leaves(n.Children)...)
		}
	}
	return out
}

// TieChain groups consecutive tied leaves into one logical sounding
// event. A chain never spans a rest; a rest is always a chain of one.
// Chains are a derived, non-owning view — see the tie package.
type TieChain struct {
	Leaves []*Leaf
}

// Duration returns the summed sounding duration of the chain.
func (c TieChain) Duration() duration.Rational {
	sum := duration.Zero
	for _, l := range c.Leaves {
		sum = sum.Add(l.Duration())
	}
	return sum
}

// Rest reports whether the chain is a (single) rest.
func (c TieChain) Rest() bool {
	return len(c.Leaves) > 0 && c.Leaves[0].Rest
}
