package duration

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrZeroDenominator indicates an attempt to construct a rational
	// with denominator zero.
	ErrZeroDenominator = errors.New("duration: zero denominator")

	// ErrUnsupportedDuration indicates a duration that has no dotted
	// power-of-two decomposition (its denominator is not a power of two).
	ErrUnsupportedDuration = errors.New("duration: no dotted power-of-two form")
)

// Rational is an exact fraction. The zero value is 0. Rationals are
// always stored reduced with a positive denominator, so two equal
// values are == to each other and usable as map keys.
type Rational struct {
	num, den int64
}

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Rational{0, 1}
	One  = Rational{1, 1}
)

// New returns the reduced rational n/d.
// Returns ErrZeroDenominator when d == 0.
func New(n, d int64) (Rational, error) {
	if d == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return reduced(n, d), nil
}

// Must is like New but panics on a zero denominator. Use it for
// compile-time-constant fractions; runtime input goes through New.
func Must(n, d int64) Rational {
	r, err := New(n, d)
	if err != nil {
		panic(fmt.Sprintf("duration: Must(%d, %d): %v", n, d, err))
	}
	return r
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{n, 1}
}

func reduced(n, d int64) Rational {
	if d < 0 {
		n, d = -n, -d
	}
	if n == 0 {
		return Rational{0, 1}
	}
	g := gcd(abs64(n), d)
	return Rational{n / g, d / g}
}

// canon maps the uninitialized zero struct onto the canonical 0/1 so
// that the zero value of Rational behaves as 0 in every operation.
func (r Rational) canon() Rational {
	if r.den == 0 {
		return Rational{0, 1}
	}
	return r
}

// Num returns the reduced numerator (sign lives here).
func (r Rational) Num() int64 { return r.canon().num }

// Den returns the reduced, always-positive denominator.
func (r Rational) Den() int64 { return r.canon().den }

// Add returns r + b.
func (r Rational) Add(b Rational) Rational {
	r, b = r.canon(), b.canon()
	return reduced(r.num*b.den+b.num*r.den, r.den*b.den)
}

// Sub returns r − b.
func (r Rational) Sub(b Rational) Rational {
	return r.Add(b.Neg())
}

// Mul returns r × b.
func (r Rational) Mul(b Rational) Rational {
	r, b = r.canon(), b.canon()
	return reduced(r.num*b.num, r.den*b.den)
}

// Div returns r ÷ b. Panics when b is zero; dividing by a duration of
// zero is always a programmer error in this domain.
func (r Rational) Div(b Rational) Rational {
	r, b = r.canon(), b.canon()
	if b.num == 0 {
		panic("duration: division by zero")
	}
	return reduced(r.num*b.den, r.den*b.num)
}

// Neg returns −r.
func (r Rational) Neg() Rational {
	r = r.canon()
	return Rational{-r.num, r.den}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	r = r.canon()
	return Rational{abs64(r.num), r.den}
}

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	r = r.canon()
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.canon().num == 0 }

// Cmp compares r and b: -1 if r < b, 0 if equal, +1 if r > b.
func (r Rational) Cmp(b Rational) int {
	r, b = r.canon(), b.canon()
	lhs, rhs := r.num*b.den, b.num*r.den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Less reports whether r < b.
func (r Rational) Less(b Rational) bool { return r.Cmp(b) < 0 }

// Float64 returns the nearest float64. Only feather's root
// approximation looks at this; exact pipelines never should.
func (r Rational) Float64() float64 {
	r = r.canon()
	return float64(r.num) / float64(r.den)
}

// String renders "n/d", or just "n" for integers.
func (r Rational) String() string {
	r = r.canon()
	if r.den == 1 {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// lcm returns the least common multiple of two positive integers.
func lcm(a, b int64) int64 {
	return a / gcd(a, b) * b
}

// LCM returns the least common multiple of the given positive integers.
// Returns 1 for an empty argument list.
func LCM(ns ...int64) int64 {
	out := int64(1)
	for _, n := range ns {
		out = lcm(out, n)
	}
	return out
}

// IsPowerOfTwo reports whether n is a positive integer power of two.
func IsPowerOfTwo(n int64) bool {
	return n > 0 && n&(n-1) == 0
}
