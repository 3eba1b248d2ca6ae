package duration

import "strconv"

// Ratio is a tuplet ratio n:m — n notated counts played in the time of
// m. A ratio is in lowest terms once Reduce has been applied;
// resolvers hand out reduced ratios unless explicitly marked otherwise.
type Ratio struct {
	N, M int
}

// Reduce returns the ratio divided by gcd(N, M).
func (r Ratio) Reduce() Ratio {
	g := gcd(int64(r.N), int64(r.M))
	return Ratio{r.N / int(g), r.M / int(g)}
}

// Trivial reports whether the ratio reduces to 1:1, i.e. the tuplet
// wrapper performs no scaling and draws no bracket.
func (r Ratio) Trivial() bool {
	return r.N == r.M
}

// Multiplier returns m/n, the factor applied to the notated duration
// of a tuplet's children to obtain their sounding duration.
func (r Ratio) Multiplier() Rational {
	return Must(int64(r.M), int64(r.N))
}

// String renders "n:m".
func (r Ratio) String() string {
	return strconv.Itoa(r.N) + ":" + strconv.Itoa(r.M)
}
