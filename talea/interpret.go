package talea

import "github.com/ostrev/tactus/duration"

// Cursor is the cyclic position of a talea within one generation run:
// the total absolute duration consumed by previous interpretation
// steps. The zero value starts a run. Cursors only ever grow; the
// caller passes the returned cursor into the next step, so replay is
// deterministic and no hidden state exists.
type Cursor struct {
	Consumed duration.Rational
}

// stream walks the preamble once and then the counts cyclically,
// yielding signed counts. ok is false when there is nothing left to
// yield (empty counts after an exhausted preamble).
type stream struct {
	t   Talea
	pre int // next preamble index
	idx int // next cycle index
}

func (s *stream) next() (int, bool) {
	if s.pre < len(s.t.Preamble) {
		c := s.t.Preamble[s.pre]
		s.pre++
		return c, true
	}
	if len(s.t.Counts) == 0 {
		return 0, false
	}
	c := s.t.Counts[s.idx]
	s.idx = (s.idx + 1) % len(s.t.Counts)
	return c, true
}

// Interpret expands t from cur into a flat sequence of signed exact
// durations totalling exactly target. The final duration is truncated
// to fit, keeping the sign of the truncated count. The returned cursor
// is cur advanced by target; an interpretation that ends inside a count
// resumes mid-count on the next call.
//
// Errors: ErrBadTarget, ErrBadDenominator, ErrZeroCount, ErrEmptyTalea,
// ErrBadEndCounts, ErrReadOnce. A zero target yields an empty sequence
// and an unchanged cursor.
func Interpret(t Talea, cur Cursor, target duration.Rational) ([]duration.Rational, Cursor, error) {
	if target.Sign() < 0 {
		return nil, cur, ErrBadTarget
	}
	if target.IsZero() {
		return nil, cur, nil
	}
	if err := t.validate(); err != nil {
		return nil, cur, err
	}
	if len(t.Counts) == 0 && len(t.Preamble) == 0 {
		return nil, cur, ErrEmptyTalea
	}

	den := duration.Must(1, int64(t.Denominator))
	if t.ReadOnce {
		// One pass over preamble plus counts must cover everything
		// consumed so far and requested now.
		capacity := den.Mul(duration.FromInt(int64(weight(t.Preamble) + weight(t.Counts))))
		if capacity.Less(cur.Consumed.Add(target)) {
			return nil, cur, ErrReadOnce
		}
	}
	s := &stream{t: t}

	// Skip the already-consumed weight, possibly landing inside a count;
	// the remainder of that count is the first value emitted below.
	skip := cur.Consumed
	var carry duration.Rational // signed remainder of a split count
	for skip.Sign() > 0 {
		c, ok := s.next()
		if !ok {
			return nil, cur, ErrEmptyTalea
		}
		mag := den.Mul(duration.FromInt(int64(abs(c))))
		if mag.Cmp(skip) <= 0 {
			skip = skip.Sub(mag)
			continue
		}
		carry = mag.Sub(skip)
		if c < 0 {
			carry = carry.Neg()
		}
		skip = duration.Zero
	}

	var out []duration.Rational
	total := duration.Zero
	emit := func(v duration.Rational) {
		remain := target.Sub(total)
		if v.Abs().Cmp(remain) > 0 {
			// Trim overshoot; the truncated tail stays unconsumed.
			if v.Sign() < 0 {
				v = remain.Neg()
			} else {
				v = remain
			}
		}
		out = append(out, v)
		total = total.Add(v.Abs())
	}
	if !carry.IsZero() {
		emit(carry)
	}
	for total.Less(target) {
		c, ok := s.next()
		if !ok {
			return nil, cur, ErrEmptyTalea
		}
		v := den.Mul(duration.FromInt(int64(c)))
		emit(v)
	}

	if len(t.EndCounts) > 0 {
		var err error
		out, err = applyEndCounts(out, t.EndCounts, den)
		if err != nil {
			return nil, cur, err
		}
	}
	return out, Cursor{Consumed: cur.Consumed.Add(target)}, nil
}

// applyEndCounts replaces the trailing weight of out with the end
// counts, splitting the duration that straddles the replacement
// boundary. Total weight is preserved exactly.
func applyEndCounts(out []duration.Rational, endCounts []int, den duration.Rational) ([]duration.Rational, error) {
	need := duration.Zero
	for _, e := range endCounts {
		need = need.Add(den.Mul(duration.FromInt(int64(abs(e)))))
	}
	cut := len(out)
	for need.Sign() > 0 {
		if cut == 0 {
			return nil, ErrBadEndCounts
		}
		mag := out[cut-1].Abs()
		if mag.Cmp(need) <= 0 {
			need = need.Sub(mag)
			cut--
			continue
		}
		kept := mag.Sub(need)
		if out[cut-1].Sign() < 0 {
			kept = kept.Neg()
		}
		out[cut-1] = kept
		need = duration.Zero
	}
	out = out[:cut]
	for _, e := range endCounts {
		out = append(out, den.Mul(duration.FromInt(int64(e))))
	}
	return out, nil
}

// Aligned reports whether cur sits exactly on a count boundary of t.
// The generation pipeline uses it to detect an incomplete last note:
// a run that stops mid-count leaves a sounding event to be completed
// by the next run.
func Aligned(t Talea, cur Cursor) bool {
	if err := t.validate(); err != nil {
		return false
	}
	den := duration.Must(1, int64(t.Denominator))
	c := cur.Consumed
	if c.Sign() <= 0 {
		return true
	}
	for _, p := range t.Preamble {
		mag := den.Mul(duration.FromInt(int64(abs(p))))
		if c.Cmp(mag) < 0 {
			return false
		}
		c = c.Sub(mag)
		if c.IsZero() {
			return true
		}
	}
	if len(t.Counts) == 0 {
		return c.IsZero()
	}
	period := den.Mul(duration.FromInt(int64(t.Period())))
	// Reduce modulo one cycle.
	k := c.Div(period)
	c = c.Sub(period.Mul(duration.FromInt(k.Num() / k.Den())))
	if c.IsZero() {
		return true
	}
	for _, n := range t.Counts {
		mag := den.Mul(duration.FromInt(int64(abs(n))))
		if c.Cmp(mag) < 0 {
			return false
		}
		c = c.Sub(mag)
		if c.IsZero() {
			return true
		}
	}
	return c.IsZero()
}
