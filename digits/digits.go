package digits

import (
	"math"
	"math/big"

	"github.com/calebcase/dtoa/ieee754"
)

// Sequence is a normalized decimal digit sequence:
//
//  value = 0.d1 d2 d3 ... * 10 ^ Place
//
// Digits hold the values 0 through 9, most significant first, with no
// trailing zeros.
type Sequence struct {
	Place  int
	Digits []byte
}

// Zero returns the sequence for 0.0.
func Zero() Sequence {
	return Sequence{
		Place:  1,
		Digits: []byte{0},
	}
}

var (
	one      = big.NewInt(1)
	boundary = new(big.Int).SetUint64(ieee754.Boundary)
)

// Of returns the shortest sequence for the magnitude of f. The sign
// is ignored; NaN and the infinities are rejected.
func Of(f float64) (seq Sequence, err error) {
	defer Error.WrapP(&err)

	mant, exp, err := ieee754.Scaled(f)
	if err != nil {
		return Sequence{}, err
	}
	if mant.Sign() == 0 {
		return Zero(), nil
	}

	st := newState(mant, exp)
	est := estimate(math.Abs(f))
	st.scale(est)
	place := st.fixup(est)
	place = st.lowFixup(place)

	ds, place := normalize(st.generate(), place)

	return Sequence{
		Place:  place,
		Digits: ds,
	}, nil
}

// state is the scaled rational form of the value during generation.
// r/s is the not-yet-emitted remainder; mPlus and mMinus are the gaps
// to the next and previous representable doubles in the same scale.
type state struct {
	r      *big.Int
	s      *big.Int
	mPlus  *big.Int
	mMinus *big.Int

	// even is set from the integer significand: a value exactly
	// halfway to a neighbor rounds to the even significand, which
	// makes the boundary tests inclusive.
	even bool
}

// newState spreads the scaled significand and exponent into the
// initial rational state. A significand sitting exactly on a binary
// exponent boundary has a lower neighbor only half as far away as its
// upper one, so that case carries asymmetric gaps.
func newState(mant *big.Int, exp int) *state {
	st := &state{
		r:      new(big.Int).Set(mant),
		s:      new(big.Int),
		mPlus:  new(big.Int),
		mMinus: new(big.Int),
		even:   mant.Bit(0) == 0,
	}

	edge := exp > ieee754.MinExp && mant.Cmp(boundary) == 0

	switch {
	case exp >= 0 && !edge:
		st.r.Lsh(st.r, uint(exp)+1)
		st.s.SetInt64(2)
		st.mPlus.Lsh(one, uint(exp))
		st.mMinus.Set(st.mPlus)
	case exp >= 0:
		st.r.Lsh(st.r, uint(exp)+2)
		st.s.SetInt64(4)
		st.mPlus.Lsh(one, uint(exp)+1)
		st.mMinus.Lsh(one, uint(exp))
	case !edge:
		st.r.Lsh(st.r, 1)
		st.s.Lsh(one, uint(-exp)+1)
		st.mPlus.SetInt64(1)
		st.mMinus.SetInt64(1)
	default:
		st.r.Lsh(st.r, 2)
		st.s.Lsh(one, uint(-exp)+2)
		st.mPlus.SetInt64(2)
		st.mMinus.SetInt64(1)
	}

	return st
}

// estimate returns the decimal exponent of v computed in floating
// point. The epsilon nudges the ceiling down to favor a short result,
// but the log itself can come in far off for subnormal magnitudes, so
// the estimate is corrected exactly in both directions afterward.
func estimate(v float64) int {
	return int(math.Ceil(math.Log10(v) - 1e-10))
}

// scale aligns the state with the estimated decimal exponent.
func (st *state) scale(est int) {
	if est >= 0 {
		st.s.Mul(st.s, Pow10(est))
		return
	}

	p := Pow10(-est)
	st.r.Mul(st.r, p)
	st.mPlus.Mul(st.mPlus, p)
	st.mMinus.Mul(st.mMinus, p)
}

// fixup corrects an estimate that came in short: if the first digit
// would spill past the current power of ten, widen the denominator
// and bump the place instead.
func (st *state) fixup(est int) int {
	if st.high() {
		st.s.Mul(st.s, ten)
		return est + 1
	}
	return est
}

// lowFixup corrects an estimate that came in high, pulling the place
// back down while the leading digit would be zero. Each step is taken
// only when it cannot force early termination: the scaled remainder
// and its upper boundary must both stay below the denominator.
func (st *state) lowFixup(place int) int {
	for {
		r10 := new(big.Int).Mul(st.r, ten)
		if !st.below(r10) {
			return place
		}

		h10 := new(big.Int).Add(st.r, st.mPlus)
		h10.Mul(h10, ten)
		if !st.below(h10) {
			return place
		}

		st.r.Set(r10)
		st.mPlus.Mul(st.mPlus, ten)
		st.mMinus.Mul(st.mMinus, ten)
		place--
	}
}

// low reports whether the remainder has dropped within the lower gap.
func (st *state) low() bool {
	if st.even {
		return st.r.Cmp(st.mMinus) <= 0
	}
	return st.r.Cmp(st.mMinus) < 0
}

// high reports whether the remainder plus the upper gap reaches the
// denominator.
func (st *state) high() bool {
	t := new(big.Int).Add(st.r, st.mPlus)
	if st.even {
		return t.Cmp(st.s) >= 0
	}
	return t.Cmp(st.s) > 0
}

// below is the complement of high for an already scaled term.
func (st *state) below(t *big.Int) bool {
	if st.even {
		return t.Cmp(st.s) < 0
	}
	return t.Cmp(st.s) <= 0
}

// generate extracts digits until the remainder is pinned within both
// neighbor gaps. The final digit may be returned as 10 when the
// remainder rounds up; normalize resolves that carry.
func (st *state) generate() []byte {
	var ds []byte
	q := new(big.Int)

	for {
		st.r.Mul(st.r, ten)
		st.mPlus.Mul(st.mPlus, ten)
		st.mMinus.Mul(st.mMinus, ten)

		q.DivMod(st.r, st.s, st.r)
		d := byte(q.Int64())

		tc1 := st.low()
		tc2 := st.high()

		switch {
		case !tc1 && !tc2:
			ds = append(ds, d)
		case tc1 && !tc2:
			return append(ds, d)
		case !tc1 && tc2:
			return append(ds, d+1)
		default:
			// Within tolerance on both sides: emit whichever
			// of d and d+1 is nearer the true remainder.
			if new(big.Int).Lsh(st.r, 1).Cmp(st.s) < 0 {
				return append(ds, d)
			}
			return append(ds, d+1)
		}
	}
}

// normalize carries a final digit of 10 backward through the
// sequence, extending it (and the place) when the carry crosses the
// most significant digit, then strips trailing zeros.
func normalize(ds []byte, place int) ([]byte, int) {
	for i := len(ds) - 1; i > 0; i-- {
		if ds[i] > 9 {
			ds[i] -= 10
			ds[i-1]++
		}
	}

	if ds[0] > 9 {
		ds[0] -= 10
		ds = append([]byte{1}, ds...)
		place++
	}

	for len(ds) > 1 && ds[len(ds)-1] == 0 {
		ds = ds[:len(ds)-1]
	}

	return ds, place
}
