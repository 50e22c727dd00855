package ieee754

import (
	"math"
	"math/big"
	"math/bits"
)

// Field layout of a binary64 value.
const (
	mantBits = 52
	expBits  = 11
	expMask  = 1<<expBits - 1
	mantMask = uint64(1)<<mantBits - 1

	// bias places the decomposed fraction in [1/2, 1) rather than
	// the usual [1, 2).
	bias = 1022
)

// Boundary is the scaled significand of a value sitting exactly on a
// binary exponent boundary (2^52). Such a value's lower neighbor is
// only half an ulp away, except at MinExp.
const Boundary = uint64(1) << mantBits

// MinExp is the scaled exponent shared by every subnormal and by the
// smallest normal (2^-1022 = 2^52 * 2^-1074).
const MinExp = -(bias + mantBits)

// Decompose splits f into a signed fraction in ±[1/2, 1) (or exactly
// zero) and a binary exponent such that f = fraction * 2^exponent.
// NaN and the infinities are rejected with Unsupported.
func Decompose(f float64) (frac float64, exp int, err error) {
	defer Error.WrapP(&err)

	b := math.Float64bits(f)
	sign := b >> (expBits + mantBits)
	se := int(b>>mantBits) & expMask
	m := b & mantMask

	switch {
	case se == expMask:
		if m != 0 {
			return 0, 0, Unsupported.New("NaN")
		}
		return 0, 0, Unsupported.New("infinity")
	case se == 0 && m == 0:
		return 0, 0, nil
	case se == 0:
		// Subnormal: f = m * 2^-1074. The exponent comes from the
		// bit length of the raw mantissa field; the fraction is the
		// mantissa re-biased into a normalized double.
		n := bits.Len64(m)
		shift := uint(mantBits + 1 - n)
		frac = math.Float64frombits(sign<<63 | uint64(bias)<<mantBits | (m<<shift)&mantMask)
		return frac, n - (bias + mantBits), nil
	default:
		frac = math.Float64frombits(sign<<63 | uint64(bias)<<mantBits | m)
		return frac, se - bias, nil
	}
}

// Scaled returns the exact integer significand and exponent consumed
// by digit generation: f = significand * 2^exponent, sign stripped.
//
// Normals yield a 53-bit significand in [2^52, 2^53) with the exponent
// rebased by -53. Subnormals yield the raw mantissa field with the
// exponent pinned at MinExp, preserving their true (reduced) precision.
// Zero yields (0, 0).
func Scaled(f float64) (mant *big.Int, exp int, err error) {
	defer Error.WrapP(&err)

	b := math.Float64bits(f)
	se := int(b>>mantBits) & expMask
	m := b & mantMask

	switch {
	case se == expMask:
		if m != 0 {
			return nil, 0, Unsupported.New("NaN")
		}
		return nil, 0, Unsupported.New("infinity")
	case se == 0 && m == 0:
		return new(big.Int), 0, nil
	case se == 0:
		return new(big.Int).SetUint64(m), MinExp, nil
	default:
		return new(big.Int).SetUint64(m | Boundary), se - bias - 53, nil
	}
}
