// Package ieee754 decomposes binary64 values into exact
// significand/exponent forms.
//
// A finite double is:
//
//  value = fraction * 2 ^ exponent
//
// with fraction signed and either zero or in ±[1/2, 1). Decompose
// returns that pair. Scaled returns the equivalent exact integer form
// consumed by digit generation:
//
//  value = significand * 2 ^ exponent
//
// For normal values the significand is the full 53-bit mantissa
// (implicit bit restored) and the exponent is rebased by -53.
// Subnormal values keep their raw mantissa field and the fixed minimum
// exponent, so the significand width reflects the value's true
// precision and half-ulp boundaries derived from it stay exact.
//
// Zero decomposes to (0, 0) regardless of its sign bit. Infinities and
// NaN are outside the conversion contract and are rejected with the
// Unsupported class rather than producing a plausible-looking wrong
// result.
package ieee754
