// Package digits produces the shortest decimal digit sequence that
// round-trips to a given binary64 value.
//
// A sequence pairs decimal digits with a decimal point position:
//
//  value = 0.d1 d2 d3 ... * 10 ^ place
//
// For example 1.25 is the digits 1, 2, 5 with place 1 and 0.003 is the
// digit 3 with place -2.
//
// Generation follows Steele & White's free-format printing: the
// significand and exponent are spread into an exact rational state
//
//  (r, s, mPlus, mMinus)
//
// where r/s is the remainder still to be emitted and mPlus/mMinus are
// the distances to the neighboring representable doubles in the same
// scale. A digit is extracted per step and the loop stops as soon as
// any decimal within the neighbor gaps has been pinned down, so the
// output is the unique shortest sequence that parses back to the
// identical bit pattern. All arithmetic after the initial decimal
// exponent estimate is exact integer arithmetic.
//
// Sequences carry no trailing zeros and are never mutated after
// generation. Zero is the digit 0 with place 1.
package digits
