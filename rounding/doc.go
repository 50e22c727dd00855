// Package rounding re-quantizes a digit sequence to a requested
// precision.
//
// A request names how precision is counted (fractional places or
// significant digits), how many digits to keep, and which of seven
// disciplines breaks ties:
//
//  Down      toward zero (truncate)
//  Up        away from zero
//  Ceiling   toward positive infinity
//  Floor     toward negative infinity
//  HalfUp    to nearest, half away from zero
//  HalfDown  to nearest, half toward zero
//  HalfEven  to nearest, half to the even digit
//
// The sequence is split at the cut position into a kept prefix and
// the dropped digits. The discipline decides, from the sign, the last
// kept digit, the first dropped (tie) digit, and whether anything
// nonzero follows it, whether the last kept digit is incremented. An
// increment carries backward through the kept digits; a carry past
// the most significant digit grows the sequence into the next power
// of ten (9.9999 at 0 places becomes 10).
//
// Results are normalized the same way the generator's output is: no
// trailing zeros, and a value rounded away entirely collapses to the
// zero sequence.
package rounding
