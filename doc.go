// Package dtoa converts binary64 floating point values into decimal
// strings.
//
// By default the output is the shortest decimal that parses back to
// the identical bit pattern (free-format printing):
//
//  s, err := dtoa.Format(0.1)
//  // s == "0.1"
//
// The precision and notation are configurable:
//
//  dtoa.Format(1.225, dtoa.WithDecimals(2))                  // "1.22"
//  dtoa.Format(1.225, dtoa.WithDecimals(2),
//          dtoa.WithRounding(rounding.HalfUp))               // "1.23"
//  dtoa.Format(1500.0, dtoa.WithScientific(3))               // "1.500e+03"
//  dtoa.Format(1500.0, dtoa.WithScientific(3),
//          dtoa.WithCompact())                               // "1.5e+03"
//
// WithDecimals counts fractional places and renders positionally;
// WithScientific counts mantissa fraction digits and renders in
// scientific notation. The two are mutually exclusive. WithCompact
// drops the zero padding that would otherwise fill the requested
// width. Every rendering keeps at least one fractional digit, so an
// integral result reads "2.0" rather than "2".
//
// Shortest-form output is positional while the decimal point lands
// within a readable range and scientific outside it, so 0.001 prints
// positionally while 5e-324 prints as "5.0e-324".
//
// The pipeline underneath is exposed for callers that want the digits
// rather than a string: ieee754 decomposes the value, digits generates
// the shortest digit sequence, and rounding re-quantizes it.
//
// NaN and the infinities have no decimal representation and are
// rejected. Invalid option combinations are rejected with the
// InvalidRequest class before any conversion work happens.
package dtoa
