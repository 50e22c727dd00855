package dtoa

import (
	"math"
	"strconv"
	"strings"

	"github.com/calebcase/dtoa/digits"
	"github.com/calebcase/dtoa/rounding"
)

type options struct {
	decimals      int
	hasDecimals   bool
	scientific    int
	hasScientific bool
	compact       bool
	mode          rounding.Mode
}

// Option configures Format.
type Option func(*options)

// WithDecimals renders positionally with n fractional places.
func WithDecimals(n int) Option {
	return func(o *options) {
		o.decimals = n
		o.hasDecimals = true
	}
}

// WithScientific renders in scientific notation with n mantissa
// fraction digits.
func WithScientific(n int) Option {
	return func(o *options) {
		o.scientific = n
		o.hasScientific = true
	}
}

// WithCompact drops the zero padding that would otherwise fill the
// requested width. At least one fractional digit is always kept.
func WithCompact() Option {
	return func(o *options) {
		o.compact = true
	}
}

// WithRounding selects the tie-break discipline. The default is
// rounding.HalfEven.
func WithRounding(m rounding.Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// Format converts f to a decimal string. Without options the result
// is the shortest string that parses back to the identical bit
// pattern.
func Format(f float64, opts ...Option) (s string, err error) {
	defer Error.WrapP(&err)

	o := options{
		mode: rounding.HalfEven,
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.hasDecimals && o.hasScientific:
		return "", InvalidRequest.New("decimals and scientific are mutually exclusive")
	case o.hasDecimals && o.decimals < 0:
		return "", InvalidRequest.New("decimals: %d", o.decimals)
	case o.hasScientific && o.scientific < 0:
		return "", InvalidRequest.New("scientific: %d", o.scientific)
	}

	seq, err := digits.Of(f)
	if err != nil {
		return "", err
	}

	neg := math.Signbit(f)

	req := rounding.Request{
		Kind: rounding.None,
		Mode: o.mode,
	}
	switch {
	case o.hasDecimals:
		req.Kind = rounding.Places
		req.N = o.decimals
	case o.hasScientific:
		// The leading mantissa digit plus n fraction digits.
		req.Kind = rounding.Significant
		req.N = o.scientific + 1
	}

	seq, err = rounding.Round(seq, neg, req)
	if err != nil {
		return "", err
	}

	switch {
	case o.hasDecimals:
		return positional(neg, seq, o.decimals, o.compact), nil
	case o.hasScientific:
		return scientific(neg, seq, o.scientific, o.compact), nil
	}

	// Shortest form: positional while the decimal point lands in a
	// readable range, scientific outside it.
	if -6 < seq.Place && seq.Place <= 21 {
		return positional(neg, seq, 0, true), nil
	}
	return scientific(neg, seq, 0, true), nil
}

// positional assembles ddd.ddd with n fractional places (minimal when
// compact, but never fewer than one).
func positional(neg bool, seq digits.Sequence, n int, compact bool) string {
	var b strings.Builder

	if neg {
		b.WriteByte('-')
	}

	ds := seq.Digits
	p := seq.Place

	if p <= 0 {
		b.WriteByte('0')
	} else {
		for i := 0; i < p; i++ {
			if i < len(ds) {
				b.WriteByte('0' + ds[i])
			} else {
				b.WriteByte('0')
			}
		}
	}

	b.WriteByte('.')

	frac := 0
	for i := p; i < 0; i++ {
		b.WriteByte('0')
		frac++
	}
	for i := max(p, 0); i < len(ds); i++ {
		b.WriteByte('0' + ds[i])
		frac++
	}

	if !compact {
		for ; frac < n; frac++ {
			b.WriteByte('0')
		}
	}
	if frac == 0 {
		b.WriteByte('0')
	}

	return b.String()
}

// scientific assembles d.ddde±XX with n mantissa fraction digits
// (minimal when compact, but never fewer than one). The exponent
// carries a sign and at least two digits.
func scientific(neg bool, seq digits.Sequence, n int, compact bool) string {
	var b strings.Builder

	if neg {
		b.WriteByte('-')
	}

	ds := seq.Digits
	b.WriteByte('0' + ds[0])
	b.WriteByte('.')

	frac := 0
	for _, d := range ds[1:] {
		b.WriteByte('0' + d)
		frac++
	}

	if !compact {
		for ; frac < n; frac++ {
			b.WriteByte('0')
		}
	}
	if frac == 0 {
		b.WriteByte('0')
	}

	exp := seq.Place - 1

	b.WriteByte('e')
	if exp < 0 {
		b.WriteByte('-')
		exp = -exp
	} else {
		b.WriteByte('+')
	}

	es := strconv.Itoa(exp)
	if len(es) < 2 {
		b.WriteByte('0')
	}
	b.WriteString(es)

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
