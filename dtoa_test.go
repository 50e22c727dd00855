package dtoa_test

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/dtoa"
	"github.com/calebcase/dtoa/ieee754"
	"github.com/calebcase/dtoa/rounding"
)

func TestFormat(t *testing.T) {
	type TC struct {
		Name    string
		Value   float64
		Options []dtoa.Option
		Output  string
		Mark    error
	}

	tcs := []TC{
		// Shortest form.
		{
			Name:   "zero",
			Value:  0.0,
			Output: "0.0",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "negative zero",
			Value:  math.Copysign(0, -1),
			Output: "-0.0",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "one",
			Value:  1.0,
			Output: "1.0",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "tenth",
			Value:  0.1,
			Output: "0.1",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "hundred",
			Value:  100.0,
			Output: "100.0",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "negative",
			Value:  -1.5,
			Output: "-1.5",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "thousandth",
			Value:  0.001,
			Output: "0.001",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "millionth stays positional",
			Value:  1e-6,
			Output: "0.000001",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "ten millionth goes scientific",
			Value:  1e-7,
			Output: "1.0e-07",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "e20 stays positional",
			Value:  1e20,
			Output: "100000000000000000000.0",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "e21 goes scientific",
			Value:  1e21,
			Output: "1.0e+21",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "smallest subnormal",
			Value:  math.Float64frombits(1),
			Output: "5.0e-324",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "largest normal",
			Value:  math.MaxFloat64,
			Output: "1.7976931348623157e+308",
			Mark:   oops.New("unexpected"),
		},

		// Fractional places.
		{
			Name:    "1.225 half even",
			Value:   1.225,
			Options: []dtoa.Option{dtoa.WithDecimals(2)},
			Output:  "1.22",
			Mark:    oops.New("unexpected"),
		},
		{
			Name: "1.225 half up",
			Value: 1.225,
			Options: []dtoa.Option{
				dtoa.WithDecimals(2),
				dtoa.WithRounding(rounding.HalfUp),
			},
			Output: "1.23",
			Mark:   oops.New("unexpected"),
		},
		{
			Name: "1.9999 ceiling",
			Value: 1.9999,
			Options: []dtoa.Option{
				dtoa.WithDecimals(0),
				dtoa.WithRounding(rounding.Ceiling),
			},
			Output: "2.0",
			Mark:   oops.New("unexpected"),
		},
		{
			Name: "9.9999 ceiling",
			Value: 9.9999,
			Options: []dtoa.Option{
				dtoa.WithDecimals(0),
				dtoa.WithRounding(rounding.Ceiling),
			},
			Output: "10.0",
			Mark:   oops.New("unexpected"),
		},
		{
			Name: "999.9999 ceiling",
			Value: 999.9999,
			Options: []dtoa.Option{
				dtoa.WithDecimals(0),
				dtoa.WithRounding(rounding.Ceiling),
			},
			Output: "1000.0",
			Mark:   oops.New("unexpected"),
		},
		{
			Name: "-1.5 ceiling",
			Value: -1.5,
			Options: []dtoa.Option{
				dtoa.WithDecimals(0),
				dtoa.WithRounding(rounding.Ceiling),
			},
			Output: "-1.0",
			Mark:   oops.New("unexpected"),
		},
		{
			Name: "-1.5 floor",
			Value: -1.5,
			Options: []dtoa.Option{
				dtoa.WithDecimals(0),
				dtoa.WithRounding(rounding.Floor),
			},
			Output: "-2.0",
			Mark:   oops.New("unexpected"),
		},
		{
			Name: "0.5 half up",
			Value: 0.5,
			Options: []dtoa.Option{
				dtoa.WithDecimals(0),
				dtoa.WithRounding(rounding.HalfUp),
			},
			Output: "1.0",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:    "padded to width",
			Value:   1.5,
			Options: []dtoa.Option{dtoa.WithDecimals(3)},
			Output:  "1.500",
			Mark:    oops.New("unexpected"),
		},
		{
			Name: "compact trims padding",
			Value: 1.5,
			Options: []dtoa.Option{
				dtoa.WithDecimals(3),
				dtoa.WithCompact(),
			},
			Output: "1.5",
			Mark:   oops.New("unexpected"),
		},
		{
			Name: "compact keeps one fraction digit",
			Value: 2.0,
			Options: []dtoa.Option{
				dtoa.WithDecimals(3),
				dtoa.WithCompact(),
			},
			Output: "2.0",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:    "zero padded",
			Value:   0.0,
			Options: []dtoa.Option{dtoa.WithDecimals(2)},
			Output:  "0.00",
			Mark:    oops.New("unexpected"),
		},

		// Scientific.
		{
			Name:    "scientific padded",
			Value:   1500.0,
			Options: []dtoa.Option{dtoa.WithScientific(3)},
			Output:  "1.500e+03",
			Mark:    oops.New("unexpected"),
		},
		{
			Name: "scientific compact",
			Value: 1500.0,
			Options: []dtoa.Option{
				dtoa.WithScientific(3),
				dtoa.WithCompact(),
			},
			Output: "1.5e+03",
			Mark:   oops.New("unexpected"),
		},
		{
			Name: "scientific carry into next power",
			Value: 9.99,
			Options: []dtoa.Option{
				dtoa.WithScientific(1),
				dtoa.WithRounding(rounding.HalfUp),
			},
			Output: "1.0e+01",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:    "scientific small",
			Value:   0.0012345,
			Options: []dtoa.Option{dtoa.WithScientific(2)},
			Output:  "1.23e-03",
			Mark:    oops.New("unexpected"),
		},
		{
			Name:    "scientific zero",
			Value:   0.0,
			Options: []dtoa.Option{dtoa.WithScientific(2)},
			Output:  "0.00e+00",
			Mark:    oops.New("unexpected"),
		},
		{
			Name:    "scientific subnormal",
			Value:   math.Float64frombits(1),
			Options: []dtoa.Option{dtoa.WithScientific(0)},
			Output:  "5.0e-324",
			Mark:    oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Name), func(t *testing.T) {
			s, err := dtoa.Format(tc.Value, tc.Options...)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, s, tc.Mark)
		})
	}
}

func TestFormatErrors(t *testing.T) {
	type TC struct {
		Name    string
		Options []dtoa.Option
		Mark    error
	}

	t.Run("unsupported values", func(t *testing.T) {
		for i, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			t.Run(fmt.Sprintf("[%d]%x", i, math.Float64bits(f)), func(t *testing.T) {
				_, err := dtoa.Format(f)
				require.Error(t, err)
				require.True(t, ieee754.Unsupported.Has(err))
			})
		}
	})

	t.Run("invalid requests", func(t *testing.T) {
		tcs := []TC{
			{
				Name: "decimals and scientific together",
				Options: []dtoa.Option{
					dtoa.WithDecimals(2),
					dtoa.WithScientific(2),
				},
				Mark: oops.New("unexpected"),
			},
			{
				Name:    "negative decimals",
				Options: []dtoa.Option{dtoa.WithDecimals(-1)},
				Mark:    oops.New("unexpected"),
			},
			{
				Name:    "negative scientific",
				Options: []dtoa.Option{dtoa.WithScientific(-1)},
				Mark:    oops.New("unexpected"),
			},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%s", i, tc.Name), func(t *testing.T) {
				_, err := dtoa.Format(1.5, tc.Options...)
				require.Error(t, err, tc.Mark)
				require.True(t, dtoa.InvalidRequest.Has(err), tc.Mark)
			})
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := dtoa.Format(1.5,
			dtoa.WithDecimals(2),
			dtoa.WithRounding(rounding.Mode(99)),
		)
		require.Error(t, err)
		require.True(t, rounding.Invalid.Has(err))
	})
}

// TestFormatRoundTrip checks that the default output parses back to
// the identical bit pattern across random doubles.
func TestFormatRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 0; n < 10000; n++ {
		bits := rng.Uint64()
		f := math.Float64frombits(bits)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}

		s, err := dtoa.Format(f)
		require.NoError(t, err)

		got, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, "s=%q", s)
		require.Equal(t, bits, math.Float64bits(got), "s=%q", s)
	}
}

func BenchmarkFormat(b *testing.B) {
	for n := 0; n < b.N; n++ {
		_, err := dtoa.Format(3.141592653589793)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkFormatDecimals(b *testing.B) {
	for n := 0; n < b.N; n++ {
		_, err := dtoa.Format(3.141592653589793, dtoa.WithDecimals(4))
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
