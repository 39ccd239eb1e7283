package asset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"TokenLedger/internal/asset"
)

func TestNewSymbol(t *testing.T) {
	s, err := asset.NewSymbol("CUSD", 2)
	require.NoError(t, err)
	require.Equal(t, "2,CUSD", s.String())
	require.Equal(t, int64(100), s.Scale())

	for _, code := range []string{"", "cusd", "TOOLONGX", "US1D"} {
		_, err := asset.NewSymbol(code, 2)
		require.Error(t, err, "code %q should be rejected", code)
	}

	_, err = asset.NewSymbol("USDT", asset.MaxPrecision+1)
	require.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	cusd := asset.MustSymbol("CUSD", 2)

	cases := []struct {
		in    string
		units int64
	}{
		{"1.50", 150},
		{"0.01", 1},
		{"500", 50000},
		{" 2.00 ", 200},
		{"-3.25", -325},
	}
	for _, tc := range cases {
		a, err := asset.ParseAmount(tc.in, cusd)
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.units, a.Units, "input %q", tc.in)
		require.Equal(t, cusd, a.Symbol)
	}

	// Sub-precision digits are rejected, never rounded.
	_, err := asset.ParseAmount("1.005", cusd)
	require.Error(t, err)

	_, err = asset.ParseAmount("abc", cusd)
	require.Error(t, err)

	_, err = asset.ParseAmount("92233720368547758.08", cusd)
	require.Error(t, err, "overflow must be detected")
}

func TestAmountString(t *testing.T) {
	cusd := asset.MustSymbol("CUSD", 2)
	usdt := asset.MustSymbol("USDT", 4)

	require.Equal(t, "1.50 CUSD", asset.NewAmount(150, cusd).String())
	require.Equal(t, "0.0001 USDT", asset.NewAmount(1, usdt).String())
	require.Equal(t, "-2.00 CUSD", asset.NewAmount(-200, cusd).String())
}

func TestRescaleExact(t *testing.T) {
	cusd := asset.MustSymbol("CUSD", 2)
	usdt := asset.MustSymbol("USDT", 4)

	// 1.50 CUSD at precision 2 becomes exactly 1.5000 USDT at precision 4.
	out, err := asset.Rescale(asset.NewAmount(150, cusd), usdt)
	require.NoError(t, err)
	require.Equal(t, int64(15000), out.Units)
	require.Equal(t, usdt, out.Symbol)

	// Equal precision is the identity.
	same, err := asset.Rescale(asset.NewAmount(150, cusd), asset.MustSymbol("CUSDX", 2))
	require.NoError(t, err)
	require.Equal(t, int64(150), same.Units)
}

func TestRescaleRefusesLoss(t *testing.T) {
	cusd := asset.MustSymbol("CUSD", 2)
	usdt := asset.MustSymbol("USDT", 4)

	_, err := asset.Rescale(asset.NewAmount(15000, usdt), cusd)
	require.Error(t, err)
}

func TestRescaleOverflow(t *testing.T) {
	cusd := asset.MustSymbol("CUSD", 2)
	usdt := asset.MustSymbol("USDT", 4)

	_, err := asset.Rescale(asset.NewAmount(math.MaxInt64/10, cusd), usdt)
	require.Error(t, err)
}

func TestScaleFactor(t *testing.T) {
	cusd := asset.MustSymbol("CUSD", 2)
	usdt := asset.MustSymbol("USDT", 4)

	factor, err := asset.ScaleFactor(cusd, usdt)
	require.NoError(t, err)
	require.Equal(t, int64(100), factor)

	_, err = asset.ScaleFactor(usdt, cusd)
	require.Error(t, err)
}
