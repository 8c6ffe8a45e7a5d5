package amount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseDrops(t *testing.T) {
	a, err := ParseDrops("10000000")
	require.NoError(t, err)
	require.True(t, a.IsNative())
	require.Equal(t, "10", a.String())

	drops, err := a.Drops()
	require.NoError(t, err)
	require.Equal(t, int64(10_000_000), drops)
}

func TestParseWireForms(t *testing.T) {
	testcases := []struct {
		name     string
		raw      any
		native   bool
		value    string
		currency string
	}{
		{name: "drop string", raw: "1500000", native: true, value: "1.5", currency: "XRP"},
		{
			name:     "issued object",
			raw:      map[string]any{"value": "12.25", "currency": "USD", "issuer": "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"},
			value:    "12.25",
			currency: "USD",
		},
		{
			name:   "native spelled as object",
			raw:    map[string]any{"value": "3", "currency": "XRP"},
			native: true,
			value:  "3",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Parse(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.native, a.IsNative())
			require.Equal(t, tc.value, a.String())
			if tc.currency != "" {
				require.Equal(t, tc.currency, a.Currency)
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse(map[string]any{"currency": "USD"})
	require.Error(t, err)

	_, err = Parse(42)
	require.Error(t, err)

	_, err = ParseDrops("not-a-number")
	require.Error(t, err)
}

func TestAddSubSameAsset(t *testing.T) {
	a, err := NewIssued("1.5", "USD", "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B")
	require.NoError(t, err)
	b, err := NewIssued("0.25", "USD", "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B")
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "1.75", sum.String())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, "1.25", diff.String())
}

func TestAddRejectsAssetMismatch(t *testing.T) {
	usd, err := NewIssued("1", "USD", "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B")
	require.NoError(t, err)

	_, err = usd.Add(FromDrops(1))
	require.Error(t, err)
}

func TestIssuedPrecisionCap(t *testing.T) {
	// 16 significant digits must be narrowed to 15 on serialization.
	a, err := NewIssued("1.234567890123456", "USD", "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B")
	require.NoError(t, err)
	require.Equal(t, "1.23456789012346", a.String())

	// Values inside the cap are untouched.
	b, err := NewIssued("0.000001", "USD", "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B")
	require.NoError(t, err)
	require.Equal(t, "0.000001", b.String())
}

func TestNoFloatCorruption(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3 in decimal arithmetic.
	a, err := NewIssued("0.1", "USD", "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B")
	require.NoError(t, err)
	b, err := NewIssued("0.2", "USD", "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B")
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "0.3", sum.String())
}

func TestRateOrientation(t *testing.T) {
	usd := func(v string) Amount {
		a, err := NewIssued(v, "USD", "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B")
		require.NoError(t, err)
		return a
	}
	xrp := func(drops int64) Amount { return FromDrops(drops) }

	testcases := []struct {
		name string
		gets Amount
		pays Amount
		rate string
	}{
		// 5 USD cost 10 XRP: 2 XRP per USD either way around.
		{name: "native pays side", gets: usd("5"), pays: xrp(10_000_000), rate: "2"},
		{name: "native gets side", gets: xrp(10_000_000), pays: usd("5"), rate: "2"},
		{name: "issued both sides", gets: usd("4"), pays: usd("1"), rate: "0.25"},
		{name: "zero side", gets: usd("0"), pays: xrp(1), rate: "0"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			expected, err := decimal.NewFromString(tc.rate)
			require.NoError(t, err)
			require.True(t, expected.Equal(Rate(tc.gets, tc.pays)), "rate mismatch")
		})
	}
}
