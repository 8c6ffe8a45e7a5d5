package fields

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLtx/internal/ledger/amount"
)

func TestCoerceUInt32(t *testing.T) {
	v, err := Coerce(TypeUInt32, float64(42))
	require.NoError(t, err)
	require.Equal(t, uint32(42), v)

	_, err = Coerce(TypeUInt32, float64(-1))
	require.Error(t, err)
	_, err = Coerce(TypeUInt32, float64(1.5))
	require.Error(t, err)
	_, err = Coerce(TypeUInt32, "42")
	require.Error(t, err)
}

func TestCoerceHash256(t *testing.T) {
	h := "FBEF7D48F4DE2D2B1857B0E3F7F4699C4619FC7A5F4CB0625B7DAE5D0E32C17C"
	v, err := Coerce(TypeHash256, h)
	require.NoError(t, err)
	require.Equal(t, h, v)

	_, err = Coerce(TypeHash256, h[:62])
	require.Error(t, err)
	_, err = Coerce(TypeHash256, "ZZ"+h[2:])
	require.Error(t, err)
}

func TestCoerceAccountID(t *testing.T) {
	v, err := Coerce(TypeAccountID, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	require.NoError(t, err)
	require.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", v)

	_, err = Coerce(TypeAccountID, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyT1")
	require.Error(t, err)
}

func TestCoerceAmount(t *testing.T) {
	v, err := Coerce(TypeAmount, "10000000")
	require.NoError(t, err)
	a, ok := v.(amount.Amount)
	require.True(t, ok)
	require.True(t, a.IsNative())
	require.Equal(t, "10", a.String())
}

func TestRippleTimeRoundTrip(t *testing.T) {
	decoded, err := RippleTime.Decode(uint32(0))
	require.NoError(t, err)
	require.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), decoded)

	// An arbitrary ledger close time round-trips exactly.
	const ledgerSeconds = uint32(745444801)
	ts, err := RippleTime.Decode(ledgerSeconds)
	require.NoError(t, err)
	back, err := RippleTime.Encode(ts)
	require.NoError(t, err)
	require.Equal(t, ledgerSeconds, back)
}

func TestRippleTimeRejectsPreEpoch(t *testing.T) {
	_, err := RippleTime.Encode(time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC))
	require.Error(t, err)
}
