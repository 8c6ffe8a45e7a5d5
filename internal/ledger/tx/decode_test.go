package tx

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLtx/internal/ledger/meta"
)

const (
	senderAddr   = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	receiverAddr = "rPMh7Pi9ct699iZUTWaytJUoHcJ7cgyziK"
	issuerAddr   = "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"

	// X-address embedding senderAddr's account ID with tag 1337.
	senderXAddr = "XVPcpSm47b1CZkf5AkKM9a84dQHe3mTA8pWsTKDPQiWzQTT"
)

func mustDecode(t *testing.T, rawTx, rawMeta string) *Record {
	t.Helper()
	var m []byte
	if rawMeta != "" {
		m = []byte(rawMeta)
	}
	r, err := Decode([]byte(rawTx), m)
	require.NoError(t, err)
	return r
}

func TestDecodePayment(t *testing.T) {
	r := mustDecode(t, `{
		"TransactionType": "Payment",
		"Account": "`+senderAddr+`",
		"Destination": "`+receiverAddr+`",
		"DestinationTag": 7,
		"Amount": "10000000",
		"Fee": "12",
		"Sequence": 42,
		"Flags": 2147483648
	}`, "")

	require.Equal(t, KindPayment, r.Kind())
	require.Equal(t, CategoryGenuine, r.Category())

	sender, ok := r.Account()
	require.True(t, ok)
	require.Equal(t, senderAddr, sender.Address)
	require.Nil(t, sender.Tag)

	dest, ok := r.Destination()
	require.True(t, ok)
	require.Equal(t, receiverAddr, dest.Address)
	require.NotNil(t, dest.Tag)
	require.Equal(t, uint32(7), *dest.Tag)

	amt, err := r.RequireAmount("Amount")
	require.NoError(t, err)
	require.True(t, amt.IsNative())
	require.Equal(t, "10", amt.String())

	fee, ok := r.Fee()
	require.True(t, ok)
	drops, err := fee.Drops()
	require.NoError(t, err)
	require.Equal(t, int64(12), drops)

	seq, err := r.RequireUInt32("Sequence")
	require.NoError(t, err)
	require.Equal(t, uint32(42), seq)

	require.True(t, r.HasFlag(0x80000000))
	require.False(t, r.HasFlag(0x00010000))
}

func TestDecodePackedDestinationTag(t *testing.T) {
	// The tag packed into the address form wins over the side channel.
	r := mustDecode(t, `{
		"TransactionType": "Payment",
		"Account": "`+receiverAddr+`",
		"Destination": "`+senderXAddr+`",
		"DestinationTag": 99,
		"Amount": "1"
	}`, "")

	dest, ok := r.Destination()
	require.True(t, ok)
	require.NotNil(t, dest.Tag)
	require.Equal(t, uint32(1337), *dest.Tag)
}

func TestDecodeIssuedAmount(t *testing.T) {
	r := mustDecode(t, `{
		"TransactionType": "TrustSet",
		"Account": "`+senderAddr+`",
		"LimitAmount": {"value": "100", "currency": "USD", "issuer": "`+issuerAddr+`"}
	}`, "")

	limit, err := r.RequireAmount("LimitAmount")
	require.NoError(t, err)
	require.False(t, limit.IsNative())
	require.Equal(t, "USD", limit.Currency)
	require.Equal(t, issuerAddr, limit.Issuer)
	require.Equal(t, "100", limit.String())
}

func TestDecodeRequiredFieldAbsent(t *testing.T) {
	_, err := Decode([]byte(`{
		"TransactionType": "Payment",
		"Account": "`+senderAddr+`",
		"Destination": "`+receiverAddr+`"
	}`), nil)

	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, "Payment", malformed.Kind)
	require.Equal(t, "Amount", malformed.Field)
}

func TestDecodeBadFieldValue(t *testing.T) {
	testcases := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "amount as number",
			doc:   `{"TransactionType": "Payment", "Account": "` + senderAddr + `", "Destination": "` + receiverAddr + `", "Amount": 10}`,
			field: "Amount",
		},
		{
			name:  "bad destination address",
			doc:   `{"TransactionType": "Payment", "Account": "` + senderAddr + `", "Destination": "not-an-address", "Amount": "1"}`,
			field: "Destination",
		},
		{
			name:  "fractional sequence",
			doc:   `{"TransactionType": "Payment", "Account": "` + senderAddr + `", "Destination": "` + receiverAddr + `", "Amount": "1", "Sequence": 1.5}`,
			field: "Sequence",
		},
		{
			name:  "short check id",
			doc:   `{"TransactionType": "CheckCancel", "Account": "` + senderAddr + `", "CheckID": "ABCD"}`,
			field: "CheckID",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.doc), nil)
			var malformed *MalformedRecordError
			require.ErrorAs(t, err, &malformed)
			require.Equal(t, tc.field, malformed.Field)
		})
	}
}

func TestDecodeFallbackKind(t *testing.T) {
	r := mustDecode(t, `{
		"TransactionType": "AMMBid",
		"Account": "`+senderAddr+`",
		"BidMax": {"value": "5", "currency": "039C99CD9AB0B70B32ECDA51EAAE471625608EA2", "issuer": "`+issuerAddr+`"}
	}`, "")

	require.Equal(t, Kind("AMMBid"), r.Kind())
	require.Equal(t, CategoryFallback, r.Category())

	// Raw access still works on unrecognized kinds.
	rawBid, ok := r.Raw("BidMax")
	require.True(t, ok)
	require.NotNil(t, rawBid)

	acct, ok := r.Account()
	require.True(t, ok)
	require.Equal(t, senderAddr, acct.Address)

	// Typed accessors report the field as missing rather than guessing.
	_, err := r.RequireAmount("BidMax")
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "BidMax", missing.Field)
}

func TestDecodePseudoKinds(t *testing.T) {
	signIn := mustDecode(t, `{"Account": "`+senderAddr+`", "SigningPubKey": ""}`, "")
	require.Equal(t, KindSignIn, signIn.Kind())
	require.Equal(t, CategoryPseudo, signIn.Category())

	auth := mustDecode(t, `{
		"Account": "`+senderAddr+`",
		"Channel": "5DB01B7FFED6B67E6B0414DED11E051D2EE2B7619CE0EAA6286D67A3A4D5BDB3",
		"Amount": "1000000"
	}`, "")
	require.Equal(t, KindPaymentChannelAuthorize, auth.Kind())
	require.Equal(t, CategoryPseudo, auth.Category())

	channel, ok := auth.Hash256("Channel")
	require.True(t, ok)
	require.Equal(t, "5DB01B7FFED6B67E6B0414DED11E051D2EE2B7619CE0EAA6286D67A3A4D5BDB3", channel)
}

func TestDecodeTimeCodec(t *testing.T) {
	// 86400 seconds past the ledger epoch is 2000-01-02T00:00:00Z.
	r := mustDecode(t, `{
		"TransactionType": "OfferCreate",
		"Account": "`+senderAddr+`",
		"TakerGets": "10000000",
		"TakerPays": {"value": "5", "currency": "USD", "issuer": "`+issuerAddr+`"},
		"Expiration": 86400
	}`, "")

	exp, ok := r.Time("Expiration")
	require.True(t, ok)
	require.Equal(t, time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC), exp)
}

func TestWireValueRoundTrip(t *testing.T) {
	doc := `{
		"TransactionType": "OfferCreate",
		"Account": "` + senderAddr + `",
		"TakerGets": "10000000",
		"TakerPays": {"value": "5", "currency": "USD", "issuer": "` + issuerAddr + `"},
		"Expiration": 86400,
		"Sequence": 112,
		"Fee": "12"
	}`
	r := mustDecode(t, doc, "")

	for _, name := range []string{"Account", "TakerGets", "TakerPays", "Expiration", "Sequence", "Fee"} {
		wire, ok := r.WireValue(name)
		require.True(t, ok, name)
		raw, _ := r.Raw(name)
		require.Equal(t, raw, wire, name)
	}
}

func TestDecodeDeterministic(t *testing.T) {
	doc := `{
		"TransactionType": "Payment",
		"Account": "` + senderAddr + `",
		"Destination": "` + receiverAddr + `",
		"Amount": "10000000",
		"Sequence": 42
	}`

	first := mustDecode(t, doc, "")
	second := mustDecode(t, doc, "")
	require.Equal(t, first.Kind(), second.Kind())
	require.Equal(t, first.Category(), second.Category())
	for _, name := range []string{"Account", "Destination", "Amount", "Sequence"} {
		a, _ := first.WireValue(name)
		b, _ := second.WireValue(name)
		require.Equal(t, a, b, name)
	}
}

func TestOfferStatusMemoized(t *testing.T) {
	// Offer keylet of (senderAddr, sequence 112).
	const restingIndex = "FBEF7D48F4DE2D2B1857B0E3F7F4699C4619FC7A5F4CB0625B7DAE5D0E32C17C"

	r := mustDecode(t, `{
		"TransactionType": "OfferCreate",
		"Account": "`+senderAddr+`",
		"Sequence": 112,
		"TakerGets": "10000000",
		"TakerPays": {"value": "5", "currency": "USD", "issuer": "`+issuerAddr+`"}
	}`, `{
		"AffectedNodes": [
			{"CreatedNode": {
				"LedgerEntryType": "Offer",
				"LedgerIndex": "`+restingIndex+`",
				"NewFields": {"Account": "`+senderAddr+`", "TakerGets": "10000000"}
			}}
		]
	}`)

	calls := 0
	orig := resolveOfferStatus
	resolveOfferStatus = func(m *meta.Meta, owner, index string) meta.OfferStatus {
		calls++
		require.Equal(t, restingIndex, index)
		return orig(m, owner, index)
	}
	defer func() { resolveOfferStatus = orig }()

	require.Equal(t, meta.StatusCreated, r.OfferStatus(senderAddr))
	require.Equal(t, meta.StatusCreated, r.OfferStatus(senderAddr))
	require.Equal(t, 1, calls, "resolution must run once per owner")

	// A non-owner viewpoint never inspects the resting object.
	require.Equal(t, meta.StatusPartiallyFilled, r.OfferStatus(receiverAddr))
	require.Equal(t, 1, calls)
}

func TestOfferStatusOwnerSpelling(t *testing.T) {
	// The X-address and classic spellings of the owner are the same
	// account; neither may be mistaken for a third party.
	const restingIndex = "FBEF7D48F4DE2D2B1857B0E3F7F4699C4619FC7A5F4CB0625B7DAE5D0E32C17C"

	r := mustDecode(t, `{
		"TransactionType": "OfferCreate",
		"Account": "`+senderAddr+`",
		"Sequence": 112,
		"TakerGets": "10000000",
		"TakerPays": {"value": "5", "currency": "USD", "issuer": "`+issuerAddr+`"}
	}`, `{
		"AffectedNodes": [
			{"CreatedNode": {
				"LedgerEntryType": "Offer",
				"LedgerIndex": "`+restingIndex+`",
				"NewFields": {"Account": "`+senderAddr+`", "TakerGets": "10000000"}
			}}
		]
	}`)

	require.Equal(t, meta.StatusCreated, r.OfferStatus(senderXAddr))
	require.Equal(t, meta.StatusCreated, r.OfferStatus(senderAddr))
}

func TestOfferStatusWithoutMeta(t *testing.T) {
	r := mustDecode(t, `{
		"TransactionType": "OfferCreate",
		"Account": "`+senderAddr+`",
		"Sequence": 112,
		"TakerGets": "10000000",
		"TakerPays": {"value": "5", "currency": "USD", "issuer": "`+issuerAddr+`"}
	}`, "")
	require.Equal(t, meta.StatusUnknown, r.OfferStatus(senderAddr))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("not json"), nil)
	require.Error(t, err)
	require.False(t, errors.As(err, new(*MalformedRecordError)))
}
