package explainer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLtx/internal/ledger/tx"
)

const (
	senderAddr   = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	receiverAddr = "rPMh7Pi9ct699iZUTWaytJUoHcJ7cgyziK"
	issuerAddr   = "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"
)

func mustRecord(t *testing.T, rawTx, rawMeta string) *tx.Record {
	t.Helper()
	var m []byte
	if rawMeta != "" {
		m = []byte(rawMeta)
	}
	r, err := tx.Decode([]byte(rawTx), m)
	require.NoError(t, err)
	return r
}

func paymentMeta(prev, final string) string {
	return `{
		"TransactionResult": "tesSUCCESS",
		"delivered_amount": "10000000",
		"AffectedNodes": [
			{"ModifiedNode": {
				"LedgerEntryType": "AccountRoot",
				"LedgerIndex": "AA",
				"PreviousFields": {"Balance": "` + prev + `"},
				"FinalFields": {"Account": "` + senderAddr + `", "Balance": "` + final + `"}
			}}
		]
	}`
}

func TestPaymentExplainer(t *testing.T) {
	r := mustRecord(t, `{
		"TransactionType": "Payment",
		"Account": "`+senderAddr+`",
		"Destination": "`+receiverAddr+`",
		"DestinationTag": 7,
		"Amount": "10000000"
	}`, paymentMeta("100000012", "90000000"))

	t.Run("labels follow the viewpoint", func(t *testing.T) {
		require.Equal(t, "Payment sent", For(r, senderAddr).EventsLabel())
		require.Equal(t, "Payment received", For(r, receiverAddr).EventsLabel())
		require.Equal(t, "Payment", For(r, issuerAddr).EventsLabel())
	})

	t.Run("description names both parties and the delivered amount", func(t *testing.T) {
		desc, err := For(r, senderAddr).Description()
		require.NoError(t, err)
		require.Contains(t, desc, senderAddr)
		require.Contains(t, desc, receiverAddr)
		require.Contains(t, desc, "10 XRP")
		require.Contains(t, desc, "destination tag 7")
	})

	t.Run("participants", func(t *testing.T) {
		p := For(r, senderAddr).Participants()
		require.Equal(t, senderAddr, p.Start.Address)
		require.NotNil(t, p.End)
		require.Equal(t, receiverAddr, p.End.Address)
		require.NotNil(t, p.End.Tag)
		require.Equal(t, uint32(7), *p.End.Tag)
	})

	t.Run("realized mutation from metadata", func(t *testing.T) {
		md, err := For(r, senderAddr).MonetaryDetails()
		require.NoError(t, err)
		require.Empty(t, md.Factor)
		require.Len(t, md.Mutate[ActionDecrease], 1)
		require.Equal(t, "10.000012", md.Mutate[ActionDecrease][0].String())
		require.Empty(t, md.Mutate[ActionIncrease])
	})
}

func TestPaymentWithoutMetaDeclaresFactorOnly(t *testing.T) {
	r := mustRecord(t, `{
		"TransactionType": "Payment",
		"Account": "`+senderAddr+`",
		"Destination": "`+receiverAddr+`",
		"Amount": "10000000"
	}`, "")

	md, err := For(r, senderAddr).MonetaryDetails()
	require.NoError(t, err)
	require.Empty(t, md.Mutate)
	require.Len(t, md.Factor, 1)
	require.Equal(t, "10", md.Factor[0].String())
}

func TestOfferCreateExplainer(t *testing.T) {
	// TakerPays 10 XRP for TakerGets 5 USD: priced at 2 XRP per USD.
	r := mustRecord(t, `{
		"TransactionType": "OfferCreate",
		"Account": "`+senderAddr+`",
		"Sequence": 112,
		"TakerGets": {"value": "5", "currency": "USD", "issuer": "`+issuerAddr+`"},
		"TakerPays": "10000000"
	}`, "")

	e := For(r, senderAddr)
	require.Equal(t, "Exchange", e.EventsLabel())

	desc, err := e.Description()
	require.NoError(t, err)
	require.Contains(t, desc, "5 USD")
	require.Contains(t, desc, "10 XRP")
	require.Contains(t, desc, "rate: 2 XRP per USD")

	md, err := e.MonetaryDetails()
	require.NoError(t, err)
	require.Empty(t, md.Mutate, "declared legs must never appear as realized mutations")
	require.Len(t, md.Factor, 2)
}

func TestOfferCreateKeepsMutateAndFactorApart(t *testing.T) {
	// Immediate full cross: balances moved, and the declared legs still sit
	// in Factor untouched.
	r := mustRecord(t, `{
		"TransactionType": "OfferCreate",
		"Account": "`+senderAddr+`",
		"Sequence": 112,
		"TakerGets": "10000000",
		"TakerPays": {"value": "5", "currency": "USD", "issuer": "`+issuerAddr+`"}
	}`, `{
		"AffectedNodes": [
			{"ModifiedNode": {
				"LedgerEntryType": "AccountRoot",
				"LedgerIndex": "AA",
				"PreviousFields": {"Balance": "100000000"},
				"FinalFields": {"Account": "`+senderAddr+`", "Balance": "90000000"}
			}},
			{"ModifiedNode": {
				"LedgerEntryType": "RippleState",
				"LedgerIndex": "CC",
				"PreviousFields": {"Balance": {"value": "0", "currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji"}},
				"FinalFields": {
					"Balance": {"value": "5", "currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji"},
					"LowLimit": {"value": "0", "currency": "USD", "issuer": "`+senderAddr+`"},
					"HighLimit": {"value": "100", "currency": "USD", "issuer": "`+issuerAddr+`"}
				}
			}}
		]
	}`)

	e := For(r, senderAddr)
	md, err := e.MonetaryDetails()
	require.NoError(t, err)
	require.Len(t, md.Mutate[ActionDecrease], 1)
	require.Len(t, md.Mutate[ActionIncrease], 1)
	require.Len(t, md.Factor, 2)

	desc, err := e.Description()
	require.NoError(t, err)
	require.Contains(t, desc, "FILLED")
}

func TestTrustSetExplainer(t *testing.T) {
	r := mustRecord(t, `{
		"TransactionType": "TrustSet",
		"Account": "`+senderAddr+`",
		"LimitAmount": {"value": "100", "currency": "USD", "issuer": "`+issuerAddr+`"}
	}`, "")

	e := For(r, senderAddr)
	require.Equal(t, "Trust line update", e.EventsLabel())

	desc, err := e.Description()
	require.NoError(t, err)
	require.Contains(t, desc, "100 USD")
	require.Contains(t, desc, issuerAddr)

	p := e.Participants()
	require.NotNil(t, p.End)
	require.Equal(t, issuerAddr, p.End.Address)
}

func TestNFTokenCreateOfferExplainer(t *testing.T) {
	const nftID = "000813886377BBDA772433D7FCF16A9710D9D958D9F7129F376D5FC200005026"

	r := mustRecord(t, `{
		"TransactionType": "NFTokenCreateOffer",
		"Account": "`+senderAddr+`",
		"NFTokenID": "`+nftID+`",
		"Amount": {"value": "25", "currency": "USD", "issuer": "`+issuerAddr+`"},
		"Owner": "`+receiverAddr+`"
	}`, "")

	e := For(r, senderAddr)
	require.Equal(t, "NFT buy offer", e.EventsLabel())

	md, err := e.MonetaryDetails()
	require.NoError(t, err)
	require.Empty(t, md.Mutate, "an unaccepted asking price is never a mutation")
	require.Len(t, md.Factor, 1)
	require.Equal(t, "25", md.Factor[0].String())

	assets := e.AssetDetails()
	require.Len(t, assets, 1)
	require.Equal(t, "NFToken", assets[0].Type)
	require.Equal(t, nftID, assets[0].ID)
	require.Equal(t, receiverAddr, assets[0].Owner)

	p := e.Participants()
	require.NotNil(t, p.End)
	require.Equal(t, receiverAddr, p.End.Address)
}

func TestDepositPreauthParticipants(t *testing.T) {
	r := mustRecord(t, `{
		"TransactionType": "DepositPreauth",
		"Account": "`+senderAddr+`",
		"Unauthorize": "`+receiverAddr+`"
	}`, "")

	e := For(r, senderAddr)
	desc, err := e.Description()
	require.NoError(t, err)
	require.Contains(t, desc, "revoked")

	p := e.Participants()
	require.NotNil(t, p.End)
	require.Equal(t, receiverAddr, p.End.Address)
}

func TestFallbackKindDispatch(t *testing.T) {
	r := mustRecord(t, `{
		"TransactionType": "AMMDeposit",
		"Account": "`+senderAddr+`",
		"Amount": "5000000"
	}`, "")

	e := For(r, senderAddr)
	require.Equal(t, "AMMDeposit", e.EventsLabel())

	desc, err := e.Description()
	require.NoError(t, err)
	require.Contains(t, desc, "AMMDeposit")
	require.Contains(t, desc, "Account")

	md, err := e.MonetaryDetails()
	require.NoError(t, err)
	require.Empty(t, md.Factor)
	require.Nil(t, e.AssetDetails())
}

func TestSignInExplainer(t *testing.T) {
	r := mustRecord(t, `{"Account": "`+senderAddr+`", "SigningPubKey": ""}`, "")

	e := For(r, senderAddr)
	require.Equal(t, "Sign in", e.EventsLabel())

	desc, err := e.Description()
	require.NoError(t, err)
	require.Contains(t, desc, "no effect on the ledger")

	md, err := e.MonetaryDetails()
	require.NoError(t, err)
	require.Empty(t, md.Mutate)
	require.Empty(t, md.Factor)
}

func TestChannelAuthorizeExplainer(t *testing.T) {
	const channel = "5DB01B7FFED6B67E6B0414DED11E051D2EE2B7619CE0EAA6286D67A3A4D5BDB3"

	r := mustRecord(t, `{
		"Account": "`+senderAddr+`",
		"Channel": "`+channel+`",
		"Amount": "1000000"
	}`, "")
	require.Equal(t, tx.KindPaymentChannelAuthorize, r.Kind())

	e := For(r, senderAddr)
	md, err := e.MonetaryDetails()
	require.NoError(t, err)
	require.Empty(t, md.Mutate)
	require.Len(t, md.Factor, 1)

	assets := e.AssetDetails()
	require.Len(t, assets, 1)
	require.Equal(t, "PayChannel", assets[0].Type)
	require.Equal(t, channel, assets[0].ID)
}
