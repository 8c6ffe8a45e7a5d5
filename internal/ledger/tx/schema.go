package tx

import "github.com/LeJamon/goXRPLtx/internal/ledger/fields"

// Kind is the transaction type discriminant.
type Kind string

const (
	KindPayment              Kind = "Payment"
	KindTrustSet             Kind = "TrustSet"
	KindAccountSet           Kind = "AccountSet"
	KindAccountDelete        Kind = "AccountDelete"
	KindSetRegularKey        Kind = "SetRegularKey"
	KindSignerListSet        Kind = "SignerListSet"
	KindDepositPreauth       Kind = "DepositPreauth"
	KindTicketCreate         Kind = "TicketCreate"
	KindOfferCreate          Kind = "OfferCreate"
	KindOfferCancel          Kind = "OfferCancel"
	KindEscrowCreate         Kind = "EscrowCreate"
	KindEscrowFinish         Kind = "EscrowFinish"
	KindEscrowCancel         Kind = "EscrowCancel"
	KindCheckCreate          Kind = "CheckCreate"
	KindCheckCash            Kind = "CheckCash"
	KindCheckCancel          Kind = "CheckCancel"
	KindPaymentChannelCreate Kind = "PaymentChannelCreate"
	KindPaymentChannelFund   Kind = "PaymentChannelFund"
	KindPaymentChannelClaim  Kind = "PaymentChannelClaim"
	KindNFTokenMint          Kind = "NFTokenMint"
	KindNFTokenBurn          Kind = "NFTokenBurn"
	KindNFTokenCreateOffer   Kind = "NFTokenCreateOffer"
	KindNFTokenCancelOffer   Kind = "NFTokenCancelOffer"
	KindNFTokenAcceptOffer   Kind = "NFTokenAcceptOffer"

	// Pseudo kinds: off-ledger signing artifacts carrying no
	// TransactionType discriminant.
	KindSignIn                  Kind = "SignIn"
	KindPaymentChannelAuthorize Kind = "PaymentChannelAuthorize"
)

func def(name string, t fields.Type) fields.Def {
	return fields.Def{Name: name, Config: fields.Config{Type: t}}
}

func req(name string, t fields.Type) fields.Def {
	return fields.Def{Name: name, Config: fields.Config{Required: true, Type: t}}
}

func coded(name string, t fields.Type, c fields.Codec) fields.Def {
	return fields.Def{Name: name, Config: fields.Config{Type: t, Codec: c}}
}

// commonFields applies to every genuine transaction kind, ahead of the
// per-kind table.
var commonFields = fields.Table{
	req("Account", fields.TypeAccountID),
	def("Fee", fields.TypeAmount),
	def("Sequence", fields.TypeUInt32),
	def("Flags", fields.TypeFlags),
	def("LastLedgerSequence", fields.TypeUInt32),
	def("SourceTag", fields.TypeUInt32),
	def("AccountTxnID", fields.TypeHash256),
	def("TicketSequence", fields.TypeUInt32),
	def("NetworkID", fields.TypeUInt32),
	def("SigningPubKey", fields.TypeBlob),
	def("TxnSignature", fields.TypeBlob),
	def("Memos", fields.TypeArray),
	def("Signers", fields.TypeArray),
}

// schemas maps each known kind to its field descriptor table. Built once at
// process start; read-only thereafter.
var schemas = map[Kind]fields.Table{
	KindPayment: {
		req("Amount", fields.TypeAmount),
		req("Destination", fields.TypeAccountID),
		def("DestinationTag", fields.TypeUInt32),
		def("InvoiceID", fields.TypeHash256),
		def("SendMax", fields.TypeAmount),
		def("DeliverMin", fields.TypeAmount),
		def("Paths", fields.TypeArray),
	},
	KindTrustSet: {
		req("LimitAmount", fields.TypeAmount),
		def("QualityIn", fields.TypeUInt32),
		def("QualityOut", fields.TypeUInt32),
	},
	KindAccountSet: {
		def("ClearFlag", fields.TypeUInt32),
		def("SetFlag", fields.TypeUInt32),
		def("Domain", fields.TypeBlob),
		def("EmailHash", fields.TypeBlob),
		def("MessageKey", fields.TypeBlob),
		def("TransferRate", fields.TypeUInt32),
		def("TickSize", fields.TypeUInt32),
		def("NFTokenMinter", fields.TypeAccountID),
	},
	KindAccountDelete: {
		req("Destination", fields.TypeAccountID),
		def("DestinationTag", fields.TypeUInt32),
	},
	KindSetRegularKey: {
		def("RegularKey", fields.TypeAccountID),
	},
	KindSignerListSet: {
		req("SignerQuorum", fields.TypeUInt32),
		def("SignerEntries", fields.TypeArray),
	},
	KindDepositPreauth: {
		def("Authorize", fields.TypeAccountID),
		def("Unauthorize", fields.TypeAccountID),
	},
	KindTicketCreate: {
		req("TicketCount", fields.TypeUInt32),
	},
	KindOfferCreate: {
		req("TakerGets", fields.TypeAmount),
		req("TakerPays", fields.TypeAmount),
		coded("Expiration", fields.TypeUInt32, fields.RippleTime),
		def("OfferSequence", fields.TypeUInt32),
		def("OfferID", fields.TypeHash256),
	},
	KindOfferCancel: {
		req("OfferSequence", fields.TypeUInt32),
	},
	KindEscrowCreate: {
		req("Amount", fields.TypeAmount),
		req("Destination", fields.TypeAccountID),
		def("DestinationTag", fields.TypeUInt32),
		coded("CancelAfter", fields.TypeUInt32, fields.RippleTime),
		coded("FinishAfter", fields.TypeUInt32, fields.RippleTime),
		def("Condition", fields.TypeBlob),
	},
	KindEscrowFinish: {
		req("Owner", fields.TypeAccountID),
		req("OfferSequence", fields.TypeUInt32),
		def("Condition", fields.TypeBlob),
		def("Fulfillment", fields.TypeBlob),
	},
	KindEscrowCancel: {
		req("Owner", fields.TypeAccountID),
		req("OfferSequence", fields.TypeUInt32),
	},
	KindCheckCreate: {
		req("Destination", fields.TypeAccountID),
		req("SendMax", fields.TypeAmount),
		def("DestinationTag", fields.TypeUInt32),
		coded("Expiration", fields.TypeUInt32, fields.RippleTime),
		def("InvoiceID", fields.TypeHash256),
	},
	KindCheckCash: {
		req("CheckID", fields.TypeHash256),
		def("Amount", fields.TypeAmount),
		def("DeliverMin", fields.TypeAmount),
	},
	KindCheckCancel: {
		req("CheckID", fields.TypeHash256),
	},
	KindPaymentChannelCreate: {
		req("Amount", fields.TypeAmount),
		req("Destination", fields.TypeAccountID),
		req("SettleDelay", fields.TypeUInt32),
		req("PublicKey", fields.TypeBlob),
		def("DestinationTag", fields.TypeUInt32),
		coded("CancelAfter", fields.TypeUInt32, fields.RippleTime),
	},
	KindPaymentChannelFund: {
		req("Channel", fields.TypeHash256),
		req("Amount", fields.TypeAmount),
		coded("Expiration", fields.TypeUInt32, fields.RippleTime),
	},
	KindPaymentChannelClaim: {
		req("Channel", fields.TypeHash256),
		def("Balance", fields.TypeAmount),
		def("Amount", fields.TypeAmount),
		def("Signature", fields.TypeBlob),
		def("PublicKey", fields.TypeBlob),
	},
	KindNFTokenMint: {
		req("NFTokenTaxon", fields.TypeUInt32),
		def("Issuer", fields.TypeAccountID),
		def("TransferFee", fields.TypeUInt32),
		def("URI", fields.TypeBlob),
	},
	KindNFTokenBurn: {
		req("NFTokenID", fields.TypeHash256),
		def("Owner", fields.TypeAccountID),
	},
	KindNFTokenCreateOffer: {
		req("NFTokenID", fields.TypeHash256),
		req("Amount", fields.TypeAmount),
		def("Owner", fields.TypeAccountID),
		def("Destination", fields.TypeAccountID),
		coded("Expiration", fields.TypeUInt32, fields.RippleTime),
	},
	KindNFTokenCancelOffer: {
		req("NFTokenOffers", fields.TypeArray),
	},
	KindNFTokenAcceptOffer: {
		def("NFTokenSellOffer", fields.TypeHash256),
		def("NFTokenBuyOffer", fields.TypeHash256),
		def("NFTokenBrokerFee", fields.TypeAmount),
	},
}

// Schema returns the field table of a kind, or nil for unknown kinds.
func Schema(kind Kind) fields.Table {
	return schemas[kind]
}

// KnownKind reports whether the kind has a registered schema.
func KnownKind(kind Kind) bool {
	_, ok := schemas[kind]
	return ok
}
