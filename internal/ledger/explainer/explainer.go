// Package explainer derives presentation-ready facts from decoded
// transaction records: a short event label, a plain-English description,
// the participating parties, realized and declared monetary effects, and
// any associated ledger assets.
package explainer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LeJamon/goXRPLtx/internal/ledger/amount"
	"github.com/LeJamon/goXRPLtx/internal/ledger/tx"
)

// Action classifies the direction of a realized balance mutation.
type Action string

const (
	ActionIncrease Action = "INCREASE"
	ActionDecrease Action = "DECREASE"
)

// Effect is one monetary movement or declared amount.
type Effect = amount.Amount

// MonetaryDetails separates what actually moved from what is merely
// declared. Mutate holds realized balance changes for the viewpoint account,
// sourced from execution metadata. Factor holds declared or contingent
// amounts (an offer's asking price, an escrowed sum not yet released). The
// two must never be merged: only Mutate may feed downstream aggregation.
type MonetaryDetails struct {
	Mutate map[Action][]Effect `json:"mutate"`
	Factor []Effect            `json:"factor,omitempty"`
}

// Party is one side of a transaction.
type Party = tx.Party

// Participants names the initiating party and, when a distinct counterpart
// exists, the other side.
type Participants struct {
	Start Party  `json:"start"`
	End   *Party `json:"end,omitempty"`
}

// AssetDetail references a ledger asset touched by the record.
type AssetDetail struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Owner string `json:"owner,omitempty"`
}

// Explainer is the capability set every kind implements.
type Explainer interface {
	EventsLabel() string
	Description() (string, error)
	Participants() Participants
	MonetaryDetails() (MonetaryDetails, error)
	AssetDetails() []AssetDetail
}

// For selects the explainer for a record as seen from the viewpoint
// account. Unknown, fallback and pseudo kinds resolve to implementations
// too; dispatch never fails.
func For(r *tx.Record, viewpoint string) Explainer {
	b := base{r: r, viewpoint: viewpoint}
	switch r.Kind() {
	case tx.KindPayment:
		return payment{b}
	case tx.KindTrustSet:
		return trustSet{b}
	case tx.KindAccountSet:
		return accountSet{b}
	case tx.KindAccountDelete:
		return accountDelete{b}
	case tx.KindSetRegularKey:
		return setRegularKey{b}
	case tx.KindSignerListSet:
		return signerListSet{b}
	case tx.KindDepositPreauth:
		return depositPreauth{b}
	case tx.KindTicketCreate:
		return ticketCreate{b}
	case tx.KindOfferCreate:
		return offerCreate{b}
	case tx.KindOfferCancel:
		return offerCancel{b}
	case tx.KindEscrowCreate:
		return escrowCreate{b}
	case tx.KindEscrowFinish:
		return escrowFinish{b}
	case tx.KindEscrowCancel:
		return escrowCancel{b}
	case tx.KindCheckCreate:
		return checkCreate{b}
	case tx.KindCheckCash:
		return checkCash{b}
	case tx.KindCheckCancel:
		return checkCancel{b}
	case tx.KindPaymentChannelCreate:
		return channelCreate{b}
	case tx.KindPaymentChannelFund:
		return channelFund{b}
	case tx.KindPaymentChannelClaim:
		return channelClaim{b}
	case tx.KindNFTokenMint:
		return nftMint{b}
	case tx.KindNFTokenBurn:
		return nftBurn{b}
	case tx.KindNFTokenCreateOffer:
		return nftCreateOffer{b}
	case tx.KindNFTokenCancelOffer:
		return nftCancelOffer{b}
	case tx.KindNFTokenAcceptOffer:
		return nftAcceptOffer{b}
	case tx.KindSignIn:
		return signIn{b}
	case tx.KindPaymentChannelAuthorize:
		return channelAuthorize{b}
	default:
		return generic{b}
	}
}

// base carries the shared record/viewpoint pair and default behavior.
type base struct {
	r         *tx.Record
	viewpoint string
}

func (b base) EventsLabel() string { return string(b.r.Kind()) }

func (b base) Participants() Participants {
	p := Participants{}
	if start, ok := b.r.Account(); ok {
		p.Start = start
	}
	if end, ok := b.r.Destination(); ok && end.Address != p.Start.Address {
		p.End = &end
	}
	return p
}

// realized builds the Mutate map from the metadata diff. Empty directions
// are omitted.
func (b base) realized() MonetaryDetails {
	md := MonetaryDetails{Mutate: map[Action][]Effect{}}
	changes := b.r.BalanceChanges(b.viewpoint)
	if len(changes.Received) > 0 {
		md.Mutate[ActionIncrease] = changes.Received
	}
	if len(changes.Sent) > 0 {
		md.Mutate[ActionDecrease] = changes.Sent
	}
	return md
}

func (b base) MonetaryDetails() (MonetaryDetails, error) {
	return b.realized(), nil
}

func (b base) AssetDetails() []AssetDetail { return nil }

// counterpartTo builds participants with the given field as the far side.
func (b base) counterpartTo(field string) Participants {
	p := Participants{}
	if start, ok := b.r.Account(); ok {
		p.Start = start
	}
	if end, ok := b.r.AccountField(field); ok && end.Address != p.Start.Address {
		p.End = &end
	}
	return p
}

func fmtAmount(a amount.Amount) string {
	return a.String() + " " + amount.NormalizeCurrencyCode(a.Currency)
}

// generic handles fallback kinds: a raw-field description and realized
// mutations only.
type generic struct{ base }

func (g generic) Description() (string, error) {
	names := make([]string, 0, 8)
	for _, n := range []string{"Account", "Destination", "Amount", "Flags", "Sequence"} {
		if g.r.Has(n) {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return fmt.Sprintf("A %s transaction carrying fields: %s.",
		g.r.Kind(), strings.Join(names, ", ")), nil
}

// signIn is the off-ledger authentication challenge: no ledger effect at
// all.
type signIn struct{ base }

func (signIn) EventsLabel() string { return "Sign in" }

func (s signIn) Description() (string, error) {
	acct, _ := s.r.Account()
	return fmt.Sprintf("Sign-in request for %s. This request has no effect on the ledger.", acct.Address), nil
}

func (signIn) MonetaryDetails() (MonetaryDetails, error) {
	return MonetaryDetails{Mutate: map[Action][]Effect{}}, nil
}
