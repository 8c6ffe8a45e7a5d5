package explainer

import (
	"fmt"

	"github.com/LeJamon/goXRPLtx/internal/ledger/amount"
)

type offerCreate struct{ base }

func (offerCreate) EventsLabel() string { return "Exchange" }

func (o offerCreate) Description() (string, error) {
	acct, _ := o.r.Account()
	gets, err := o.r.RequireAmount("TakerGets")
	if err != nil {
		return "", err
	}
	pays, err := o.r.RequireAmount("TakerPays")
	if err != nil {
		return "", err
	}

	desc := fmt.Sprintf("%s offered to give %s in exchange for %s",
		acct.Address, fmtAmount(gets), fmtAmount(pays))

	if rate := amount.Rate(gets, pays); !rate.IsZero() {
		priced, unit := pays, gets
		if gets.IsNative() {
			priced, unit = gets, pays
		}
		desc += fmt.Sprintf(" (rate: %s %s per %s)",
			rate.String(),
			amount.NormalizeCurrencyCode(priced.Currency),
			amount.NormalizeCurrencyCode(unit.Currency))
	}

	if o.r.Meta() != nil {
		desc += fmt.Sprintf(". The offer is %s", o.r.OfferStatus(o.viewpoint))
	}
	return desc + ".", nil
}

func (o offerCreate) MonetaryDetails() (MonetaryDetails, error) {
	md := o.realized()

	// The declared exchange legs are intent, not movement. Only the
	// metadata diff above says what actually changed hands.
	gets, err := o.r.RequireAmount("TakerGets")
	if err != nil {
		return MonetaryDetails{}, err
	}
	pays, err := o.r.RequireAmount("TakerPays")
	if err != nil {
		return MonetaryDetails{}, err
	}
	md.Factor = append(md.Factor, gets, pays)
	return md, nil
}

type offerCancel struct{ base }

func (offerCancel) EventsLabel() string { return "Offer cancellation" }

func (o offerCancel) Description() (string, error) {
	acct, _ := o.r.Account()
	seq, err := o.r.RequireUInt32("OfferSequence")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s cancelled the offer placed with sequence %d.", acct.Address, seq), nil
}
