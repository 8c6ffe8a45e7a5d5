package explainer

import "fmt"

type escrowCreate struct{ base }

func (escrowCreate) EventsLabel() string { return "Escrow creation" }

func (e escrowCreate) Description() (string, error) {
	acct, _ := e.r.Account()
	dest, _ := e.r.Destination()
	amt, err := e.r.RequireAmount("Amount")
	if err != nil {
		return "", err
	}
	desc := fmt.Sprintf("%s escrowed %s for %s", acct.Address, fmtAmount(amt), dest.Address)
	if finish, ok := e.r.Time("FinishAfter"); ok {
		desc += fmt.Sprintf(", releasable after %s", finish.Format("2006-01-02 15:04:05 UTC"))
	}
	if cancel, ok := e.r.Time("CancelAfter"); ok {
		desc += fmt.Sprintf(", expiring %s", cancel.Format("2006-01-02 15:04:05 UTC"))
	}
	return desc + ".", nil
}

func (e escrowCreate) MonetaryDetails() (MonetaryDetails, error) {
	md := e.realized()

	// The escrowed sum is locked, not delivered; it stays a factor until an
	// EscrowFinish realizes it.
	amt, err := e.r.RequireAmount("Amount")
	if err != nil {
		return MonetaryDetails{}, err
	}
	md.Factor = append(md.Factor, amt)
	return md, nil
}

type escrowFinish struct{ base }

func (escrowFinish) EventsLabel() string { return "Escrow completion" }

func (e escrowFinish) Description() (string, error) {
	acct, _ := e.r.Account()
	owner, ok := e.r.AccountField("Owner")
	if !ok {
		return "", e.r.Missing("Owner")
	}
	seq, err := e.r.RequireUInt32("OfferSequence")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s finished the escrow created by %s with sequence %d.",
		acct.Address, owner.Address, seq), nil
}

func (e escrowFinish) Participants() Participants {
	return e.counterpartTo("Owner")
}

type escrowCancel struct{ base }

func (escrowCancel) EventsLabel() string { return "Escrow cancellation" }

func (e escrowCancel) Description() (string, error) {
	acct, _ := e.r.Account()
	owner, ok := e.r.AccountField("Owner")
	if !ok {
		return "", e.r.Missing("Owner")
	}
	seq, err := e.r.RequireUInt32("OfferSequence")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s cancelled the escrow created by %s with sequence %d, returning the funds.",
		acct.Address, owner.Address, seq), nil
}

func (e escrowCancel) Participants() Participants {
	return e.counterpartTo("Owner")
}
