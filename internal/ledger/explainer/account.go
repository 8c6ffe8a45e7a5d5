package explainer

import (
	"fmt"

	"github.com/LeJamon/goXRPLtx/internal/ledger/amount"
)

type trustSet struct{ base }

func (trustSet) EventsLabel() string { return "Trust line update" }

func (t trustSet) Description() (string, error) {
	acct, _ := t.r.Account()
	limit, err := t.r.RequireAmount("LimitAmount")
	if err != nil {
		return "", err
	}
	if limit.IsZero() {
		return fmt.Sprintf("%s removed the %s trust line to %s.",
			acct.Address, amount.NormalizeCurrencyCode(limit.Currency), limit.Issuer), nil
	}
	return fmt.Sprintf("%s set a trust line to %s with a limit of %s.",
		acct.Address, limit.Issuer, fmtAmount(limit)), nil
}

func (t trustSet) Participants() Participants {
	p := Participants{}
	if start, ok := t.r.Account(); ok {
		p.Start = start
	}
	if limit, ok := t.r.Amount("LimitAmount"); ok && limit.Issuer != "" && limit.Issuer != p.Start.Address {
		p.End = &Party{Address: limit.Issuer}
	}
	return p
}

type accountSet struct{ base }

func (accountSet) EventsLabel() string { return "Account settings" }

func (a accountSet) Description() (string, error) {
	acct, _ := a.r.Account()
	desc := fmt.Sprintf("%s updated their account settings", acct.Address)
	if f, ok := a.r.UInt32("SetFlag"); ok {
		desc += fmt.Sprintf(", setting flag %d", f)
	}
	if f, ok := a.r.UInt32("ClearFlag"); ok {
		desc += fmt.Sprintf(", clearing flag %d", f)
	}
	return desc + ".", nil
}

type accountDelete struct{ base }

func (accountDelete) EventsLabel() string { return "Account deletion" }

func (a accountDelete) Description() (string, error) {
	acct, _ := a.r.Account()
	dest, _ := a.r.Destination()
	return fmt.Sprintf("%s deleted their account, sending the remaining balance to %s.",
		acct.Address, dest.Address), nil
}

type setRegularKey struct{ base }

func (setRegularKey) EventsLabel() string { return "Regular key change" }

func (s setRegularKey) Description() (string, error) {
	acct, _ := s.r.Account()
	if key, ok := s.r.AccountField("RegularKey"); ok {
		return fmt.Sprintf("%s assigned %s as their regular key.", acct.Address, key.Address), nil
	}
	return fmt.Sprintf("%s removed their regular key.", acct.Address), nil
}

func (s setRegularKey) Participants() Participants {
	return s.counterpartTo("RegularKey")
}

type signerListSet struct{ base }

func (signerListSet) EventsLabel() string { return "Signer list update" }

func (s signerListSet) Description() (string, error) {
	acct, _ := s.r.Account()
	quorum, err := s.r.RequireUInt32("SignerQuorum")
	if err != nil {
		return "", err
	}
	if quorum == 0 {
		return fmt.Sprintf("%s removed their signer list.", acct.Address), nil
	}
	entries, _ := s.r.Array("SignerEntries")
	return fmt.Sprintf("%s installed a signer list of %d entries with a quorum of %d.",
		acct.Address, len(entries), quorum), nil
}

type depositPreauth struct{ base }

func (depositPreauth) EventsLabel() string { return "Deposit preauthorization" }

func (d depositPreauth) Description() (string, error) {
	acct, _ := d.r.Account()
	if target, ok := d.r.AccountField("Authorize"); ok {
		return fmt.Sprintf("%s preauthorized deposits from %s.", acct.Address, target.Address), nil
	}
	if target, ok := d.r.AccountField("Unauthorize"); ok {
		return fmt.Sprintf("%s revoked the deposit preauthorization of %s.", acct.Address, target.Address), nil
	}
	return "", d.r.Missing("Authorize")
}

func (d depositPreauth) Participants() Participants {
	if p := d.counterpartTo("Authorize"); p.End != nil {
		return p
	}
	return d.counterpartTo("Unauthorize")
}

type ticketCreate struct{ base }

func (ticketCreate) EventsLabel() string { return "Ticket creation" }

func (t ticketCreate) Description() (string, error) {
	acct, _ := t.r.Account()
	count, err := t.r.RequireUInt32("TicketCount")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s created %d sequence ticket(s).", acct.Address, count), nil
}
