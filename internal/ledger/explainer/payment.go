package explainer

import "fmt"

type payment struct{ base }

func (p payment) EventsLabel() string {
	acct, _ := p.r.Account()
	if dest, ok := p.r.Destination(); ok && p.viewpoint == dest.Address {
		return "Payment received"
	}
	if p.viewpoint == acct.Address {
		return "Payment sent"
	}
	return "Payment"
}

func (p payment) Description() (string, error) {
	acct, _ := p.r.Account()
	dest, _ := p.r.Destination()

	// Prefer the amount that actually arrived over the declared one;
	// partial payments can deliver less than requested.
	amt, err := p.r.RequireAmount("Amount")
	if err != nil {
		return "", err
	}
	if m := p.r.Meta(); m != nil && m.DeliveredAmount != nil {
		amt = *m.DeliveredAmount
	}

	desc := fmt.Sprintf("%s sent %s to %s", acct.Address, fmtAmount(amt), dest.Address)
	if dest.Tag != nil {
		desc += fmt.Sprintf(" (destination tag %d)", *dest.Tag)
	}
	return desc + ".", nil
}

func (p payment) MonetaryDetails() (MonetaryDetails, error) {
	md := p.realized()
	if p.r.Meta() == nil {
		// Without execution metadata nothing is known to have moved; the
		// declared amount is only a factor.
		amt, err := p.r.RequireAmount("Amount")
		if err != nil {
			return MonetaryDetails{}, err
		}
		md.Factor = append(md.Factor, amt)
	}
	return md, nil
}
