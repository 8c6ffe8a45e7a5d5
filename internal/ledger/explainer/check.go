package explainer

import "fmt"

type checkCreate struct{ base }

func (checkCreate) EventsLabel() string { return "Check creation" }

func (c checkCreate) Description() (string, error) {
	acct, _ := c.r.Account()
	dest, _ := c.r.Destination()
	max, err := c.r.RequireAmount("SendMax")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s wrote a check for up to %s, cashable by %s.",
		acct.Address, fmtAmount(max), dest.Address), nil
}

func (c checkCreate) MonetaryDetails() (MonetaryDetails, error) {
	md := c.realized()

	// A check moves nothing until cashed; SendMax is a ceiling, not a
	// transfer.
	max, err := c.r.RequireAmount("SendMax")
	if err != nil {
		return MonetaryDetails{}, err
	}
	md.Factor = append(md.Factor, max)
	return md, nil
}

type checkCash struct{ base }

func (checkCash) EventsLabel() string { return "Check cashed" }

func (c checkCash) Description() (string, error) {
	acct, _ := c.r.Account()
	id, err := c.r.RequireHash256("CheckID")
	if err != nil {
		return "", err
	}
	if amt, ok := c.r.Amount("Amount"); ok {
		return fmt.Sprintf("%s cashed check %s for %s.", acct.Address, id, fmtAmount(amt)), nil
	}
	if min, ok := c.r.Amount("DeliverMin"); ok {
		return fmt.Sprintf("%s cashed check %s for at least %s.", acct.Address, id, fmtAmount(min)), nil
	}
	return fmt.Sprintf("%s cashed check %s.", acct.Address, id), nil
}

func (c checkCash) AssetDetails() []AssetDetail {
	id, err := c.r.RequireHash256("CheckID")
	if err != nil {
		return nil
	}
	return []AssetDetail{{Type: "Check", ID: id}}
}

type checkCancel struct{ base }

func (checkCancel) EventsLabel() string { return "Check cancellation" }

func (c checkCancel) Description() (string, error) {
	acct, _ := c.r.Account()
	id, err := c.r.RequireHash256("CheckID")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s cancelled check %s.", acct.Address, id), nil
}

func (c checkCancel) AssetDetails() []AssetDetail {
	id, err := c.r.RequireHash256("CheckID")
	if err != nil {
		return nil
	}
	return []AssetDetail{{Type: "Check", ID: id}}
}
