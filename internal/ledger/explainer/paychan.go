package explainer

import "fmt"

type channelCreate struct{ base }

func (channelCreate) EventsLabel() string { return "Payment channel opened" }

func (c channelCreate) Description() (string, error) {
	acct, _ := c.r.Account()
	dest, _ := c.r.Destination()
	amt, err := c.r.RequireAmount("Amount")
	if err != nil {
		return "", err
	}
	delay, err := c.r.RequireUInt32("SettleDelay")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s opened a payment channel to %s funded with %s (settle delay %d seconds).",
		acct.Address, dest.Address, fmtAmount(amt), delay), nil
}

func (c channelCreate) MonetaryDetails() (MonetaryDetails, error) {
	md := c.realized()

	// Channel funding is committed but only claimable, not yet delivered.
	amt, err := c.r.RequireAmount("Amount")
	if err != nil {
		return MonetaryDetails{}, err
	}
	md.Factor = append(md.Factor, amt)
	return md, nil
}

type channelFund struct{ base }

func (channelFund) EventsLabel() string { return "Payment channel funded" }

func (c channelFund) Description() (string, error) {
	acct, _ := c.r.Account()
	channel, err := c.r.RequireHash256("Channel")
	if err != nil {
		return "", err
	}
	amt, err := c.r.RequireAmount("Amount")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s added %s to payment channel %s.",
		acct.Address, fmtAmount(amt), channel), nil
}

func (c channelFund) AssetDetails() []AssetDetail {
	return channelAsset(c.base)
}

type channelClaim struct{ base }

func (channelClaim) EventsLabel() string { return "Payment channel claim" }

func (c channelClaim) Description() (string, error) {
	acct, _ := c.r.Account()
	channel, err := c.r.RequireHash256("Channel")
	if err != nil {
		return "", err
	}
	if bal, ok := c.r.Amount("Balance"); ok {
		return fmt.Sprintf("%s claimed against payment channel %s, bringing the delivered total to %s.",
			acct.Address, channel, fmtAmount(bal)), nil
	}
	return fmt.Sprintf("%s adjusted payment channel %s.", acct.Address, channel), nil
}

func (c channelClaim) AssetDetails() []AssetDetail {
	return channelAsset(c.base)
}

// channelAuthorize is the off-ledger claim authorization pseudo kind: it
// signs a claim for later submission and moves nothing itself.
type channelAuthorize struct{ base }

func (channelAuthorize) EventsLabel() string { return "Payment channel authorization" }

func (c channelAuthorize) Description() (string, error) {
	channel, err := c.r.RequireHash256("Channel")
	if err != nil {
		return "", err
	}
	amt, err := c.r.RequireAmount("Amount")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Authorization to claim %s from payment channel %s. Nothing moves until the claim is submitted.",
		fmtAmount(amt), channel), nil
}

func (c channelAuthorize) MonetaryDetails() (MonetaryDetails, error) {
	md := MonetaryDetails{Mutate: map[Action][]Effect{}}
	amt, err := c.r.RequireAmount("Amount")
	if err != nil {
		return MonetaryDetails{}, err
	}
	md.Factor = append(md.Factor, amt)
	return md, nil
}

func (c channelAuthorize) AssetDetails() []AssetDetail {
	return channelAsset(c.base)
}

func channelAsset(b base) []AssetDetail {
	channel, ok := b.r.Hash256("Channel")
	if !ok {
		return nil
	}
	return []AssetDetail{{Type: "PayChannel", ID: channel}}
}
