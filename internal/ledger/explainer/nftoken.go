package explainer

import "fmt"

// tfSellNFToken marks an NFTokenCreateOffer as a sell offer.
const tfSellNFToken = 0x00000001

type nftMint struct{ base }

func (nftMint) EventsLabel() string { return "NFT mint" }

func (n nftMint) Description() (string, error) {
	acct, _ := n.r.Account()
	taxon, err := n.r.RequireUInt32("NFTokenTaxon")
	if err != nil {
		return "", err
	}
	if issuer, ok := n.r.AccountField("Issuer"); ok {
		return fmt.Sprintf("%s minted an NFT (taxon %d) on behalf of %s.",
			acct.Address, taxon, issuer.Address), nil
	}
	return fmt.Sprintf("%s minted an NFT (taxon %d).", acct.Address, taxon), nil
}

func (n nftMint) Participants() Participants {
	return n.counterpartTo("Issuer")
}

type nftBurn struct{ base }

func (nftBurn) EventsLabel() string { return "NFT burn" }

func (n nftBurn) Description() (string, error) {
	acct, _ := n.r.Account()
	id, err := n.r.RequireHash256("NFTokenID")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s burned NFT %s.", acct.Address, id), nil
}

func (n nftBurn) Participants() Participants {
	return n.counterpartTo("Owner")
}

func (n nftBurn) AssetDetails() []AssetDetail {
	return nftAsset(n.base, "NFTokenID")
}

type nftCreateOffer struct{ base }

func (n nftCreateOffer) EventsLabel() string {
	if n.r.HasFlag(tfSellNFToken) { // tfSellNFToken
		return "NFT sell offer"
	}
	return "NFT buy offer"
}

func (n nftCreateOffer) Description() (string, error) {
	acct, _ := n.r.Account()
	id, err := n.r.RequireHash256("NFTokenID")
	if err != nil {
		return "", err
	}
	price, err := n.r.RequireAmount("Amount")
	if err != nil {
		return "", err
	}
	if n.r.HasFlag(tfSellNFToken) {
		desc := fmt.Sprintf("%s offered to sell NFT %s for %s", acct.Address, id, fmtAmount(price))
		if dest, ok := n.r.Destination(); ok {
			desc += fmt.Sprintf(", exclusively to %s", dest.Address)
		}
		return desc + ".", nil
	}
	return fmt.Sprintf("%s offered to buy NFT %s for %s.", acct.Address, id, fmtAmount(price)), nil
}

func (n nftCreateOffer) MonetaryDetails() (MonetaryDetails, error) {
	md := n.realized()

	// The asking price is contingent on acceptance.
	price, err := n.r.RequireAmount("Amount")
	if err != nil {
		return MonetaryDetails{}, err
	}
	md.Factor = append(md.Factor, price)
	return md, nil
}

func (n nftCreateOffer) Participants() Participants {
	if p := n.base.Participants(); p.End != nil {
		return p
	}
	return n.counterpartTo("Owner")
}

func (n nftCreateOffer) AssetDetails() []AssetDetail {
	details := nftAsset(n.base, "NFTokenID")
	if owner, ok := n.r.AccountField("Owner"); ok && len(details) > 0 {
		details[0].Owner = owner.Address
	}
	return details
}

type nftCancelOffer struct{ base }

func (nftCancelOffer) EventsLabel() string { return "NFT offer cancellation" }

func (n nftCancelOffer) Description() (string, error) {
	acct, _ := n.r.Account()
	offers, ok := n.r.Array("NFTokenOffers")
	if !ok {
		return "", n.r.Missing("NFTokenOffers")
	}
	return fmt.Sprintf("%s cancelled %d NFT offer(s).", acct.Address, len(offers)), nil
}

func (n nftCancelOffer) AssetDetails() []AssetDetail {
	offers, ok := n.r.Array("NFTokenOffers")
	if !ok {
		return nil
	}
	details := make([]AssetDetail, 0, len(offers))
	for _, o := range offers {
		if id, ok := o.(string); ok {
			details = append(details, AssetDetail{Type: "NFTokenOffer", ID: id})
		}
	}
	return details
}

type nftAcceptOffer struct{ base }

func (nftAcceptOffer) EventsLabel() string { return "NFT trade" }

func (n nftAcceptOffer) Description() (string, error) {
	acct, _ := n.r.Account()
	sell, hasSell := n.r.Hash256("NFTokenSellOffer")
	buy, hasBuy := n.r.Hash256("NFTokenBuyOffer")
	switch {
	case hasSell && hasBuy:
		if fee, ok := n.r.Amount("NFTokenBrokerFee"); ok {
			return fmt.Sprintf("%s brokered the trade of sell offer %s against buy offer %s for a fee of %s.",
				acct.Address, sell, buy, fmtAmount(fee)), nil
		}
		return fmt.Sprintf("%s brokered the trade of sell offer %s against buy offer %s.",
			acct.Address, sell, buy), nil
	case hasSell:
		return fmt.Sprintf("%s accepted NFT sell offer %s.", acct.Address, sell), nil
	case hasBuy:
		return fmt.Sprintf("%s accepted NFT buy offer %s.", acct.Address, buy), nil
	default:
		return "", n.r.Missing("NFTokenSellOffer")
	}
}

func (n nftAcceptOffer) AssetDetails() []AssetDetail {
	var details []AssetDetail
	if id, ok := n.r.Hash256("NFTokenSellOffer"); ok {
		details = append(details, AssetDetail{Type: "NFTokenOffer", ID: id})
	}
	if id, ok := n.r.Hash256("NFTokenBuyOffer"); ok {
		details = append(details, AssetDetail{Type: "NFTokenOffer", ID: id})
	}
	return details
}

func nftAsset(b base, field string) []AssetDetail {
	id, ok := b.r.Hash256(field)
	if !ok {
		return nil
	}
	return []AssetDetail{{Type: "NFToken", ID: id}}
}
