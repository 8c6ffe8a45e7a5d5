package meta

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/LeJamon/goXRPLtx/internal/ledger/amount"
)

// Changes is the realized balance movement of one account across a single
// transaction. Sent and Received hold positive per-asset totals; both empty
// means the account's balances were untouched, which is a valid outcome.
type Changes struct {
	Sent     []amount.Amount
	Received []amount.Amount
}

// Empty reports whether no balance of the account moved.
func (c Changes) Empty() bool {
	return len(c.Sent) == 0 && len(c.Received) == 0
}

// BalanceChanges derives the queried account's balance deltas from the
// affected nodes: AccountRoot entries owned by the account and RippleState
// trust lines it participates in. Deltas are aggregated per asset; positive
// totals land in Received, negative in Sent (as positive values).
func (m *Meta) BalanceChanges(account string) Changes {
	type assetKey struct {
		currency string
		issuer   string
	}
	totals := make(map[assetKey]amount.Amount)
	var keys []assetKey

	add := func(delta amount.Amount) {
		if delta.IsZero() {
			return
		}
		k := assetKey{currency: delta.Currency, issuer: delta.Issuer}
		if existing, ok := totals[k]; ok {
			sum, err := existing.Add(delta)
			if err != nil {
				return
			}
			totals[k] = sum
			return
		}
		totals[k] = delta
		keys = append(keys, k)
	}

	for _, node := range m.Nodes() {
		switch node.LedgerEntryType {
		case "AccountRoot":
			if delta, ok := accountRootDelta(node, account); ok {
				add(delta)
			}
		case "RippleState":
			if delta, ok := rippleStateDelta(node, account); ok {
				add(delta)
			}
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].currency != keys[j].currency {
			return keys[i].currency < keys[j].currency
		}
		return keys[i].issuer < keys[j].issuer
	})

	var changes Changes
	for _, k := range keys {
		total := totals[k]
		if total.IsZero() {
			continue
		}
		if total.IsNegative() {
			changes.Sent = append(changes.Sent, total.Negate())
		} else {
			changes.Received = append(changes.Received, total)
		}
	}
	return changes
}

// accountRootDelta computes the native balance delta of an AccountRoot node
// owned by the queried account.
func accountRootDelta(node *AffectedNode, account string) (amount.Amount, bool) {
	owner, _ := fieldString(node.FinalFields, "Account")
	if owner == "" {
		owner, _ = fieldString(node.PreviousFields, "Account")
	}
	if owner != account {
		return amount.Amount{}, false
	}

	previous, final, ok := balancePair(node)
	if !ok {
		return amount.Amount{}, false
	}

	prev, err := amount.ParseDrops(previous)
	if err != nil {
		return amount.Amount{}, false
	}
	fin, err := amount.ParseDrops(final)
	if err != nil {
		return amount.Amount{}, false
	}
	delta, err := fin.Sub(prev)
	if err != nil {
		return amount.Amount{}, false
	}
	return delta, true
}

// balancePair extracts the previous and final Balance strings of an
// AccountRoot node, treating creation as previous-zero and deletion as
// final-zero.
func balancePair(node *AffectedNode) (previous, final string, ok bool) {
	switch node.Kind {
	case NodeCreated:
		final, ok = fieldString(node.FinalFields, "Balance")
		return "0", final, ok
	case NodeDeleted:
		previous, ok = fieldString(node.PreviousFields, "Balance")
		if !ok {
			previous, ok = fieldString(node.FinalFields, "Balance")
		}
		return previous, "0", ok
	default:
		previous, ok = fieldString(node.PreviousFields, "Balance")
		if !ok {
			// Balance not among the changed fields.
			return "", "", false
		}
		final, ok = fieldString(node.FinalFields, "Balance")
		return previous, final, ok
	}
}

// rippleStateDelta computes the issued-currency delta of a trust line node
// from the queried account's perspective. The stored balance is signed from
// the low party's point of view and must be re-signed for the high party.
func rippleStateDelta(node *AffectedNode, account string) (amount.Amount, bool) {
	lowParty := limitIssuer(node, "LowLimit")
	highParty := limitIssuer(node, "HighLimit")

	var isLow bool
	switch account {
	case lowParty:
		isLow = true
	case highParty:
		isLow = false
	default:
		return amount.Amount{}, false
	}

	previous, final, currency, ok := lineBalancePair(node)
	if !ok {
		return amount.Amount{}, false
	}

	delta := final.Sub(previous)
	if delta.IsZero() {
		return amount.Amount{}, false
	}
	if !isLow {
		delta = delta.Neg()
	}

	counterparty := highParty
	if !isLow {
		counterparty = lowParty
	}
	return amount.Amount{Value: delta, Currency: currency, Issuer: counterparty}, true
}

// lineBalancePair extracts the previous and final trust line balances and
// the line's currency.
func lineBalancePair(node *AffectedNode) (previous, final decimal.Decimal, currency string, ok bool) {
	parse := func(fields map[string]any) (decimal.Decimal, string, bool) {
		balance, found := fields["Balance"].(map[string]any)
		if !found {
			return decimal.Zero, "", false
		}
		value, _ := balance["value"].(string)
		cur, _ := balance["currency"].(string)
		d, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero, "", false
		}
		return d, cur, true
	}

	switch node.Kind {
	case NodeCreated:
		final, currency, ok = parse(node.FinalFields)
		return decimal.Zero, final, currency, ok
	case NodeDeleted:
		previous, currency, ok = parse(node.PreviousFields)
		if !ok {
			previous, currency, ok = parse(node.FinalFields)
		}
		return previous, decimal.Zero, currency, ok
	default:
		previous, currency, ok = parse(node.PreviousFields)
		if !ok {
			return decimal.Zero, decimal.Zero, "", false
		}
		final, _, ok = parse(node.FinalFields)
		return previous, final, currency, ok
	}
}

// limitIssuer returns the issuer address of a LowLimit/HighLimit field,
// which identifies the line's two parties.
func limitIssuer(node *AffectedNode, name string) string {
	for _, fields := range []map[string]any{node.FinalFields, node.PreviousFields} {
		if limit, ok := fields[name].(map[string]any); ok {
			if issuer, ok := limit["issuer"].(string); ok {
				return issuer
			}
		}
	}
	return ""
}

func fieldString(fields map[string]any, name string) (string, bool) {
	if fields == nil {
		return "", false
	}
	s, ok := fields[name].(string)
	return s, ok
}
