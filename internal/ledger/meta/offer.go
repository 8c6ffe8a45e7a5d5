package meta

import "github.com/LeJamon/goXRPLtx/internal/ledger/amount"

// OfferStatus is the lifecycle state of an offer as observed from one
// transaction's metadata.
type OfferStatus int

const (
	StatusUnknown OfferStatus = iota
	StatusCreated
	StatusPartiallyFilled
	StatusFilled
	StatusCancelled
)

func (s OfferStatus) String() string {
	switch s {
	case StatusCreated:
		return "CREATED"
	case StatusPartiallyFilled:
		return "PARTIALLY_FILLED"
	case StatusFilled:
		return "FILLED"
	case StatusCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// OfferStatus classifies what happened to the offer with the given ledger
// index, owned by owner. The index must be computed from the owner and the
// creating transaction's sequence (keylet.Offer); offers do not self-report
// the object identifiers they create.
func (m *Meta) OfferStatus(owner, offerIndex string) OfferStatus {
	node := m.Node(offerIndex)

	if node == nil {
		// The offer never became a resting object. Balance movement on both
		// sides of the owner means the declared exchange fully executed by
		// immediate matching.
		changes := m.BalanceChanges(owner)
		if len(changes.Sent) > 0 && len(changes.Received) > 0 {
			return StatusFilled
		}
		return StatusUnknown
	}

	switch node.Kind {
	case NodeDeleted:
		// Fully consumed or explicitly removed. Consumption leaves balance
		// mutations in the offer's own currencies; a plain cancel leaves
		// only the fee debit.
		if m.offerConsumed(node, owner) {
			return StatusFilled
		}
		return StatusCancelled
	case NodeCreated:
		return StatusCreated
	default:
		if fieldChanged(node, "TakerGets") || fieldChanged(node, "TakerPays") {
			return StatusPartiallyFilled
		}
		// Modified without amount movement (e.g. directory bookkeeping):
		// the offer still rests untouched.
		return StatusCreated
	}
}

func fieldChanged(node *AffectedNode, name string) bool {
	_, ok := node.PreviousFields[name]
	return ok
}

// offerConsumed reports whether the owner's balance mutations match the
// deleted offer's legs. The owner's account root is debited the transaction
// fee on every outcome, so a lone native Sent entry is not consumption
// evidence; receiving the TakerPays asset (or paying out a non-native
// TakerGets asset) is.
func (m *Meta) offerConsumed(node *AffectedNode, owner string) bool {
	changes := m.BalanceChanges(owner)

	gets, gok := legAsset(node, "TakerGets")
	pays, pok := legAsset(node, "TakerPays")
	if !gok || !pok {
		return !changes.Empty()
	}

	for _, a := range changes.Received {
		if a.Currency == pays.Currency {
			return true
		}
	}
	for _, a := range changes.Sent {
		if !a.IsNative() && a.Currency == gets.Currency {
			return true
		}
	}
	return false
}

// legAsset extracts one exchange leg of an offer node. Amounts on deleted
// nodes are typically zeroed out but still carry the asset identity.
func legAsset(node *AffectedNode, name string) (amount.Amount, bool) {
	for _, fields := range []map[string]any{node.FinalFields, node.PreviousFields} {
		if raw, ok := fields[name]; ok {
			if a, err := amount.Parse(raw); err == nil {
				return a, true
			}
		}
	}
	return amount.Amount{}, false
}
