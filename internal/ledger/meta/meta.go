package meta

import (
	"encoding/json"
	"fmt"

	"github.com/LeJamon/goXRPLtx/internal/ledger/amount"
)

// NodeKind distinguishes how a transaction touched a ledger object.
type NodeKind int

const (
	NodeCreated NodeKind = iota
	NodeModified
	NodeDeleted
)

// AffectedNode describes one ledger object's before/after state for one
// transaction. Nodes stand alone, keyed by ledger index; they never
// reference each other.
type AffectedNode struct {
	Kind            NodeKind
	LedgerEntryType string
	LedgerIndex     string

	// PreviousFields holds the pre-transaction values of changed fields
	// (modified nodes only).
	PreviousFields map[string]any

	// FinalFields holds the post-transaction state. For created nodes this
	// is the NewFields payload.
	FinalFields map[string]any
}

// Meta is the parsed execution metadata of a transaction: a flat collection
// of affected nodes plus the engine result and delivered amount.
type Meta struct {
	TransactionResult string
	DeliveredAmount   *amount.Amount

	nodes map[string]*AffectedNode
	order []string
}

type rawNode struct {
	LedgerEntryType string         `json:"LedgerEntryType"`
	LedgerIndex     string         `json:"LedgerIndex"`
	PreviousFields  map[string]any `json:"PreviousFields"`
	FinalFields     map[string]any `json:"FinalFields"`
	NewFields       map[string]any `json:"NewFields"`
}

type rawMeta struct {
	AffectedNodes []map[string]rawNode `json:"AffectedNodes"`
	// Both spellings appear in the wild depending on the API layer.
	TransactionResult string `json:"TransactionResult"`
	DeliveredAmount   any    `json:"DeliveredAmount"`
	DeliveredAmountLC any    `json:"delivered_amount"`
}

// Parse decodes a raw metadata JSON document.
func Parse(raw []byte) (*Meta, error) {
	var rm rawMeta
	if err := json.Unmarshal(raw, &rm); err != nil {
		return nil, fmt.Errorf("invalid metadata: %w", err)
	}

	m := &Meta{
		TransactionResult: rm.TransactionResult,
		nodes:             make(map[string]*AffectedNode, len(rm.AffectedNodes)),
	}

	for _, entry := range rm.AffectedNodes {
		for wrapper, rn := range entry {
			node := &AffectedNode{
				LedgerEntryType: rn.LedgerEntryType,
				LedgerIndex:     rn.LedgerIndex,
				PreviousFields:  rn.PreviousFields,
				FinalFields:     rn.FinalFields,
			}
			switch wrapper {
			case "CreatedNode":
				node.Kind = NodeCreated
				node.FinalFields = rn.NewFields
			case "ModifiedNode":
				node.Kind = NodeModified
			case "DeletedNode":
				node.Kind = NodeDeleted
			default:
				continue
			}
			// A repeated ledger index keeps the last node but must not
			// appear twice in document order, or deltas double-count.
			if _, seen := m.nodes[node.LedgerIndex]; !seen {
				m.order = append(m.order, node.LedgerIndex)
			}
			m.nodes[node.LedgerIndex] = node
		}
	}

	delivered := rm.DeliveredAmount
	if delivered == nil {
		delivered = rm.DeliveredAmountLC
	}
	if delivered != nil {
		if a, err := amount.Parse(delivered); err == nil {
			m.DeliveredAmount = &a
		}
	}
	return m, nil
}

// Node returns the affected node with the given ledger index, or nil.
func (m *Meta) Node(ledgerIndex string) *AffectedNode {
	return m.nodes[ledgerIndex]
}

// Nodes returns the affected nodes in document order.
func (m *Meta) Nodes() []*AffectedNode {
	out := make([]*AffectedNode, 0, len(m.order))
	for _, idx := range m.order {
		out = append(out, m.nodes[idx])
	}
	return out
}
