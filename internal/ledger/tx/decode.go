package tx

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/LeJamon/goXRPLtx/internal/ledger/fields"
	"github.com/LeJamon/goXRPLtx/internal/ledger/meta"
)

// Decode builds a Record from a raw transaction JSON document and its
// optional execution metadata. Decoding is deterministic and has no side
// effects; the same inputs always yield an equivalent record.
func Decode(rawTx, rawMeta []byte) (*Record, error) {
	var raw map[string]any
	if err := json.Unmarshal(rawTx, &raw); err != nil {
		return nil, fmt.Errorf("invalid transaction document: %w", err)
	}

	r := &Record{raw: raw, typed: make(map[string]any)}

	if len(rawMeta) > 0 {
		m, err := meta.Parse(rawMeta)
		if err != nil {
			return nil, err
		}
		r.meta = m
	}

	typeName, hasType := raw["TransactionType"].(string)
	switch {
	case !hasType:
		r.category = CategoryPseudo
		r.kind = classifyPseudo(raw)
		decodeLoose(r)
		return r, nil
	case !KnownKind(Kind(typeName)):
		r.category = CategoryFallback
		r.kind = Kind(typeName)
		decodeLoose(r)
		return r, nil
	}

	r.kind = Kind(typeName)
	r.category = CategoryGenuine
	if err := applyTable(r, commonFields); err != nil {
		return nil, err
	}
	if err := applyTable(r, schemas[r.kind]); err != nil {
		return nil, err
	}
	return r, nil
}

// classifyPseudo names a typeless signing artifact by its payload shape. A
// channel claim authorization carries the channel identifier; anything else
// is a bare sign-in challenge.
func classifyPseudo(raw map[string]any) Kind {
	if _, ok := raw["Channel"]; ok {
		return KindPaymentChannelAuthorize
	}
	return KindSignIn
}

func applyTable(r *Record, table fields.Table) error {
	for _, d := range table {
		rawVal, present := r.raw[d.Name]
		if !present {
			if d.Required {
				return &MalformedRecordError{
					Kind:   string(r.kind),
					Field:  d.Name,
					Reason: "required field absent",
				}
			}
			continue
		}
		typed, err := fields.Coerce(d.Type, rawVal)
		if err != nil {
			return &MalformedRecordError{
				Kind:   string(r.kind),
				Field:  d.Name,
				Reason: err.Error(),
			}
		}
		if d.Codec != nil {
			typed, err = d.Codec.Decode(typed)
			if err != nil {
				return &MalformedRecordError{
					Kind:   string(r.kind),
					Field:  d.Name,
					Reason: err.Error(),
				}
			}
		}
		r.typed[d.Name] = typed
	}
	return nil
}

// decodeLoose populates typed values for fallback and pseudo records on a
// best-effort basis: common fields plus a few well-known names, with
// coercion failures skipped rather than fatal.
func decodeLoose(r *Record) {
	loose := append(fields.Table{}, commonFields...)
	loose = append(loose,
		def("Amount", fields.TypeAmount),
		def("Destination", fields.TypeAccountID),
		def("DestinationTag", fields.TypeUInt32),
		def("Channel", fields.TypeHash256),
	)
	for _, d := range loose {
		rawVal, present := r.raw[d.Name]
		if !present {
			continue
		}
		if typed, err := fields.Coerce(d.Type, rawVal); err == nil {
			r.typed[d.Name] = typed
		}
	}
}

func formatDrops(drops int64) string {
	return strconv.FormatInt(drops, 10)
}
