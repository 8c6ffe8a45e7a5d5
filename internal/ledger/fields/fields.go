package fields

import (
	"encoding/hex"
	"fmt"
	"math"

	addresscodec "github.com/LeJamon/goXRPLtx/internal/codec/addresscodec"
	"github.com/LeJamon/goXRPLtx/internal/ledger/amount"
)

// Type identifies the semantic type of a transaction field. Coercion from
// the raw JSON value is driven by this tag, not by runtime type inspection
// of the target.
type Type int

const (
	TypeAmount Type = iota
	TypeUInt32
	TypeUInt64
	TypeHash256
	TypeAccountID
	TypeBlob
	TypeFlags
	TypeArray
)

// Codec is a pure transform applied after type coercion, e.g. a ledger
// timestamp into calendar time. Decode and Encode must round-trip.
type Codec interface {
	Decode(any) (any, error)
	Encode(any) (any, error)
}

// Config describes how one raw field is validated and transformed.
type Config struct {
	Required bool
	Type     Type
	Codec    Codec
}

// Def binds a field name to its config. Tables are declared once per record
// kind and are immutable.
type Def struct {
	Name string
	Config
}

// Table is the ordered field descriptor set of a record kind.
type Table []Def

// Coerce validates a raw JSON value against the semantic type and returns
// its typed representation.
func Coerce(t Type, raw any) (any, error) {
	switch t {
	case TypeAmount:
		return amount.Parse(raw)
	case TypeUInt32, TypeFlags:
		return coerceUInt32(raw)
	case TypeUInt64:
		return coerceUInt64(raw)
	case TypeHash256:
		return coerceHash256(raw)
	case TypeAccountID:
		return coerceAccountID(raw)
	case TypeBlob:
		return coerceBlob(raw)
	case TypeArray:
		arr, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("expected array, got %T", raw)
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unknown field type %d", t)
	}
}

func coerceUInt32(raw any) (uint32, error) {
	f, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("expected number, got %T", raw)
	}
	if f < 0 || f > math.MaxUint32 || f != math.Trunc(f) {
		return 0, fmt.Errorf("value %v out of uint32 range", f)
	}
	return uint32(f), nil
}

func coerceUInt64(raw any) (uint64, error) {
	switch v := raw.(type) {
	case float64:
		if v < 0 || v != math.Trunc(v) {
			return 0, fmt.Errorf("value %v out of uint64 range", v)
		}
		return uint64(v), nil
	case string:
		// Large 64-bit values travel as hex strings.
		b, err := hex.DecodeString(v)
		if err != nil || len(b) > 8 {
			return 0, fmt.Errorf("invalid uint64 hex %q", v)
		}
		var out uint64
		for _, c := range b {
			out = out<<8 | uint64(c)
		}
		return out, nil
	default:
		return 0, fmt.Errorf("expected number or hex string, got %T", raw)
	}
}

func coerceHash256(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", raw)
	}
	if len(s) != 64 {
		return "", fmt.Errorf("hash must be 64 hex chars, got %d", len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("invalid hash hex: %w", err)
	}
	return s, nil
}

func coerceAccountID(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", raw)
	}
	if _, _, err := addresscodec.DecodeAnyAddress(s); err != nil {
		return "", err
	}
	return s, nil
}

func coerceBlob(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", raw)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("invalid blob hex: %w", err)
	}
	return s, nil
}
