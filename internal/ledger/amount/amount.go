package amount

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// NativeCurrency is the currency code of the native asset.
	NativeCurrency = "XRP"

	// DropsPerXRP is the number of indivisible drops in one XRP.
	DropsPerXRP = 1_000_000

	// MaxIssuedPrecision is the protocol ceiling on significant decimal
	// digits for issued currency values.
	MaxIssuedPrecision = 15
)

var dropsPerXRP = decimal.NewFromInt(DropsPerXRP)

// Amount is a monetary value: either native XRP or an issued currency with
// an explicit issuer. The value is held as an exact decimal; XRP values are
// expressed in XRP (not drops).
type Amount struct {
	Value    decimal.Decimal
	Currency string
	Issuer   string
}

// FromDrops builds a native amount from a drop count.
func FromDrops(drops int64) Amount {
	return Amount{
		Value:    decimal.NewFromInt(drops).Div(dropsPerXRP),
		Currency: NativeCurrency,
	}
}

// ParseDrops parses a decimal string of drops into a native amount.
func ParseDrops(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid drops value %q: %w", s, err)
	}
	return Amount{
		Value:    d.Div(dropsPerXRP),
		Currency: NativeCurrency,
	}, nil
}

// NewIssued builds an issued currency amount from a decimal string value.
func NewIssued(value, currency, issuer string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount value %q: %w", value, err)
	}
	return Amount{Value: d, Currency: currency, Issuer: issuer}, nil
}

// Parse converts a wire-form amount into an Amount. On the wire a plain
// JSON string is a drop count of XRP; an object carries value, currency and
// issuer for an issued currency.
func Parse(raw any) (Amount, error) {
	switch v := raw.(type) {
	case string:
		return ParseDrops(v)
	case map[string]any:
		value, _ := v["value"].(string)
		currency, _ := v["currency"].(string)
		issuer, _ := v["issuer"].(string)
		if value == "" || currency == "" {
			return Amount{}, errors.New("amount object requires value and currency")
		}
		if currency == NativeCurrency && issuer == "" {
			// Some sources spell native amounts as objects in XRP units.
			d, err := decimal.NewFromString(value)
			if err != nil {
				return Amount{}, fmt.Errorf("invalid amount value %q: %w", value, err)
			}
			return Amount{Value: d, Currency: NativeCurrency}, nil
		}
		return NewIssued(value, currency, issuer)
	default:
		return Amount{}, fmt.Errorf("unsupported amount representation %T", raw)
	}
}

// IsNative reports whether the amount is denominated in the native asset.
func (a Amount) IsNative() bool {
	return a.Currency == NativeCurrency && a.Issuer == ""
}

// Drops returns the native value as a drop count. Issued amounts have no
// drop representation.
func (a Amount) Drops() (int64, error) {
	if !a.IsNative() {
		return 0, errors.New("not a native amount")
	}
	return a.Value.Mul(dropsPerXRP).IntPart(), nil
}

// IsZero reports whether the value is exactly zero.
func (a Amount) IsZero() bool { return a.Value.IsZero() }

// IsNegative reports whether the value is below zero.
func (a Amount) IsNegative() bool { return a.Value.IsNegative() }

// Negate returns the amount with its sign flipped.
func (a Amount) Negate() Amount {
	return Amount{Value: a.Value.Neg(), Currency: a.Currency, Issuer: a.Issuer}
}

// Abs returns the amount with a non-negative value.
func (a Amount) Abs() Amount {
	return Amount{Value: a.Value.Abs(), Currency: a.Currency, Issuer: a.Issuer}
}

// SameAsset reports whether two amounts share currency and issuer.
func (a Amount) SameAsset(b Amount) bool {
	return a.Currency == b.Currency && a.Issuer == b.Issuer
}

// Add sums two amounts of the same asset.
func (a Amount) Add(b Amount) (Amount, error) {
	if !a.SameAsset(b) {
		return Amount{}, errors.New("cannot add amounts of different assets")
	}
	return Amount{Value: a.Value.Add(b.Value), Currency: a.Currency, Issuer: a.Issuer}, nil
}

// Sub subtracts b from a for two amounts of the same asset.
func (a Amount) Sub(b Amount) (Amount, error) {
	return a.Add(b.Negate())
}

// Compare returns -1, 0 or 1 as a is less than, equal to or greater than b.
func (a Amount) Compare(b Amount) int {
	return a.Value.Cmp(b.Value)
}

// String renders the value for display and serialization. Issued values are
// capped at the protocol's 15 significant digits; native values are exact.
func (a Amount) String() string {
	if a.IsNative() {
		return a.Value.String()
	}
	return roundSignificant(a.Value, MaxIssuedPrecision).String()
}

// roundSignificant rounds d to at most the given number of significant
// decimal digits.
func roundSignificant(d decimal.Decimal, digits int32) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	intDigits := int32(d.NumDigits()) + d.Exponent()
	return d.Round(digits - intDigits)
}

// MarshalJSON renders the wire form: a drop string for native amounts, an
// object for issued amounts.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.IsNative() {
		return json.Marshal(a.Value.Mul(dropsPerXRP).String())
	}
	return json.Marshal(map[string]string{
		"value":    a.String(),
		"currency": a.Currency,
		"issuer":   a.Issuer,
	})
}

// Rate prices the issued side of an exchange in native-asset terms. For a
// native/issued pair the result is always "native units per issued unit"
// regardless of which side is native; for an issued/issued pair it is the
// plain counter/base ratio takerPays/takerGets.
func Rate(takerGets, takerPays Amount) decimal.Decimal {
	if takerGets.IsZero() || takerPays.IsZero() {
		return decimal.Zero
	}
	if takerGets.IsNative() {
		return takerGets.Value.Div(takerPays.Value)
	}
	return takerPays.Value.Div(takerGets.Value)
}
