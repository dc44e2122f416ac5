package model

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is either a known decimal amount or unknown. Unknown comes from a
// price field that could not be read as a number and has no numeric value.
type Price struct {
	amount decimal.Decimal
	known  bool
}

// Known wraps a numeric price.
func Known(amount decimal.Decimal) Price {
	return Price{amount: amount, known: true}
}

// Unknown is the price of a malformed or missing field.
func Unknown() Price {
	return Price{}
}

// KnownFloat is a convenience for literal prices.
func KnownFloat(f float64) Price {
	return Known(decimal.NewFromFloat(f))
}

func (p Price) IsKnown() bool {
	return p.known
}

// Amount returns the decimal amount and whether it is known.
func (p Price) Amount() (decimal.Decimal, bool) {
	return p.amount, p.known
}

// Equal compares two prices; two unknown prices are equal.
func (p Price) Equal(o Price) bool {
	if p.known != o.known {
		return false
	}
	return !p.known || p.amount.Equal(o.amount)
}

func (p Price) String() string {
	if !p.known {
		return "unknown"
	}
	return p.amount.StringFixed(2)
}

// MarshalJSON writes a bare number, or null when unknown.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.known {
		return []byte("null"), nil
	}
	return []byte(p.amount.String()), nil
}

// Prices outside these bounds are treated as unknown; rounding a decimal with
// an extreme exponent rescales it through a huge big.Int.
const (
	maxPriceExponent = 12
	maxPriceDigits   = 24
)

func bounded(d decimal.Decimal) Price {
	exp := d.Exponent()
	if exp > maxPriceExponent || exp < -maxPriceExponent || d.NumDigits() > maxPriceDigits {
		return Unknown()
	}
	return Known(d)
}

// ParsePrice coerces a raw JSON value into a Price. Numbers and numeric
// strings become known prices; everything else is unknown.
func ParsePrice(v any) Price {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return Unknown()
		}
		return bounded(decimal.NewFromFloat(t))
	case int:
		return Known(decimal.NewFromInt(int64(t)))
	case int64:
		return Known(decimal.NewFromInt(t))
	case json.Number:
		return parsePriceString(t.String())
	case string:
		return parsePriceString(t)
	case decimal.Decimal:
		return bounded(t)
	default:
		return Unknown()
	}
}

func parsePriceString(s string) Price {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown()
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Unknown()
	}
	return bounded(d)
}
