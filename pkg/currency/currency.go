// Package currency provides the monetary value type used across the service.
//
// A Currency carries the raw float64 amount exactly as the storage layer
// holds it, together with a display scale. Rounding happens only when the
// value is rendered, using round-half-away-from-zero at the configured
// scale, so the stored magnitude survives storage round trips bit for bit.
package currency

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultScale is the number of fractional digits used for rounding and
// display when no explicit scale is given at construction.
const DefaultScale uint32 = 2

// Currency represents a monetary amount at a fixed display scale.
// The zero value is a zero amount at scale 0 and renders as "0"; use the
// constructors to obtain the default two-digit scale.
// Two Currency values are equal iff both the amount and the scale are equal,
// so the type is safe to compare with ==.
type Currency struct {
	value float64
	scale uint32
}

// NewFloat returns a Currency holding value at the default scale.
// The amount is stored unrounded; only rendering applies the scale.
// Non-finite input (NaN, ±Inf) is normalized to zero: the constructor has no
// error path, and the backing stores degrade non-finite amounts anyway.
func NewFloat(value float64) Currency {
	return NewFloatWithScale(value, DefaultScale)
}

// NewFloatWithScale returns a Currency holding value, rounded and rendered
// at the given number of fractional digits. The same non-finite policy as
// NewFloat applies.
func NewFloatWithScale(value float64, scale uint32) Currency {
	return Currency{value: finiteOrZero(value), scale: scale}
}

// NewString parses a decimal amount from its textual form and returns a
// Currency at the default scale. Unlike the storage path, which only ever
// sees engine-native floats, this constructor is the one place textual
// amounts are accepted (API payloads, fixtures).
func NewString(s string) (Currency, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Currency{}, fmt.Errorf("failed to parse currency amount %q: %w", s, err)
	}
	return NewFloat(d.InexactFloat64()), nil
}

// Float64 returns the raw stored amount without any rounding applied.
func (c Currency) Float64() float64 {
	return c.value
}

// Scale returns the number of fractional digits used for rounding/display.
func (c Currency) Scale() uint32 {
	return c.scale
}

// Decimal returns the amount rounded at the instance scale as a
// shopspring decimal, for callers that need precise follow-up arithmetic.
func (c Currency) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(c.value).Round(int32(c.scale))
}

// String renders the amount rounded half-away-from-zero at the instance
// scale, with exactly that many fractional digits, trailing zeros included,
// and a single leading '-' for negative amounts.
func (c Currency) String() string {
	return decimal.NewFromFloat(c.value).StringFixed(int32(c.scale))
}

// Equal reports whether both the amount and the scale match.
func (c Currency) Equal(other Currency) bool {
	return c == other
}

// IsNegative reports whether the stored amount is below zero.
func (c Currency) IsNegative() bool {
	return c.value < 0
}

// MarshalJSON renders the canonical fixed-scale text as a JSON string, so
// clients never re-round the amount through their own float parsing.
func (c Currency) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON accepts the amount either as a JSON number or as a quoted
// decimal string. The decoded value gets the default scale.
func (c *Currency) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	parsed, err := NewString(strings.Trim(s, `"`))
	if err != nil {
		return fmt.Errorf("failed to unmarshal currency amount: %w", err)
	}
	*c = parsed
	return nil
}

// finiteOrZero collapses NaN and ±Inf to zero so every constructed Currency
// holds a finite amount.
func finiteOrZero(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}
