package currency

import (
	"database/sql/driver"
	"fmt"
)

// The storage contract: amounts live in a native double-precision column.
// Writing hands the engine the raw float64 unchanged; reading rebuilds a
// Currency at the default scale, discarding whatever precision/scale the
// source column type declared. Fixed-point DECIMAL columns must be widened
// to a float by the engine itself (CAST) before the value reaches Scan —
// decimal text is never parsed here.

var (
	_ driver.Valuer = Currency{}
	_ driver.Valuer = NullCurrency{}
)

// Value implements driver.Valuer. It emits the raw stored amount for the
// engine's float column writer. It never fails: constructed Currency values
// are always finite.
func (c Currency) Value() (driver.Value, error) {
	return c.value, nil
}

// Scan implements sql.Scanner. It accepts the engine's native numeric column
// values: float64 directly, and int64 widened the way the engine's own
// float decoder would widen an integer-typed cell. The decoded amount always
// gets the default scale.
//
// Scanning SQL NULL into a plain Currency is a schema mismatch and returns
// an error; nullable columns belong in a NullCurrency.
func (c *Currency) Scan(src any) error {
	switch v := src.(type) {
	case float64:
		*c = NewFloat(v)
	case int64:
		*c = NewFloat(float64(v))
	case nil:
		return fmt.Errorf("cannot scan NULL into currency.Currency: use currency.NullCurrency for nullable columns")
	default:
		return fmt.Errorf("cannot scan %T into currency.Currency: expected a float column value", src)
	}
	return nil
}

// NullCurrency represents a Currency that may be absent, mirroring the
// sql.Null* wrappers. Valid is false when the column was SQL NULL; in that
// case Currency is the zero value and was never constructed from a column
// value.
type NullCurrency struct {
	Currency Currency
	Valid    bool
}

// Scan implements sql.Scanner. SQL NULL yields Valid=false without error;
// anything else decodes exactly as Currency.Scan does.
func (n *NullCurrency) Scan(src any) error {
	if src == nil {
		n.Currency, n.Valid = Currency{}, false
		return nil
	}
	if err := n.Currency.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Value implements driver.Valuer, emitting SQL NULL when the slot is empty.
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}
