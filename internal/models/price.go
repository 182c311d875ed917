package models

import (
	"github.com/SscSPs/pricebook_svc/pkg/currency"
)

// Price represents a price book row.
// Amount and discount are stored in DOUBLE PRECISION columns; the currency
// types carry the conversion to and from the raw float column value.
type Price struct {
	PriceID     string                `db:"price_id"`
	Name        string                `db:"name"`
	Description string                `db:"description"`
	Amount      currency.Currency     `db:"amount"`
	Discount    currency.NullCurrency `db:"discount"` // Nullable
	AuditFields                       // Embed common audit fields
}
