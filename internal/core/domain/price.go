package domain

import (
	"github.com/SscSPs/pricebook_svc/pkg/currency"
)

// Price represents a named monetary amount in the price book.
// Amount is always present; Discount is optional and nil when no discount
// applies.
type Price struct {
	PriceID     string             `json:"priceID"` // Primary Key (UUID)
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Amount      currency.Currency  `json:"amount"`
	Discount    *currency.Currency `json:"discount,omitempty"`
	AuditFields
}

// EffectiveAmount returns the amount after the discount, or the plain amount
// when no discount is set.
func (p Price) EffectiveAmount() currency.Currency {
	if p.Discount == nil {
		return p.Amount
	}
	return currency.NewFloat(p.Amount.Float64() - p.Discount.Float64())
}
