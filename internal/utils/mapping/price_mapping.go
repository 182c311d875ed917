package mapping

import (
	"github.com/SscSPs/pricebook_svc/internal/core/domain"
	"github.com/SscSPs/pricebook_svc/internal/models"
	"github.com/SscSPs/pricebook_svc/pkg/currency"
)

// ToModelPrice converts a domain Price to a model Price
func ToModelPrice(d domain.Price) models.Price {
	var discount currency.NullCurrency
	if d.Discount != nil {
		discount = currency.NullCurrency{Currency: *d.Discount, Valid: true}
	}
	return models.Price{
		PriceID:     d.PriceID,
		Name:        d.Name,
		Description: d.Description,
		Amount:      d.Amount,
		Discount:    discount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPrice converts a model Price to a domain Price
func ToDomainPrice(m models.Price) domain.Price {
	var discount *currency.Currency
	if m.Discount.Valid {
		c := m.Discount.Currency
		discount = &c
	}
	return domain.Price{
		PriceID:     m.PriceID,
		Name:        m.Name,
		Description: m.Description,
		Amount:      m.Amount,
		Discount:    discount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPriceSlice converts a slice of model Prices to a slice of domain Prices
func ToDomainPriceSlice(ms []models.Price) []domain.Price {
	ds := make([]domain.Price, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPrice(m)
	}
	return ds
}
