package dto

import (
	"time"

	"github.com/SscSPs/pricebook_svc/internal/core/domain"
	"github.com/SscSPs/pricebook_svc/pkg/currency"
)

// CreatePriceRequest defines the data needed to create a new price.
// Amount and discount accept either a JSON number or a quoted decimal string.
type CreatePriceRequest struct {
	Name        string             `json:"name" binding:"required,notblank,max=255"`
	Description string             `json:"description" binding:"max=1024"`
	Amount      currency.Currency  `json:"amount" binding:"required"`
	Discount    *currency.Currency `json:"discount"`
}

// UpdatePriceRequest defines the data allowed for updating a price.
// Using pointers to differentiate between omitted fields and zero-value fields.
// RemoveDiscount clears an existing discount; it wins over Discount if both
// are supplied.
type UpdatePriceRequest struct {
	Name           *string            `json:"name" binding:"omitempty,notblank,max=255"`
	Description    *string            `json:"description" binding:"omitempty,max=1024"`
	Amount         *currency.Currency `json:"amount"`
	Discount       *currency.Currency `json:"discount"`
	RemoveDiscount bool               `json:"removeDiscount"`
}

// ListPricesParams defines query parameters for listing prices.
type ListPricesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// PriceResponse defines the data returned for a price. Monetary fields
// marshal as their canonical fixed-scale strings.
type PriceResponse struct {
	PriceID       string             `json:"priceID"`
	Name          string             `json:"name"`
	Description   string             `json:"description,omitempty"`
	Amount        currency.Currency  `json:"amount"`
	Discount      *currency.Currency `json:"discount,omitempty"`
	Effective     currency.Currency  `json:"effectiveAmount"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
	Version       int64              `json:"version"`
}

// ListPricesResponse wraps a page of prices along with the pagination token.
type ListPricesResponse struct {
	Prices    []PriceResponse `json:"prices"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToPriceResponse converts a domain.Price to PriceResponse DTO
func ToPriceResponse(p *domain.Price) PriceResponse {
	return PriceResponse{
		PriceID:       p.PriceID,
		Name:          p.Name,
		Description:   p.Description,
		Amount:        p.Amount,
		Discount:      p.Discount,
		Effective:     p.EffectiveAmount(),
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
		Version:       p.Version,
	}
}

// ToListPricesResponse converts a slice of domain.Price to ListPricesResponse DTO
func ToListPricesResponse(prices []domain.Price, nextToken *string) ListPricesResponse {
	res := make([]PriceResponse, len(prices))
	for i, p := range prices {
		res[i] = ToPriceResponse(&p)
	}
	return ListPricesResponse{
		Prices:    res,
		NextToken: nextToken,
	}
}
