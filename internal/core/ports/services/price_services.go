package services

import (
	"context"

	"github.com/SscSPs/pricebook_svc/internal/core/domain"
	"github.com/SscSPs/pricebook_svc/internal/dto"
)

// PriceReaderSvc defines read operations for price data
type PriceReaderSvc interface {
	// GetPriceByID retrieves a specific price by its ID.
	GetPriceByID(ctx context.Context, priceID string) (*domain.Price, error)

	// ListPrices retrieves a page of prices.
	ListPrices(ctx context.Context, params dto.ListPricesParams) (*dto.ListPricesResponse, error)
}

// PriceWriterSvc defines write operations for price data
type PriceWriterSvc interface {
	// CreatePrice persists a new price.
	CreatePrice(ctx context.Context, req dto.CreatePriceRequest, creatorUserID string) (*domain.Price, error)

	// UpdatePrice applies partial changes to an existing price.
	UpdatePrice(ctx context.Context, priceID string, req dto.UpdatePriceRequest, updaterUserID string) (*domain.Price, error)

	// DeletePrice removes a price.
	DeletePrice(ctx context.Context, priceID string, deleterUserID string) error
}

// PriceSvcFacade combines all price-related service interfaces
type PriceSvcFacade interface {
	PriceReaderSvc
	PriceWriterSvc
}
