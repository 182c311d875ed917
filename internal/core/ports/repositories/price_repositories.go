package repositories

import (
	"context"

	"github.com/SscSPs/pricebook_svc/internal/core/domain"
)

// PriceReader defines read operations for price data
type PriceReader interface {
	// FindPriceByID retrieves a specific price by its ID.
	FindPriceByID(ctx context.Context, priceID string) (*domain.Price, error)

	// ListPrices retrieves a page of prices ordered newest first, returning
	// a token for the next page when more rows exist.
	ListPrices(ctx context.Context, limit int, nextToken *string) ([]domain.Price, *string, error)
}

// PriceWriter defines write operations for price data
type PriceWriter interface {
	// SavePrice persists a new price.
	SavePrice(ctx context.Context, price domain.Price) error

	// UpdatePrice persists changes to an existing price. The update only
	// applies when price.Version still matches the stored row.
	UpdatePrice(ctx context.Context, price domain.Price) error

	// DeletePrice removes a price by its ID.
	DeletePrice(ctx context.Context, priceID string) error
}

// PriceRepositoryFacade combines all price-related repository interfaces
// This is a facade for clients that need access to all operations
type PriceRepositoryFacade interface {
	PriceReader
	PriceWriter
}

// PriceRepositoryWithTx extends PriceRepositoryFacade with transaction capabilities
type PriceRepositoryWithTx interface {
	PriceRepositoryFacade
	TransactionManager
}
