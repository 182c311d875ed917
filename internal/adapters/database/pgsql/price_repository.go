package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pricebook_svc/internal/apperrors"
	"github.com/SscSPs/pricebook_svc/internal/core/domain"
	portsrepo "github.com/SscSPs/pricebook_svc/internal/core/ports/repositories"
	"github.com/SscSPs/pricebook_svc/internal/models"
	"github.com/SscSPs/pricebook_svc/internal/utils/mapping"
	"github.com/SscSPs/pricebook_svc/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

// PriceRepository persists prices. Amount and discount live in DOUBLE
// PRECISION columns; the currency types on the model handle the encode and
// decode at the driver boundary.
type PriceRepository struct {
	BaseRepository
}

// NewPriceRepository creates a new repository for price data.
func NewPriceRepository(pool *pgxpool.Pool) *PriceRepository {
	return &PriceRepository{BaseRepository{Pool: pool}}
}

// Compile-time interface check
var _ portsrepo.PriceRepositoryWithTx = (*PriceRepository)(nil)

const priceColumns = `price_id, name, description, amount, discount, version, created_at, created_by, last_updated_at, last_updated_by`

func scanPrice(row pgx.CollectableRow) (models.Price, error) {
	var m models.Price
	err := row.Scan(
		&m.PriceID,
		&m.Name,
		&m.Description,
		&m.Amount,
		&m.Discount,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePrice inserts a new price.
func (r *PriceRepository) SavePrice(ctx context.Context, price domain.Price) error {
	m := mapping.ToModelPrice(price)

	query := `
		INSERT INTO prices (` + priceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PriceID,
		m.Name,
		m.Description,
		m.Amount,
		m.Discount,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("price name %q: %w", price.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save price %s: %w", price.PriceID, err)
	}
	return nil
}

// FindPriceByID retrieves a price by its ID.
func (r *PriceRepository) FindPriceByID(ctx context.Context, priceID string) (*domain.Price, error) {
	query := `
		SELECT ` + priceColumns + `
		FROM prices
		WHERE price_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, priceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query price %s: %w", priceID, err)
	}

	m, err := pgx.CollectOneRow(rows, scanPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Map db not found error to application specific error
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find price by ID %s: %w", priceID, err)
	}

	d := mapping.ToDomainPrice(m)
	return &d, nil
}

// ListPrices retrieves a paginated list of prices using token-based pagination.
// It returns the prices, a token for the next page (if any), and an error.
func (r *PriceRepository) ListPrices(ctx context.Context, limit int, nextToken *string) ([]domain.Price, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine if there's a next page.
	fetchLimit := limit + 1

	// Ordering must be stable: created_at DESC with price_id DESC as the
	// tie-breaker, matching the cursor tuple.
	baseQuery := `
		SELECT ` + priceColumns + `
		FROM prices
	`
	orderByClause := `ORDER BY created_at DESC, price_id DESC`

	var rows pgx.Rows
	var err error

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastPriceID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, decodeErr)
		}

		// Tuple comparison keeps the cursor condition concise and index-friendly
		query := baseQuery + `WHERE (created_at, price_id) < ($1, $2) ` + orderByClause + ` LIMIT $3;`
		rows, err = r.Pool.Query(ctx, query, lastCreatedAt, lastPriceID, fetchLimit)
	} else {
		query := baseQuery + orderByClause + ` LIMIT $1;`
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query prices: %w", err)
	}

	modelPrices, err := pgx.CollectRows(rows, scanPrice)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan prices: %w", err)
	}

	var nextTokenVal *string
	if len(modelPrices) > limit {
		modelPrices = modelPrices[:limit]
		last := modelPrices[len(modelPrices)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.PriceID)
		nextTokenVal = &token
	}

	return mapping.ToDomainPriceSlice(modelPrices), nextTokenVal, nil
}

// UpdatePrice persists changes to an existing price inside a transaction,
// guarded by optimistic locking on the version column.
func (r *PriceRepository) UpdatePrice(ctx context.Context, price domain.Price) error {
	m := mapping.ToModelPrice(price)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE prices
		SET name = $1,
			description = $2,
			amount = $3,
			discount = $4,
			version = version + 1,
			last_updated_at = $5,
			last_updated_by = $6
		WHERE price_id = $7 AND version = $8;
	`
	tag, err := tx.Exec(ctx, query,
		m.Name,
		m.Description,
		m.Amount,
		m.Discount,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.PriceID,
		m.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("price name %q: %w", price.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update price %s: %w", price.PriceID, err)
	}

	if tag.RowsAffected() == 0 {
		// Distinguish a missing row from a stale version
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM prices WHERE price_id = $1)`, m.PriceID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check price %s existence: %w", price.PriceID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("price %s version %d: %w", price.PriceID, price.Version, apperrors.ErrConflict)
	}

	return r.Commit(ctx, tx)
}

// DeletePrice removes a price by its ID.
func (r *PriceRepository) DeletePrice(ctx context.Context, priceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM prices WHERE price_id = $1;`, priceID)
	if err != nil {
		return fmt.Errorf("failed to delete price %s: %w", priceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
