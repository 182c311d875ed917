package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pricebook_svc/internal/apperrors"
	"github.com/SscSPs/pricebook_svc/internal/core/domain"
	portsrepo "github.com/SscSPs/pricebook_svc/internal/core/ports/repositories"
	"github.com/SscSPs/pricebook_svc/internal/dto"
	"github.com/SscSPs/pricebook_svc/pkg/currency"
	"github.com/google/uuid"
)

// PriceService provides business logic for price book entries.
type PriceService struct {
	BaseService
	priceRepo portsrepo.PriceRepositoryFacade
}

// NewPriceService creates a new PriceService.
func NewPriceService(priceRepo portsrepo.PriceRepositoryFacade) *PriceService {
	return &PriceService{priceRepo: priceRepo}
}

// validateAmounts enforces the shared invariants on an amount/discount pair.
// Amounts must not be negative and a discount must not exceed the amount.
// Comparison is done on the rounded decimals, which is what users see.
func validateAmounts(amount currency.Currency, discount *currency.Currency) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if discount == nil {
		return nil
	}
	if discount.IsNegative() {
		return fmt.Errorf("%w: discount must not be negative", apperrors.ErrValidation)
	}
	if discount.Decimal().GreaterThan(amount.Decimal()) {
		return fmt.Errorf("%w: discount %s exceeds amount %s", apperrors.ErrValidation, discount, amount)
	}
	return nil
}

// CreatePrice handles the creation of a new price.
func (s *PriceService) CreatePrice(ctx context.Context, req dto.CreatePriceRequest, creatorUserID string) (*domain.Price, error) {
	// Input validation (basic format) is handled by DTO binding tags.
	if err := validateAmounts(req.Amount, req.Discount); err != nil {
		return nil, err
	}

	now := time.Now()
	newPriceID := uuid.NewString()

	price := domain.Price{
		PriceID:     newPriceID,
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
		Discount:    req.Discount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
			Version:       1,
		},
	}

	if err := s.priceRepo.SavePrice(ctx, price); err != nil {
		s.LogError(ctx, err, "Failed to save price", slog.String("price_name", req.Name))
		return nil, fmt.Errorf("failed to create price in service: %w", err)
	}

	return &price, nil
}

// GetPriceByID retrieves a specific price by its ID.
func (s *PriceService) GetPriceByID(ctx context.Context, priceID string) (*domain.Price, error) {
	price, err := s.priceRepo.FindPriceByID(ctx, priceID)
	if err != nil {
		// Repository layer handles ErrNotFound mapping
		return nil, fmt.Errorf("failed to get price by ID in service: %w", err)
	}
	return price, nil
}

// ListPrices retrieves a page of prices using token-based pagination.
func (s *PriceService) ListPrices(ctx context.Context, params dto.ListPricesParams) (*dto.ListPricesResponse, error) {
	prices, nextToken, err := s.priceRepo.ListPrices(ctx, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices in service: %w", err)
	}

	resp := dto.ToListPricesResponse(prices, nextToken)
	return &resp, nil
}

// UpdatePrice applies partial changes to an existing price. The repository
// enforces optimistic concurrency via the version carried on the price.
func (s *PriceService) UpdatePrice(ctx context.Context, priceID string, req dto.UpdatePriceRequest, updaterUserID string) (*domain.Price, error) {
	existing, err := s.priceRepo.FindPriceByID(ctx, priceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find price %s for update: %w", priceID, err)
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.RemoveDiscount {
		updated.Discount = nil
	} else if req.Discount != nil {
		updated.Discount = req.Discount
	}

	if err := validateAmounts(updated.Amount, updated.Discount); err != nil {
		return nil, err
	}

	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.priceRepo.UpdatePrice(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update price", slog.String("price_id", priceID))
		return nil, fmt.Errorf("failed to update price in service: %w", err)
	}
	updated.Version++

	return &updated, nil
}

// DeletePrice removes a price by its ID.
func (s *PriceService) DeletePrice(ctx context.Context, priceID string, deleterUserID string) error {
	if err := s.priceRepo.DeletePrice(ctx, priceID); err != nil {
		s.LogError(ctx, err, "Failed to delete price",
			slog.String("price_id", priceID),
			slog.String("deleter_user_id", deleterUserID))
		return fmt.Errorf("failed to delete price in service: %w", err)
	}
	s.LogInfo(ctx, "Price deleted", slog.String("price_id", priceID))
	return nil
}
