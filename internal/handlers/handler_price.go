package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pricebook_svc/internal/apperrors"
	portssvc "github.com/SscSPs/pricebook_svc/internal/core/ports/services"
	"github.com/SscSPs/pricebook_svc/internal/dto"
	"github.com/SscSPs/pricebook_svc/internal/middleware"
	"github.com/gin-gonic/gin"
)

// priceHandler handles HTTP requests related to prices.
type priceHandler struct {
	priceService portssvc.PriceSvcFacade
}

// newPriceHandler creates a new priceHandler.
func newPriceHandler(ps portssvc.PriceSvcFacade) *priceHandler {
	return &priceHandler{
		priceService: ps,
	}
}

// RegisterPriceRoutes registers routes related to prices.
func RegisterPriceRoutes(rg *gin.RouterGroup, priceService portssvc.PriceSvcFacade) {
	h := newPriceHandler(priceService)

	prices := rg.Group("/prices")
	{
		prices.POST("", h.createPrice)
		prices.GET("", h.listPrices)
		prices.GET("/:priceID", h.getPriceByID)
		prices.PUT("/:priceID", h.updatePrice)
		prices.DELETE("/:priceID", h.deletePrice)
	}
}

// createPrice godoc
// @Summary Create a new price
// @Description Adds a new price entry to the price book
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   price body dto.CreatePriceRequest true "Price details"
// @Success 201 {object} dto.PriceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Price name already exists"
// @Failure 500 {object} map[string]string "Failed to create price"
// @Security BearerAuth
// @Router /prices [post]
func (h *priceHandler) createPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// Get creator UserID from context
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create price", slog.String("price_name", req.Name))

	createdPrice, err := h.priceService.CreatePrice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate price", slog.String("price_name", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": "Price with this name already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating price", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create price in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create price"})
		}
		return
	}

	logger.Info("Price created successfully", slog.String("price_id", createdPrice.PriceID))
	c.JSON(http.StatusCreated, dto.ToPriceResponse(createdPrice))
}

// getPriceByID godoc
// @Summary Get a price by ID
// @Description Retrieves details for a specific price
// @Tags prices
// @Produce  json
// @Param   priceID path string true "Price ID (UUID)"
// @Success 200 {object} dto.PriceResponse
// @Failure 404 {object} map[string]string "Price not found"
// @Failure 500 {object} map[string]string "Failed to retrieve price"
// @Security BearerAuth
// @Router /prices/{priceID} [get]
func (h *priceHandler) getPriceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	priceID := c.Param("priceID")

	logger = logger.With(slog.String("price_id", priceID))
	logger.Info("Received request to get price by ID")

	price, err := h.priceService.GetPriceByID(c.Request.Context(), priceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Price not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Price not found"})
		} else {
			logger.Error("Failed to get price from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve price"})
		}
		return
	}

	logger.Info("Price retrieved successfully")
	c.JSON(http.StatusOK, dto.ToPriceResponse(price))
}

// listPrices godoc
// @Summary List prices
// @Description Retrieves a page of prices, newest first
// @Tags prices
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListPricesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or token"
// @Failure 500 {object} map[string]string "Failed to list prices"
// @Security BearerAuth
// @Router /prices [get]
func (h *priceHandler) listPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPricesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListPrices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger.Info("Received request to list prices", slog.Int("limit", params.Limit))

	resp, err := h.priceService.ListPrices(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list prices from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list prices"})
		}
		return
	}

	logger.Info("Prices listed successfully", slog.Int("count", len(resp.Prices)))
	c.JSON(http.StatusOK, resp)
}

// updatePrice godoc
// @Summary Update a price
// @Description Applies partial changes to an existing price
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   priceID path string true "Price ID (UUID)"
// @Param   price body dto.UpdatePriceRequest true "Fields to update"
// @Success 200 {object} dto.PriceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Price not found"
// @Failure 409 {object} map[string]string "Concurrent update conflict"
// @Failure 500 {object} map[string]string "Failed to update price"
// @Security BearerAuth
// @Router /prices/{priceID} [put]
func (h *priceHandler) updatePrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	priceID := c.Param("priceID")

	var req dto.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("price_id", priceID), slog.String("updater_user_id", updaterUserID))
	logger.Info("Received request to update price")

	updatedPrice, err := h.priceService.UpdatePrice(c.Request.Context(), priceID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Price not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Price not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating price", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Concurrent update conflict")
			c.JSON(http.StatusConflict, gin.H{"error": "Price was modified concurrently, please retry"})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Price name already exists")
			c.JSON(http.StatusConflict, gin.H{"error": "Price with this name already exists"})
		default:
			logger.Error("Failed to update price in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update price"})
		}
		return
	}

	logger.Info("Price updated successfully")
	c.JSON(http.StatusOK, dto.ToPriceResponse(updatedPrice))
}

// deletePrice godoc
// @Summary Delete a price
// @Description Removes a price from the price book
// @Tags prices
// @Produce  json
// @Param   priceID path string true "Price ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Price not found"
// @Failure 500 {object} map[string]string "Failed to delete price"
// @Security BearerAuth
// @Router /prices/{priceID} [delete]
func (h *priceHandler) deletePrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	priceID := c.Param("priceID")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Deleter user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("price_id", priceID))
	logger.Info("Received request to delete price")

	if err := h.priceService.DeletePrice(c.Request.Context(), priceID, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Price not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Price not found"})
		} else {
			logger.Error("Failed to delete price in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete price"})
		}
		return
	}

	logger.Info("Price deleted successfully")
	c.Status(http.StatusNoContent)
}
