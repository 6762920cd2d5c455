package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"urbanmart/internal/core/ports"
	"urbanmart/internal/pkg/errs"
)

// GetProductQueryHandler reads a catalog product with a cache-aside lookup.
// Cache failures are logged and the database answers instead.
type GetProductQueryHandler struct {
	db       *gorm.DB
	cache    ports.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewGetProductQueryHandler creates a handler for product detail queries.
func NewGetProductQueryHandler(
	db *gorm.DB,
	cache ports.Cache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) GetProductQueryHandler {
	return GetProductQueryHandler{
		db:       db,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With("component", "get_product_query"),
	}
}

// Handle executes the product detail query.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductQueryResponse{}, err
	}

	cacheKey := "product:" + query.ProductID().String()

	if cached, ok, err := h.cache.Get(ctx, cacheKey); err != nil {
		h.logger.Warn("cache read failed", "key", cacheKey, "error", err)
	} else if ok {
		var response GetProductQueryResponse
		if err = json.Unmarshal(cached, &response); err == nil {
			return response, nil
		}
		h.logger.Warn("cache entry is not decodable", "key", cacheKey, "error", err)
	}

	response, err := h.readProduct(ctx, query)
	if err != nil {
		return GetProductQueryResponse{}, err
	}

	if encoded, err := json.Marshal(response); err == nil {
		if err = h.cache.Set(ctx, cacheKey, encoded, h.cacheTTL); err != nil {
			h.logger.Warn("cache write failed", "key", cacheKey, "error", err)
		}
	}

	return response, nil
}

func (h GetProductQueryHandler) readProduct(
	ctx context.Context,
	query GetProductQuery,
) (GetProductQueryResponse, error) {
	var (
		id, merchantID uuid.UUID
		name           string
		description    sql.NullString
		price          float64
		stockQuantity  int
		isActive       bool
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, merchant_id, name, description, price, stock_quantity, is_active
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	err := row.Scan(&id, &merchantID, &name, &description, &price, &stockQuantity, &isActive)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProductQueryResponse{}, errs.NewObjectNotFoundError("productID", query.ProductID())
	}
	if err != nil {
		return GetProductQueryResponse{}, err
	}

	response := GetProductQueryResponse{
		ID:            id.String(),
		MerchantID:    merchantID.String(),
		Name:          name,
		Price:         price,
		StockQuantity: stockQuantity,
		IsActive:      isActive,
	}
	if description.Valid {
		response.Description = description.String
	}

	return response, nil
}
