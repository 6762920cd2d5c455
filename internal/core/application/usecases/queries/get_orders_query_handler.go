package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler lists orders placed by a customer.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order listings.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the customer order listing.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id, o.customer_id, o.merchant_id, o.status, o.total,
			o.tracking_number, o.created_at, o.shipped_at, o.delivered_at,
			(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count
		FROM orders o
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// GetMerchantOrdersQueryHandler lists orders received by a merchant.
type GetMerchantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantOrdersQueryHandler creates a handler for merchant order listings.
func NewGetMerchantOrdersQueryHandler(db *gorm.DB) GetMerchantOrdersQueryHandler {
	return GetMerchantOrdersQueryHandler{db: db}
}

// Handle executes the merchant order listing.
func (h GetMerchantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			o.id, o.customer_id, o.merchant_id, o.status, o.total,
			o.tracking_number, o.created_at, o.shipped_at, o.delivered_at,
			(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count
		FROM orders o
		WHERE o.merchant_id = ?`
	args := []any{query.MerchantID().Bytes()}

	if query.Status() != "" {
		sqlText += ` AND o.status = ?`
		args = append(args, query.Status())
	}
	sqlText += ` ORDER BY o.created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	orders := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var (
			id, customerID, merchantID uuid.UUID
			status                     string
			total                      float64
			trackingNumber             sql.NullString
			createdAt                  time.Time
			shippedAt, deliveredAt     sql.NullTime
			itemCount                  int
		)
		err := rows.Scan(&id, &customerID, &merchantID, &status, &total,
			&trackingNumber, &createdAt, &shippedAt, &deliveredAt, &itemCount)
		if err != nil {
			return nil, err
		}

		summary := OrderSummaryResponse{
			ID:         id.String(),
			CustomerID: customerID.String(),
			MerchantID: merchantID.String(),
			Status:     status,
			Total:      total,
			ItemCount:  itemCount,
			CreatedAt:  createdAt,
		}
		if trackingNumber.Valid {
			summary.TrackingNumber = trackingNumber.String
		}
		if shippedAt.Valid {
			summary.ShippedAt = &shippedAt.Time
		}
		if deliveredAt.Valid {
			summary.DeliveredAt = &deliveredAt.Time
		}

		orders = append(orders, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
