package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"urbanmart/internal/core/domain/model/user"
	"urbanmart/internal/pkg/errs"
)

// GetOrderStatusHistoryQueryHandler reads an order's status history.
type GetOrderStatusHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusHistoryQueryHandler creates a handler for status history queries.
func NewGetOrderStatusHistoryQueryHandler(db *gorm.DB) GetOrderStatusHistoryQueryHandler {
	return GetOrderStatusHistoryQueryHandler{db: db}
}

// Handle executes the history query. Non-admin actors must be the order's
// customer or merchant.
func (h GetOrderStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusHistoryQuery,
) ([]StatusChangeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.ActorRole() != user.Admin {
		var count int64
		err := h.db.WithContext(ctx).Raw(`
			SELECT COUNT(*) FROM orders
			WHERE id = ? AND (customer_id = ? OR merchant_id = ?)
		`, query.OrderID().Bytes(), query.ActorID().Bytes(), query.ActorID().Bytes()).
			Scan(&count).Error
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, errs.NewNotAuthorizedError("order belongs to another user")
		}
	}

	history := make([]StatusChangeResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, notes, changed_by, changed_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status    string
			notes     string
			changedBy uuid.UUID
			changedAt time.Time
		)
		if err = rows.Scan(&status, &notes, &changedBy, &changedAt); err != nil {
			return nil, err
		}

		history = append(history, StatusChangeResponse{
			Status:    status,
			Notes:     notes,
			ChangedBy: changedBy.String(),
			ChangedAt: changedAt,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	return history, nil
}
