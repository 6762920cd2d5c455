package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"urbanmart/internal/core/domain/model/user"
	"urbanmart/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order with its items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order detail query.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		id, customerID, merchantID uuid.UUID
		status, paymentMethod      string
		subtotal, tax              float64
		shipping, total            float64
		trackingNumber             sql.NullString
		deliveryUserID             uuid.NullUUID
		createdAt                  time.Time
		shippedAt, deliveredAt     sql.NullTime
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, customer_id, merchant_id, status, payment_method,
			subtotal, tax, shipping, total,
			tracking_number, delivery_user_id, created_at, shipped_at, delivered_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &customerID, &merchantID, &status, &paymentMethod,
		&subtotal, &tax, &shipping, &total,
		&trackingNumber, &deliveryUserID, &createdAt, &shippedAt, &deliveredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if !h.canRead(query, customerID, merchantID, deliveryUserID) {
		return GetOrderQueryResponse{}, errs.NewNotAuthorizedError("order belongs to another user")
	}

	response := GetOrderQueryResponse{
		ID:            id.String(),
		CustomerID:    customerID.String(),
		MerchantID:    merchantID.String(),
		Status:        status,
		PaymentMethod: paymentMethod,
		Subtotal:      subtotal,
		Tax:           tax,
		Shipping:      shipping,
		Total:         total,
		CreatedAt:     createdAt,
		Items:         make([]OrderItemResponse, 0),
	}
	if trackingNumber.Valid {
		response.TrackingNumber = trackingNumber.String
	}
	if deliveryUserID.Valid {
		response.DeliveryUserID = deliveryUserID.UUID.String()
	}
	if shippedAt.Valid {
		response.ShippedAt = &shippedAt.Time
	}
	if deliveredAt.Valid {
		response.DeliveredAt = &deliveredAt.Time
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, name, unit_price, quantity
		FROM order_items
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID uuid.UUID
			name      string
			unitPrice float64
			quantity  int
		)
		if err = rows.Scan(&productID, &name, &unitPrice, &quantity); err != nil {
			return GetOrderQueryResponse{}, err
		}

		response.Items = append(response.Items, OrderItemResponse{
			ProductID: productID.String(),
			Name:      name,
			UnitPrice: unitPrice,
			Quantity:  quantity,
			LineTotal: unitPrice * float64(quantity),
		})
	}
	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) canRead(
	query GetOrderQuery,
	customerID, merchantID uuid.UUID,
	deliveryUserID uuid.NullUUID,
) bool {
	if query.ActorRole() == user.Admin {
		return true
	}

	actor := query.ActorID().Bytes()
	if actor == customerID || actor == merchantID {
		return true
	}
	return deliveryUserID.Valid && actor == deliveryUserID.UUID
}
