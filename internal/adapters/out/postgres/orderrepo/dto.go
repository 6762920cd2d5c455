// Package orderrepo persists order aggregates. An order spans three tables:
// the order row, its immutable item snapshots and its append-only status
// history. Items are written once at creation; history rows are inserted
// with conflict-ignore so re-saving an aggregate never duplicates entries.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID `gorm:"type:uuid;index"`
	MerchantID        uuid.UUID `gorm:"type:uuid;index"`
	Status            string    `gorm:"index"`
	PaymentMethod     string
	ShippingAddressID uuid.UUID `gorm:"type:uuid"`
	BillingAddressID  uuid.UUID `gorm:"type:uuid"`
	Subtotal          float64
	Tax               float64
	Shipping          float64
	Total             float64
	TrackingNumber    *string
	DeliveryUserID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
	ShippedAt         *time.Time
	DeliveredAt       *time.Time

	Items   []ItemDTO          `gorm:"foreignKey:OrderID"`
	History []StatusHistoryDTO `gorm:"foreignKey:OrderID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one immutable order line snapshot.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
	UnitPrice float64
	Quantity  int
	Total     float64
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// StatusHistoryDTO represents one append-only status history row.
type StatusHistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string
	Notes     string
	ChangedBy uuid.UUID `gorm:"type:uuid"`
	ChangedAt time.Time
}

// TableName overrides GORM's default naming to use "order_status_history".
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	totals := aggregate.Totals()

	var trackingNumber *string
	if tn := aggregate.TrackingNumber(); tn != "" {
		trackingNumber = &tn
	}

	var deliveryUserID *uuid.UUID
	if id := aggregate.DeliveryUser(); id != nil {
		raw := id.Bytes()
		deliveryUserID = &raw
	}

	dto := OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		MerchantID:        aggregate.MerchantID().Bytes(),
		Status:            aggregate.Status().String(),
		PaymentMethod:     aggregate.PaymentMethod(),
		ShippingAddressID: aggregate.ShippingAddressID().Bytes(),
		BillingAddressID:  aggregate.BillingAddressID().Bytes(),
		Subtotal:          totals.Subtotal.Amount(),
		Tax:               totals.Tax.Amount(),
		Shipping:          totals.Shipping.Amount(),
		Total:             totals.Total.Amount(),
		TrackingNumber:    trackingNumber,
		DeliveryUserID:    deliveryUserID,
		CreatedAt:         aggregate.CreatedAt(),
		ShippedAt:         aggregate.ShippedAt(),
		DeliveredAt:       aggregate.DeliveredAt(),
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   dto.ID,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Amount(),
			Quantity:  item.Quantity(),
			Total:     item.Total().Amount(),
		})
	}

	for _, change := range aggregate.History() {
		dto.History = append(dto.History, StatusHistoryDTO{
			ID:        change.ID().Bytes(),
			OrderID:   dto.ID,
			Status:    change.Status().String(),
			Notes:     change.Notes(),
			ChangedBy: change.ChangedBy().Bytes(),
			ChangedAt: change.ChangedAt(),
		})
	}

	return dto
}

// toDomain converts a database DTO back into an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}
	shippingAddressID, err := kernel.UUIDFromBytes(dto.ShippingAddressID[:])
	if err != nil {
		return nil, err
	}
	billingAddressID, err := kernel.UUIDFromBytes(dto.BillingAddressID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	totals, err := totalsFromDTO(dto)
	if err != nil {
		return nil, err
	}

	items, err := itemsFromDTO(dto.Items)
	if err != nil {
		return nil, err
	}

	history, err := historyFromDTO(dto.History)
	if err != nil {
		return nil, err
	}

	var trackingNumber string
	if dto.TrackingNumber != nil {
		trackingNumber = *dto.TrackingNumber
	}

	var deliveryUserID *kernel.UUID
	if dto.DeliveryUserID != nil {
		duID, duErr := kernel.UUIDFromBytes((*dto.DeliveryUserID)[:])
		if duErr != nil {
			return nil, duErr
		}
		deliveryUserID = &duID
	}

	return order.RestoreOrder(
		id, customerID, merchantID,
		items, totals,
		dto.PaymentMethod,
		shippingAddressID, billingAddressID,
		status,
		trackingNumber,
		dto.ShippedAt, dto.DeliveredAt,
		deliveryUserID,
		dto.CreatedAt,
		history,
	)
}

func totalsFromDTO(dto OrderDTO) (order.Totals, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Totals{}, err
	}
	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return order.Totals{}, err
	}
	shipping, err := kernel.NewMoney(dto.Shipping)
	if err != nil {
		return order.Totals{}, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return order.Totals{}, err
	}

	return order.Totals{Subtotal: subtotal, Tax: tax, Shipping: shipping, Total: total}, nil
}

func itemsFromDTO(dtos []ItemDTO) ([]order.Item, error) {
	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
		if err != nil {
			return nil, err
		}
		unitPrice, err := kernel.NewMoney(dto.UnitPrice)
		if err != nil {
			return nil, err
		}
		total, err := kernel.NewMoney(dto.Total)
		if err != nil {
			return nil, err
		}

		item, err := order.RestoreItem(id, productID, dto.Name, unitPrice, dto.Quantity, total)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func historyFromDTO(dtos []StatusHistoryDTO) ([]order.StatusChange, error) {
	history := make([]order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		changedBy, err := kernel.UUIDFromBytes(dto.ChangedBy[:])
		if err != nil {
			return nil, err
		}
		status, err := order.ParseStatus(dto.Status)
		if err != nil {
			return nil, err
		}

		change, err := order.RestoreStatusChange(id, status, dto.Notes, changedBy, dto.ChangedAt)
		if err != nil {
			return nil, err
		}
		history = append(history, change)
	}
	return history, nil
}
