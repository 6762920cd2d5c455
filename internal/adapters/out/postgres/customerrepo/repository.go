// Package customerrepo persists the per-(customer, merchant) relationship
// aggregate. The pair is the primary key; checkout upserts the row so the
// first order inserts and later orders accumulate.
package customerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"urbanmart/internal/core/domain/model/customer"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
)

// RelationDTO represents the database structure for persisting relations.
type RelationDTO struct {
	CustomerID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TotalOrders int
	TotalSpent  float64
	LastOrderAt *time.Time
}

// TableName overrides GORM's default naming to use "customers".
func (RelationDTO) TableName() string {
	return "customers"
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCustomerRepository creates a new GORM customer relation repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the relation for a (customer, merchant) pair.
func (r *GormCustomerRepository) Get(ctx context.Context, customerID, merchantID kernel.UUID) (*customer.Relation, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := merchantID.Validate(); err != nil {
		return nil, err
	}

	var dto RelationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "customer_id = ? AND merchant_id = ?", customerID.Bytes(), merchantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer relation", customerID.String())
		}
		return nil, err
	}

	totalSpent, err := kernel.NewMoney(dto.TotalSpent)
	if err != nil {
		return nil, err
	}

	return customer.RestoreRelation(customerID, merchantID, dto.TotalOrders, totalSpent, dto.LastOrderAt)
}

// Upsert inserts or replaces the relation for the aggregate's pair.
func (r *GormCustomerRepository) Upsert(ctx context.Context, aggregate *customer.Relation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := RelationDTO{
		CustomerID:  aggregate.CustomerID().Bytes(),
		MerchantID:  aggregate.MerchantID().Bytes(),
		TotalOrders: aggregate.TotalOrders(),
		TotalSpent:  aggregate.TotalSpent().Amount(),
		LastOrderAt: aggregate.LastOrderAt(),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}, {Name: "merchant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_orders", "total_spent", "last_order_at"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.CustomerID(), aggregate)
	return nil
}
