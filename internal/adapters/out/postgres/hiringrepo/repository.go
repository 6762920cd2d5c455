package hiringrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"urbanmart/internal/core/domain/model/hiring"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
)

// GormHiringRequestRepository implements HiringRequestRepository using GORM.
type GormHiringRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHiringRequestRepository creates a new GORM hiring request repository.
func NewGormHiringRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormHiringRequestRepository {
	return &GormHiringRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new hiring request. A second pending request of the same kind
// for the same (organization, delivery person) pair violates the partial
// unique index and surfaces as a conflict.
func (r *GormHiringRequestRepository) Add(ctx context.Context, aggregate *hiring.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"a pending hiring request already exists for this pair", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing hiring request to the database.
func (r *GormHiringRequestRepository) Update(ctx context.Context, aggregate *hiring.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a hiring request by ID.
func (r *GormHiringRequestRepository) Get(ctx context.Context, id kernel.UUID) (*hiring.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hiring request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
