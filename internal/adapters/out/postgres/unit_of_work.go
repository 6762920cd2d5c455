// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work opens one database transaction, hands out
// repositories bound to it, and tracks every aggregate written through them
// so post-commit processing (event publishing, cache invalidation) can see
// what changed.
//
// Each command handler creates a fresh instance via the factory, giving full
// isolation between concurrent operations. Repositories obtained before
// Begin use the base connection and execute immediately.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"urbanmart/internal/adapters/out/postgres/addressrepo"
	"urbanmart/internal/adapters/out/postgres/cartrepo"
	"urbanmart/internal/adapters/out/postgres/customerrepo"
	"urbanmart/internal/adapters/out/postgres/deliveryrepo"
	"urbanmart/internal/adapters/out/postgres/hiringrepo"
	"urbanmart/internal/adapters/out/postgres/orderrepo"
	"urbanmart/internal/adapters/out/postgres/productrepo"
	"urbanmart/internal/adapters/out/postgres/userrepo"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. The connection is injected at composition time so tests can
// substitute a containerized database.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories it hands out. Repository operations issued between Begin and
// Commit/Rollback share the transaction; the delivery status and checkout
// flows rely on this to keep multi-aggregate writes atomic.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a database transaction. Calling Begin again on an instance
// with an open transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the current transaction. Returns
// gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Returns
// gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ProductRepository returns a product repository bound to the current transaction.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

// CartRepository returns a cart repository bound to the current transaction.
func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn())
}

// AssignmentRepository returns a delivery assignment repository bound to the
// current transaction.
func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return deliveryrepo.NewGormAssignmentRepository(uow.conn(), uow)
}

// OrganizationRepository returns a delivery organization repository bound to
// the current transaction.
func (uow *GormUnitOfWork) OrganizationRepository() ports.OrganizationRepository {
	return deliveryrepo.NewGormOrganizationRepository(uow.conn(), uow)
}

// HiringRequestRepository returns a hiring request repository bound to the
// current transaction.
func (uow *GormUnitOfWork) HiringRequestRepository() ports.HiringRequestRepository {
	return hiringrepo.NewGormHiringRequestRepository(uow.conn(), uow)
}

// UserRepository returns a user repository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

// CustomerRepository returns a customer relation repository bound to the
// current transaction.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

// AddressRepository returns an address repository bound to the current transaction.
func (uow *GormUnitOfWork) AddressRepository() ports.AddressRepository {
	return addressrepo.NewGormAddressRepository(uow.conn())
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Called by repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// GetTrackedAggregates returns every aggregate written through this unit of
// work, in write order.
func (uow *GormUnitOfWork) GetTrackedAggregates() []trackedAggregate {
	return uow.trackedAggregates
}
