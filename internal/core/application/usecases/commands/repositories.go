// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"urbanmart/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest composition it needs, so tests can mock
// exactly the repositories a command touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// AssignmentRepoFactory provides access to the delivery assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// OrganizationRepoFactory provides access to the delivery organization repository within a transaction.
	OrganizationRepoFactory interface {
		OrganizationRepository() ports.OrganizationRepository
	}

	// HiringRequestRepoFactory provides access to the hiring request repository within a transaction.
	HiringRequestRepoFactory interface {
		HiringRequestRepository() ports.HiringRequestRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CustomerRepoFactory provides access to the merchant-customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// AddressRepoFactory provides access to the address repository within a transaction.
	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// CheckoutUoW manages the checkout transaction: order creation, stock
	// decrement, merchant-customer upsert and cart clearing commit together.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		CartRepoFactory
		CustomerRepoFactory
		AddressRepoFactory
	}

	// CheckoutUoWFactory creates checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CartUoW manages transactions for cart mutations, which also read products.
	CartUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
	}

	// CartUoWFactory creates cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// DeliveryUoW manages the delivery workflow transactions. Assignment
	// update, order update and history append are one atomic unit.
	DeliveryUoW interface {
		TxManager
		AssignmentRepoFactory
		OrderRepoFactory
		OrganizationRepoFactory
		UserRepoFactory
	}

	// DeliveryUoWFactory creates delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// HiringUoW manages hiring workflow transactions. Accepting a request
	// resolves it and records the membership in one transaction.
	HiringUoW interface {
		TxManager
		HiringRequestRepoFactory
		OrganizationRepoFactory
		UserRepoFactory
	}

	// HiringUoWFactory creates hiring unit of work instances.
	HiringUoWFactory interface {
		Create() HiringUoW
	}

	// OrganizationUoW manages delivery organization creation.
	OrganizationUoW interface {
		TxManager
		OrganizationRepoFactory
		UserRepoFactory
	}

	// OrganizationUoWFactory creates organization unit of work instances.
	OrganizationUoWFactory interface {
		Create() OrganizationUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// AssignmentUoW manages transactions for assignment-only operations,
	// used by the stale-request cancellation job.
	AssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
	}

	// AssignmentUoWFactory creates assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}
)
