// Package customer provides the per-(customer, merchant) relationship
// aggregate: running order count, lifetime spend and last order time,
// updated incrementally on every completed checkout.
package customer

import (
	"errors"
	"fmt"
	"time"

	"urbanmart/internal/core/domain/model/kernel"
)

// ErrRelationIsNotConstructed is returned when a Relation was not created
// through NewRelation or RestoreRelation.
var ErrRelationIsNotConstructed = errors.New("Relation must be created via NewRelation or RestoreRelation constructor")

// Relation aggregates a customer's purchase history with one merchant.
type Relation struct {
	customerID  kernel.UUID
	merchantID  kernel.UUID
	totalOrders int
	totalSpent  kernel.Money
	lastOrderAt *time.Time

	isConstructed bool
}

// NewRelation creates an empty relation for a (customer, merchant) pair.
func NewRelation(customerID, merchantID kernel.UUID) (*Relation, error) {
	if err := customerID.Validate(); err != nil {
		return nil, fmt.Errorf("customerID: %w", err)
	}
	if err := merchantID.Validate(); err != nil {
		return nil, fmt.Errorf("merchantID: %w", err)
	}

	return &Relation{
		customerID:    customerID,
		merchantID:    merchantID,
		totalSpent:    kernel.ZeroMoney(),
		isConstructed: true,
	}, nil
}

// RestoreRelation reconstructs a relation from persistence.
func RestoreRelation(
	customerID, merchantID kernel.UUID,
	totalOrders int,
	totalSpent kernel.Money,
	lastOrderAt *time.Time,
) (*Relation, error) {
	r, err := NewRelation(customerID, merchantID)
	if err != nil {
		return nil, err
	}
	if err = totalSpent.Validate(); err != nil {
		return nil, err
	}

	r.totalOrders = totalOrders
	r.totalSpent = totalSpent
	r.lastOrderAt = lastOrderAt
	return r, nil
}

// Validate ensures the Relation was created via a constructor.
func (r *Relation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRelationIsNotConstructed
	}
	return nil
}

// CustomerID returns the customer side of the pair.
func (r *Relation) CustomerID() kernel.UUID { return r.customerID }

// MerchantID returns the merchant side of the pair.
func (r *Relation) MerchantID() kernel.UUID { return r.merchantID }

// TotalOrders returns the number of orders placed with the merchant.
func (r *Relation) TotalOrders() int { return r.totalOrders }

// TotalSpent returns the lifetime spend with the merchant.
func (r *Relation) TotalSpent() kernel.Money { return r.totalSpent }

// LastOrderAt returns when the customer last ordered, or nil.
func (r *Relation) LastOrderAt() *time.Time { return r.lastOrderAt }

// RecordOrder folds one completed checkout into the aggregate.
func (r *Relation) RecordOrder(total kernel.Money, at time.Time) error {
	if err := total.Validate(); err != nil {
		return err
	}

	r.totalOrders++
	r.totalSpent = r.totalSpent.Add(total)
	r.lastOrderAt = &at
	return nil
}
