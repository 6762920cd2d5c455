// Package product provides the Product aggregate: a catalog item owned by a
// merchant, with a price and a stock level that checkout decrements.
package product

import (
	"errors"
	"fmt"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created
	// through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrInsufficientStock is returned when a stock decrement would take the
	// quantity below zero. Stock never goes negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product is a merchant-owned catalog item. Stock decrements happen through
// DecrementStock so the non-negative invariant holds in the domain as well as
// in the conditional UPDATE the repository issues.
type Product struct {
	id            kernel.UUID
	merchantID    kernel.UUID
	name          string
	price         kernel.Money
	stockQuantity int
	isActive      bool

	isConstructed bool
}

// NewProduct creates an active product with the given price and stock level.
func NewProduct(id, merchantID kernel.UUID, name string, price kernel.Money, stockQuantity int) (*Product, error) {
	p := &Product{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setMerchantID(merchantID),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stockQuantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id, merchantID kernel.UUID,
	name string,
	price kernel.Money,
	stockQuantity int,
	isActive bool,
) (*Product, error) {
	p, err := NewProduct(id, merchantID, name, price, stockQuantity)
	if err != nil {
		return nil, err
	}
	p.isActive = isActive
	return p, nil
}

// Validate ensures the Product was created via a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// MerchantID returns the owning merchant.
func (p *Product) MerchantID() kernel.UUID { return p.merchantID }

// Name returns the catalog name.
func (p *Product) Name() string { return p.name }

// Price returns the current unit price.
func (p *Product) Price() kernel.Money { return p.price }

// StockQuantity returns the units currently in stock.
func (p *Product) StockQuantity() int { return p.stockQuantity }

// IsActive reports whether the product is visible in the catalog.
func (p *Product) IsActive() bool { return p.isActive }

// HasStock reports whether qty units can be taken from stock.
func (p *Product) HasStock(qty int) bool {
	return qty > 0 && qty <= p.stockQuantity
}

// DecrementStock removes qty units from stock. Returns ErrInsufficientStock
// if the decrement would go below zero.
func (p *Product) DecrementStock(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if qty > p.stockQuantity {
		return fmt.Errorf("%w for product %s", ErrInsufficientStock, p.name)
	}

	p.stockQuantity -= qty
	return nil
}

// Restock adds qty units back to stock.
func (p *Product) Restock(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	p.stockQuantity += qty
	return nil
}

// ChangePrice updates the unit price. Existing order snapshots are unaffected.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

// Deactivate hides the product from the catalog without deleting it.
func (p *Product) Deactivate() {
	p.isActive = false
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setMerchantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("merchantID: %w", err)
	}
	p.merchantID = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setStock(qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("%d is negative", qty))
	}
	p.stockQuantity = qty
	return nil
}
