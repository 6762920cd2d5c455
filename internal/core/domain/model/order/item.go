package order

import (
	"errors"
	"fmt"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/errs"
)

// ErrLineTotalMismatch is returned when a restored line's total does not
// equal unit price times quantity.
var ErrLineTotalMismatch = errors.New("line total does not equal unit price times quantity")

// Item is an immutable per-line snapshot taken at checkout. The unit price is
// frozen at order time; later product price changes never affect it.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int
	total     kernel.Money
}

// NewItem snapshots a product line. The line total is derived from unit
// price and quantity.
func NewItem(productID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if err := unitPrice.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		id:        kernel.NewUUID(),
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		total:     unitPrice.MulQty(quantity),
	}, nil
}

// RestoreItem reconstructs a line from persistence, re-checking the total.
func RestoreItem(id, productID kernel.UUID, name string, unitPrice kernel.Money, quantity int, total kernel.Money) (Item, error) {
	item, err := NewItem(productID, name, unitPrice, quantity)
	if err != nil {
		return Item{}, err
	}
	if err = id.Validate(); err != nil {
		return Item{}, err
	}
	if !item.total.IsEqual(total) {
		return Item{}, fmt.Errorf("%w: %s != %s x %d", ErrLineTotalMismatch, total, unitPrice, quantity)
	}

	item.id = id
	return item, nil
}

// ID returns the line's unique identifier.
func (i Item) ID() kernel.UUID { return i.id }

// ProductID returns the product this line snapshots.
func (i Item) ProductID() kernel.UUID { return i.productID }

// Name returns the product name at order time.
func (i Item) Name() string { return i.name }

// UnitPrice returns the frozen unit price.
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }

// Quantity returns the ordered quantity.
func (i Item) Quantity() int { return i.quantity }

// Total returns unit price times quantity.
func (i Item) Total() kernel.Money { return i.total }
