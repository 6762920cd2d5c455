// Package queries contains read operations in the CQRS architecture.
// Query handlers read directly from the database with raw SQL, bypassing the
// domain aggregates; responses are plain structs shaped for the HTTP layer.
package queries

import (
	"errors"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a user's cart with totals computed at read time from
// live product prices. Cart lines store no prices; the order snapshot is
// taken only at checkout.
type GetCartQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a cart query for a user.
func NewGetCartQuery(userID kernel.UUID) (GetCartQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// UserID returns the cart owner.
func (q GetCartQuery) UserID() kernel.UUID {
	return q.userID
}

// GetCartQueryResponse represents the cart with read-time pricing.
type GetCartQueryResponse struct {
	Items    []CartLineResponse `json:"items"`
	Subtotal float64            `json:"subtotal"`
	Tax      float64            `json:"tax"`
	Shipping float64            `json:"shipping"`
	Total    float64            `json:"total"`
}

// CartLineResponse represents one cart line priced with the live product.
type CartLineResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}
