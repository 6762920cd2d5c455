package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/services"
)

// GetCartQueryHandler reads a user's cart joined with live products and
// prices it with the same rules checkout applies, so the cart page and the
// eventual order agree.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query. A user with no stored lines gets an empty
// cart with zero totals, not an error.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{Items: make([]CartLineResponse, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.product_id,
			p.name,
			p.price,
			ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = ?
		ORDER BY ci.created_at
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	subtotal := kernel.ZeroMoney()

	for rows.Next() {
		var (
			productID uuid.UUID
			name      string
			price     float64
			quantity  int
		)
		if err = rows.Scan(&productID, &name, &price, &quantity); err != nil {
			return GetCartQueryResponse{}, err
		}

		unitPrice, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return GetCartQueryResponse{}, priceErr
		}
		lineTotal := unitPrice.MulQty(quantity)
		subtotal = subtotal.Add(lineTotal)

		response.Items = append(response.Items, CartLineResponse{
			ProductID: productID.String(),
			Name:      name,
			UnitPrice: unitPrice.Amount(),
			Quantity:  quantity,
			LineTotal: lineTotal.Amount(),
		})
	}
	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	tax := subtotal.MulRate(services.TaxRate)
	shipping := kernel.ZeroMoney()
	if len(response.Items) > 0 {
		threshold, thresholdErr := kernel.NewMoney(services.FreeShippingThreshold)
		if thresholdErr != nil {
			return GetCartQueryResponse{}, thresholdErr
		}
		if !subtotal.GreaterThan(threshold) {
			if shipping, err = kernel.NewMoney(services.ShippingFee); err != nil {
				return GetCartQueryResponse{}, err
			}
		}
	}

	response.Subtotal = subtotal.Amount()
	response.Tax = tax.Amount()
	response.Shipping = shipping.Amount()
	response.Total = subtotal.Add(tax).Add(shipping).Amount()
	return response, nil
}
