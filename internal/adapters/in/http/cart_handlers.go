package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"urbanmart/internal/core/application/usecases/commands"
	"urbanmart/internal/core/application/usecases/queries"
	"urbanmart/internal/core/domain/model/kernel"
)

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /api/cart.
//
//	@Summary	Get the current user's cart with totals
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/cart [get]
func (s *Server) GetCart(c echo.Context) error {
	query, err := queries.NewGetCartQuery(actorID(c))
	if err != nil {
		return respondError(c, err)
	}

	cart, err := s.handlers.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusOK, cart)
}

// AddToCart handles POST /api/cart/items.
//
//	@Summary	Add a product to the cart
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		body	body	addToCartRequest	true	"product and quantity"
//	@Success	201		{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/cart/items [post]
func (s *Server) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(nethttp.StatusBadRequest,
			envelope{Success: false, Error: "invalid request body"})
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAddToCartCommand(actorID(c), productID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.AddToCart.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, nethttp.StatusCreated, "item added to cart")
}

// UpdateCartItem handles PATCH /api/cart/items/:productId.
//
//	@Summary	Change the quantity of a cart line
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		productId	path	string					true	"product id"
//	@Param		body		body	updateCartItemRequest	true	"new quantity"
//	@Success	200			{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/cart/items/{productId} [patch]
func (s *Server) UpdateCartItem(c echo.Context) error {
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(nethttp.StatusBadRequest,
			envelope{Success: false, Error: "invalid request body"})
	}

	productID, err := kernel.UUIDFromString(c.Param("productId"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewUpdateCartItemCommand(actorID(c), productID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, nethttp.StatusOK, "cart item updated")
}

// RemoveCartItem handles DELETE /api/cart/items/:productId.
//
//	@Summary	Remove a line from the cart
//	@Tags		cart
//	@Produce	json
//	@Param		productId	path	string	true	"product id"
//	@Success	200			{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/cart/items/{productId} [delete]
func (s *Server) RemoveCartItem(c echo.Context) error {
	productID, err := kernel.UUIDFromString(c.Param("productId"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(actorID(c), productID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.RemoveCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, nethttp.StatusOK, "cart item removed")
}
