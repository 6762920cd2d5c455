package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"urbanmart/internal/core/application/usecases/commands"
	"urbanmart/internal/core/application/usecases/queries"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/order"
)

type checkoutRequest struct {
	PaymentMethod     string `json:"paymentMethod"`
	ShippingAddressID string `json:"shippingAddressId"`
	BillingAddressID  string `json:"billingAddressId"`
}

type updateOrderStatusRequest struct {
	Status         string `json:"status"`
	Notes          string `json:"notes"`
	TrackingNumber string `json:"trackingNumber"`
}

// Checkout handles POST /api/orders.
//
//	@Summary	Convert the cart into an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		body	body	checkoutRequest	true	"payment and addresses"
//	@Success	201		{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/orders [post]
func (s *Server) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(nethttp.StatusBadRequest,
			envelope{Success: false, Error: "invalid request body"})
	}

	shippingAddressID, err := kernel.UUIDFromString(req.ShippingAddressID)
	if err != nil {
		return respondError(c, err)
	}
	billingAddressID, err := kernel.UUIDFromString(req.BillingAddressID)
	if err != nil {
		return respondError(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(
		orderID, actorID(c), req.PaymentMethod, shippingAddressID, billingAddressID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.Checkout.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusCreated, map[string]string{"orderId": orderID.String()})
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status and the merchant
// variant under /api/merchant. Role-specific transition rules are enforced by
// the command handler, not here.
//
//	@Summary	Move an order to a new status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string						true	"order id"
//	@Param		body	body	updateOrderStatusRequest	true	"target status"
//	@Success	200		{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/orders/{id}/status [patch]
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(nethttp.StatusBadRequest,
			envelope{Success: false, Error: "invalid request body"})
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, target, actorID(c), actorRole(c), req.Notes, req.TrackingNumber)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, nethttp.StatusOK, "order status updated")
}

// GetOrder handles GET /api/orders/:id.
//
//	@Summary	Get a single order with its line items
//	@Tags		orders
//	@Produce	json
//	@Param		id	path	string	true	"order id"
//	@Success	200	{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actorID(c), actorRole(c))
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusOK, result)
}

// GetOrderStatusHistory handles GET /api/orders/:id/status-history.
//
//	@Summary	Get the audit trail of an order's status changes
//	@Tags		orders
//	@Produce	json
//	@Param		id	path	string	true	"order id"
//	@Success	200	{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/orders/{id}/status-history [get]
func (s *Server) GetOrderStatusHistory(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetOrderStatusHistoryQuery(orderID, actorID(c), actorRole(c))
	if err != nil {
		return respondError(c, err)
	}

	history, err := s.handlers.GetOrderStatusHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusOK, history)
}

// ListCustomerOrders handles GET /api/orders.
//
//	@Summary	List the current customer's orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/orders [get]
func (s *Server) ListCustomerOrders(c echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(actorID(c))
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusOK, orders)
}

// ListMerchantOrders handles GET /api/merchant/orders. An optional ?status=
// filter narrows the list to one status.
//
//	@Summary	List orders placed against the current merchant
//	@Tags		orders
//	@Produce	json
//	@Param		status	query	string	false	"status filter"
//	@Success	200		{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/merchant/orders [get]
func (s *Server) ListMerchantOrders(c echo.Context) error {
	query, err := queries.NewGetMerchantOrdersQuery(actorID(c), c.QueryParam("status"))
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.handlers.GetMerchantOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusOK, orders)
}
