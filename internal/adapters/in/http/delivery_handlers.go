package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"urbanmart/internal/core/application/usecases/commands"
	"urbanmart/internal/core/domain/model/delivery"
	"urbanmart/internal/core/domain/model/kernel"
)

type requestDeliveryRequest struct {
	OrderID   string  `json:"orderId"`
	OrgID     *string `json:"orgId"`
	CourierID *string `json:"courierId"`
}

type updateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

type resolveDeliveryRequestRequest struct {
	Accept    bool    `json:"accept"`
	CourierID *string `json:"courierId"`
}

type createOrganizationRequest struct {
	Name string `json:"name"`
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// RequestDelivery handles POST /api/delivery/assign.
//
//	@Summary	Request delivery for an order from an organization or courier
//	@Tags		delivery
//	@Accept		json
//	@Produce	json
//	@Param		body	body	requestDeliveryRequest	true	"order and delivery target"
//	@Success	201		{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/delivery/assign [post]
func (s *Server) RequestDelivery(c echo.Context) error {
	var req requestDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(nethttp.StatusBadRequest,
			envelope{Success: false, Error: "invalid request body"})
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondError(c, err)
	}
	orgID, err := optionalUUID(req.OrgID)
	if err != nil {
		return respondError(c, err)
	}
	courierID, err := optionalUUID(req.CourierID)
	if err != nil {
		return respondError(c, err)
	}

	assignmentID := kernel.NewUUID()
	cmd, err := commands.NewRequestDeliveryCommand(
		assignmentID, orderID, actorID(c), orgID, courierID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.RequestDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusCreated,
		map[string]string{"assignmentId": assignmentID.String()})
}

// UpdateDeliveryStatus handles PATCH /api/delivery/orders/:assignmentId/status.
//
//	@Summary	Progress an accepted delivery assignment
//	@Tags		delivery
//	@Accept		json
//	@Produce	json
//	@Param		assignmentId	path	string						true	"assignment id"
//	@Param		body			body	updateDeliveryStatusRequest	true	"target status"
//	@Success	200				{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/delivery/orders/{assignmentId}/status [patch]
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	var req updateDeliveryStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(nethttp.StatusBadRequest,
			envelope{Success: false, Error: "invalid request body"})
	}

	assignmentID, err := kernel.UUIDFromString(c.Param("assignmentId"))
	if err != nil {
		return respondError(c, err)
	}
	target, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(assignmentID, actorID(c), target)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateDeliveryStatus.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, nethttp.StatusOK, "delivery status updated")
}

// ResolveDeliveryRequest handles PATCH /api/delivery-org/requests/delivery/:id.
//
//	@Summary	Accept or reject a pending delivery request
//	@Tags		delivery
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string							true	"assignment id"
//	@Param		body	body	resolveDeliveryRequestRequest	true	"decision"
//	@Success	200		{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/delivery-org/requests/delivery/{id} [patch]
func (s *Server) ResolveDeliveryRequest(c echo.Context) error {
	var req resolveDeliveryRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(nethttp.StatusBadRequest,
			envelope{Success: false, Error: "invalid request body"})
	}

	assignmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	courierID, err := optionalUUID(req.CourierID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewResolveDeliveryRequestCommand(
		assignmentID, actorID(c), req.Accept, courierID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.ResolveDeliveryRequest.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, nethttp.StatusOK, "delivery request resolved")
}

// CreateOrganization handles POST /api/delivery-org.
//
//	@Summary	Create a delivery organization owned by the current user
//	@Tags		delivery
//	@Accept		json
//	@Produce	json
//	@Param		body	body	createOrganizationRequest	true	"organization name"
//	@Success	201		{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/delivery-org [post]
func (s *Server) CreateOrganization(c echo.Context) error {
	var req createOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(nethttp.StatusBadRequest,
			envelope{Success: false, Error: "invalid request body"})
	}

	orgID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrganizationCommand(orgID, req.Name, actorID(c))
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.CreateOrganization.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusCreated, map[string]string{"orgId": orgID.String()})
}
