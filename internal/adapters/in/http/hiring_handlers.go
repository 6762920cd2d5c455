package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"urbanmart/internal/core/application/usecases/commands"
	"urbanmart/internal/core/domain/model/hiring"
	"urbanmart/internal/core/domain/model/kernel"
)

type inviteMemberRequest struct {
	OrgID          string `json:"orgId"`
	DeliveryUserID string `json:"deliveryUserId"`
}

type applyToOrganizationRequest struct {
	OrgID string `json:"orgId"`
}

type resolveHiringRequestRequest struct {
	Accept bool `json:"accept"`
}

// InviteMember handles POST /api/delivery-org/members/invite.
//
//	@Summary	Invite a delivery user into an organization
//	@Tags		hiring
//	@Accept		json
//	@Produce	json
//	@Param		body	body	inviteMemberRequest	true	"organization and invitee"
//	@Success	201		{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/delivery-org/members/invite [post]
func (s *Server) InviteMember(c echo.Context) error {
	var req inviteMemberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(nethttp.StatusBadRequest,
			envelope{Success: false, Error: "invalid request body"})
	}

	orgID, err := kernel.UUIDFromString(req.OrgID)
	if err != nil {
		return respondError(c, err)
	}
	deliveryUserID, err := kernel.UUIDFromString(req.DeliveryUserID)
	if err != nil {
		return respondError(c, err)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateHiringRequestCommand(
		requestID, orgID, deliveryUserID, hiring.Invitation, actorID(c))
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.CreateHiringRequest.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusCreated,
		map[string]string{"requestId": requestID.String()})
}

// ApplyToOrganization handles POST /api/delivery-org/requests/apply.
//
//	@Summary	Apply to join a delivery organization
//	@Tags		hiring
//	@Accept		json
//	@Produce	json
//	@Param		body	body	applyToOrganizationRequest	true	"target organization"
//	@Success	201		{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/delivery-org/requests/apply [post]
func (s *Server) ApplyToOrganization(c echo.Context) error {
	var req applyToOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(nethttp.StatusBadRequest,
			envelope{Success: false, Error: "invalid request body"})
	}

	orgID, err := kernel.UUIDFromString(req.OrgID)
	if err != nil {
		return respondError(c, err)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateHiringRequestCommand(
		requestID, orgID, actorID(c), hiring.Application, actorID(c))
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.CreateHiringRequest.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusCreated,
		map[string]string{"requestId": requestID.String()})
}

// ResolveHiringRequest handles PATCH /api/delivery-org/requests/hiring/:id.
//
//	@Summary	Accept or reject a pending hiring request
//	@Tags		hiring
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string						true	"request id"
//	@Param		body	body	resolveHiringRequestRequest	true	"decision"
//	@Success	200		{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/delivery-org/requests/hiring/{id} [patch]
func (s *Server) ResolveHiringRequest(c echo.Context) error {
	var req resolveHiringRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(nethttp.StatusBadRequest,
			envelope{Success: false, Error: "invalid request body"})
	}

	requestID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewResolveHiringRequestCommand(requestID, actorID(c), req.Accept)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.ResolveHiringRequest.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, nethttp.StatusOK, "hiring request resolved")
}
