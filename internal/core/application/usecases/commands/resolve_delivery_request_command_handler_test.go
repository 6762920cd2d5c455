package commands_test

import (
	"testing"
	"time"

	"urbanmart/internal/core/application/usecases/commands"
	"urbanmart/internal/core/domain/model/delivery"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/order"
	"urbanmart/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrgCourier(t *testing.T, orgID kernel.UUID) *user.User {
	t.Helper()

	courier, err := user.RestoreUser(
		kernel.NewUUID(), "courier@example.com", "Sam Courier",
		"$2a$10$abcdefghijklmnopqrstuv", user.Delivery, true, &orgID)
	require.NoError(t, err)
	return courier
}

func TestResolveDeliveryRequestCommandHandler_Handle_AcceptPendingOrder(t *testing.T) {
	ctx := t.Context()

	merchantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	parentOrder := newPendingOrder(t, merchantID)

	org, err := delivery.NewOrganization(kernel.NewUUID(), "Swift Couriers", ownerID)
	require.NoError(t, err)
	courier := newOrgCourier(t, org.ID())

	assignment, err := delivery.NewDeliveryRequest(
		kernel.NewUUID(), parentOrder.ID(), merchantID, org.ID(), time.Now().UTC())
	require.NoError(t, err)

	courierID := courier.ID()
	cmd, err := commands.NewResolveDeliveryRequestCommand(assignment.ID(), ownerID, true, &courierID)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orgRepo := new(MockOrganizationRepository)
	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", ctx, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("OrganizationRepository").Return(orgRepo).Once(),
		orgRepo.On("Get", ctx, org.ID()).Return(org, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, courierID).Return(courier, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, parentOrder.ID()).Return(parentOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Assignment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveDeliveryRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Assigned, assignment.Status())
	require.NotNil(t, assignment.CourierID())
	assert.True(t, assignment.CourierID().IsEqual(courierID))
	assert.Equal(t, order.Confirmed, parentOrder.Status())

	history := parentOrder.History()
	assert.Equal(t, order.Confirmed, history[len(history)-1].Status())

	assignmentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResolveDeliveryRequestCommandHandler_Handle_ReassignCourier(t *testing.T) {
	ctx := t.Context()

	merchantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	parentOrder := newConfirmedOrder(t, merchantID)

	org, err := delivery.NewOrganization(kernel.NewUUID(), "Swift Couriers", ownerID)
	require.NoError(t, err)

	// A courier already accepted once; the owner swaps in a replacement
	// before pickup. The order must keep its current status untouched.
	assignment, err := delivery.NewDeliveryRequest(
		kernel.NewUUID(), parentOrder.ID(), merchantID, org.ID(), time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, assignment.AssignCourier(kernel.NewUUID()))

	replacement := newOrgCourier(t, org.ID())
	replacementID := replacement.ID()
	cmd, err := commands.NewResolveDeliveryRequestCommand(assignment.ID(), ownerID, true, &replacementID)
	require.NoError(t, err)

	historyBefore := len(parentOrder.History())

	assignmentRepo := new(MockAssignmentRepository)
	orgRepo := new(MockOrganizationRepository)
	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", ctx, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("OrganizationRepository").Return(orgRepo).Once(),
		orgRepo.On("Get", ctx, org.ID()).Return(org, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, replacementID).Return(replacement, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, parentOrder.ID()).Return(parentOrder, nil).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Assignment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveDeliveryRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Assigned, assignment.Status())
	require.NotNil(t, assignment.CourierID())
	assert.True(t, assignment.CourierID().IsEqual(replacementID))
	assert.Equal(t, order.Confirmed, parentOrder.Status())
	assert.Len(t, parentOrder.History(), historyBefore)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)

	assignmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResolveDeliveryRequestCommandHandler_Handle_Reject(t *testing.T) {
	ctx := t.Context()

	merchantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	org, err := delivery.NewOrganization(kernel.NewUUID(), "Swift Couriers", ownerID)
	require.NoError(t, err)

	assignment, err := delivery.NewDeliveryRequest(
		kernel.NewUUID(), kernel.NewUUID(), merchantID, org.ID(), time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewResolveDeliveryRequestCommand(assignment.ID(), ownerID, false, nil)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orgRepo := new(MockOrganizationRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", ctx, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("OrganizationRepository").Return(orgRepo).Once(),
		orgRepo.On("Get", ctx, org.ID()).Return(org, nil).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Assignment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveDeliveryRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Cancelled, assignment.Status())
}
