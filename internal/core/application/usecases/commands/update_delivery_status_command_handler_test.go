package commands_test

import (
	"testing"
	"time"

	"urbanmart/internal/core/application/usecases/commands"
	"urbanmart/internal/core/domain/model/delivery"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/order"
	"urbanmart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeliveryPendingOrder(t *testing.T, merchantID kernel.UUID) *order.Order {
	t.Helper()

	price, _ := kernel.NewMoney(30.00)
	item, err := order.NewItem(kernel.NewUUID(), "Desk lamp", price, 2)
	require.NoError(t, err)

	subtotal := item.Total()
	tax := subtotal.MulRate(0.08)
	shipping := kernel.ZeroMoney()
	totals := order.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}

	customerID := kernel.NewUUID()
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, merchantID,
		[]order.Item{item}, totals, "card",
		kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)
	return o
}

func newConfirmedOrder(t *testing.T, merchantID kernel.UUID) *order.Order {
	t.Helper()

	o := newDeliveryPendingOrder(t, merchantID)
	require.NoError(t, o.ChangeStatus(order.Confirmed, merchantID, "Delivery assigned", time.Now().UTC()))
	return o
}

func TestUpdateDeliveryStatusCommandHandler_Handle_InTransit(t *testing.T) {
	ctx := t.Context()

	merchantID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	parentOrder := newConfirmedOrder(t, merchantID)

	assignment, err := delivery.NewDirectAssignment(
		kernel.NewUUID(), parentOrder.ID(), merchantID, courierID, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(assignment.ID(), courierID, delivery.InTransit)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", ctx, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, parentOrder.ID()).Return(parentOrder, nil).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Assignment")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.InTransit, assignment.Status())
	assert.Equal(t, order.Shipped, parentOrder.Status())
	require.NotNil(t, parentOrder.ShippedAt())

	history := parentOrder.History()
	assert.Equal(t, order.Shipped, history[len(history)-1].Status())

	assignmentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_Completed(t *testing.T) {
	ctx := t.Context()

	merchantID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	parentOrder := newConfirmedOrder(t, merchantID)

	assignment, err := delivery.NewDirectAssignment(
		kernel.NewUUID(), parentOrder.ID(), merchantID, courierID, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, assignment.MarkInTransit())
	require.NoError(t, parentOrder.ChangeStatus(order.Shipped, courierID, "Order picked up", time.Now().UTC()))

	cmd, err := commands.NewUpdateDeliveryStatusCommand(assignment.ID(), courierID, delivery.Completed)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", ctx, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, parentOrder.ID()).Return(parentOrder, nil).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Assignment")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Completed, assignment.Status())
	assert.Equal(t, order.Delivered, parentOrder.Status())
	require.NotNil(t, parentOrder.DeliveredAt())
	require.NotNil(t, parentOrder.DeliveryUser())
	assert.True(t, parentOrder.DeliveryUser().IsEqual(courierID))
}

func TestUpdateDeliveryStatusCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := t.Context()

	merchantID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	parentOrder := newConfirmedOrder(t, merchantID)

	assignment, err := delivery.NewDirectAssignment(
		kernel.NewUUID(), parentOrder.ID(), merchantID, courierID, time.Now().UTC())
	require.NoError(t, err)

	otherCourierID := kernel.NewUUID()
	cmd, err := commands.NewUpdateDeliveryStatusCommand(assignment.ID(), otherCourierID, delivery.InTransit)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", ctx, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, delivery.Assigned, assignment.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()

	merchantID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	parentOrder := newConfirmedOrder(t, merchantID)

	// Completing an assignment that was never picked up must fail and leave
	// both entities untouched.
	assignment, err := delivery.NewDirectAssignment(
		kernel.NewUUID(), parentOrder.ID(), merchantID, courierID, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(assignment.ID(), courierID, delivery.Completed)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", ctx, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, parentOrder.ID()).Return(parentOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrInvalidAssignmentTransition)
	assert.Equal(t, delivery.Assigned, assignment.Status())
	assert.Equal(t, order.Confirmed, parentOrder.Status())
	assignmentRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}
