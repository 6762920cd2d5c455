package commands_test

import (
	"testing"
	"time"

	"urbanmart/internal/core/application/usecases/commands"
	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/order"
	"urbanmart/internal/core/domain/model/user"
	"urbanmart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, merchantID kernel.UUID) *order.Order {
	t.Helper()

	price, _ := kernel.NewMoney(20.00)
	item, err := order.NewItem(kernel.NewUUID(), "Mug", price, 1)
	require.NoError(t, err)

	subtotal := item.Total()
	tax := subtotal.MulRate(0.08)
	shipping, _ := kernel.NewMoney(4.99)
	totals := order.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), merchantID,
		[]order.Item{item}, totals, "card",
		kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestUpdateOrderStatusCommandHandler_Handle_MerchantConfirms(t *testing.T) {
	ctx := t.Context()

	merchantID := kernel.NewUUID()
	testOrder := newPendingOrder(t, merchantID)

	cmd, err := commands.NewUpdateOrderStatusCommand(
		testOrder.ID(), order.Confirmed, merchantID, user.Merchant, "Payment received", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, testOrder.Status())

	history := testOrder.History()
	require.Len(t, history, 2)
	assert.Equal(t, order.Confirmed, history[1].Status())
	assert.Equal(t, "Payment received", history[1].Notes())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_TrackingNumber(t *testing.T) {
	ctx := t.Context()

	merchantID := kernel.NewUUID()
	testOrder := newPendingOrder(t, merchantID)
	require.NoError(t, testOrder.ChangeStatus(order.Confirmed, merchantID, "", time.Now().UTC()))

	cmd, err := commands.NewUpdateOrderStatusCommand(
		testOrder.ID(), order.Shipped, merchantID, user.Merchant, "", "TRACK-123")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "TRACK-123", testOrder.TrackingNumber())
	require.NotNil(t, testOrder.ShippedAt())
}

func TestUpdateOrderStatusCommandHandler_Handle_ForeignMerchant(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t, kernel.NewUUID())
	otherMerchantID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderStatusCommand(
		testOrder.ID(), order.Confirmed, otherMerchantID, user.Merchant, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, order.Pending, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_DisallowedTransition(t *testing.T) {
	ctx := t.Context()

	adminID := kernel.NewUUID()
	testOrder := newPendingOrder(t, kernel.NewUUID())

	// Pending -> Delivered skips the whole lifecycle.
	cmd, err := commands.NewUpdateOrderStatusCommand(
		testOrder.ID(), order.Delivered, adminID, user.Admin, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	assert.Equal(t, order.Pending, testOrder.Status())
	assert.Len(t, testOrder.History(), 1)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderStatusCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
