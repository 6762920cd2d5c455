package delivery_test

import (
	"testing"
	"time"

	"urbanmart/internal/core/domain/model/delivery"
	"urbanmart/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T) *delivery.Assignment {
	t.Helper()
	a, err := delivery.NewDeliveryRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return a
}

func TestNewDeliveryRequest(t *testing.T) {
	a := newRequest(t)
	assert.Equal(t, delivery.Requested, a.Status())
	assert.Nil(t, a.CourierID())
	require.NotNil(t, a.OrgID())
}

func TestNewDirectAssignment(t *testing.T) {
	courier := kernel.NewUUID()
	a, err := delivery.NewDirectAssignment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), courier, time.Now())
	require.NoError(t, err)
	assert.Equal(t, delivery.Assigned, a.Status())
	require.NotNil(t, a.CourierID())
	assert.True(t, a.CourierID().IsEqual(courier))
	assert.Nil(t, a.OrgID())
}

func TestAssignCourier(t *testing.T) {
	t.Run("claim a requested assignment", func(t *testing.T) {
		a := newRequest(t)
		courier := kernel.NewUUID()
		require.NoError(t, a.AssignCourier(courier))
		assert.Equal(t, delivery.Assigned, a.Status())
		assert.True(t, a.CourierID().IsEqual(courier))
	})

	t.Run("reassignment before pickup is allowed", func(t *testing.T) {
		a := newRequest(t)
		require.NoError(t, a.AssignCourier(kernel.NewUUID()))
		replacement := kernel.NewUUID()
		require.NoError(t, a.AssignCourier(replacement))
		assert.True(t, a.CourierID().IsEqual(replacement))
	})

	t.Run("reassignment in transit is rejected", func(t *testing.T) {
		a := newRequest(t)
		require.NoError(t, a.AssignCourier(kernel.NewUUID()))
		require.NoError(t, a.MarkInTransit())

		err := a.AssignCourier(kernel.NewUUID())
		require.ErrorIs(t, err, delivery.ErrDeliveryInProgress)
		assert.Equal(t, delivery.InTransit, a.Status())
	})

	t.Run("reassignment after completion is rejected", func(t *testing.T) {
		a := newRequest(t)
		require.NoError(t, a.AssignCourier(kernel.NewUUID()))
		require.NoError(t, a.MarkInTransit())
		require.NoError(t, a.MarkCompleted())

		require.ErrorIs(t, a.AssignCourier(kernel.NewUUID()), delivery.ErrDeliveryInProgress)
	})

	t.Run("reassignment of a cancelled assignment is rejected", func(t *testing.T) {
		a := newRequest(t)
		require.NoError(t, a.Cancel())
		require.ErrorIs(t, a.AssignCourier(kernel.NewUUID()), delivery.ErrInvalidAssignmentTransition)
	})
}

func TestAssignmentProgress(t *testing.T) {
	t.Run("full lifecycle", func(t *testing.T) {
		a := newRequest(t)
		require.NoError(t, a.AssignCourier(kernel.NewUUID()))
		require.NoError(t, a.MarkInTransit())
		require.NoError(t, a.MarkCompleted())
		assert.Equal(t, delivery.Completed, a.Status())
	})

	t.Run("pickup without a delivery person is rejected", func(t *testing.T) {
		a := newRequest(t)
		require.ErrorIs(t, a.MarkInTransit(), delivery.ErrNoCourierAssigned)
	})

	t.Run("completion requires transit first", func(t *testing.T) {
		a := newRequest(t)
		require.NoError(t, a.AssignCourier(kernel.NewUUID()))
		require.ErrorIs(t, a.MarkCompleted(), delivery.ErrInvalidAssignmentTransition)
	})

	t.Run("cancel only before pickup", func(t *testing.T) {
		a := newRequest(t)
		require.NoError(t, a.AssignCourier(kernel.NewUUID()))
		require.NoError(t, a.MarkInTransit())
		require.ErrorIs(t, a.Cancel(), delivery.ErrInvalidAssignmentTransition)
	})
}

func TestOrganization(t *testing.T) {
	owner := kernel.NewUUID()
	org, err := delivery.NewOrganization(kernel.NewUUID(), "Speedy Couriers", owner)
	require.NoError(t, err)

	assert.True(t, org.IsOwnedBy(owner))
	assert.False(t, org.IsOwnedBy(kernel.NewUUID()))
	assert.True(t, org.IsActive())

	_, err = delivery.NewOrganization(kernel.NewUUID(), "", owner)
	require.Error(t, err)
}
