package hiring_test

import (
	"testing"
	"time"

	"urbanmart/internal/core/domain/model/hiring"
	"urbanmart/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingRequest(t *testing.T, kind hiring.Kind) *hiring.Request {
	t.Helper()
	r, err := hiring.NewRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kind, time.Now())
	require.NoError(t, err)
	return r
}

func TestNewRequest(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		r := newPendingRequest(t, hiring.Invitation)
		assert.True(t, r.IsPending())
		assert.Equal(t, hiring.StatusPending, r.Status())
	})

	t.Run("invalid kind is rejected", func(t *testing.T) {
		_, err := hiring.NewRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), hiring.UnknownKind, time.Now())
		require.Error(t, err)
	})
}

func TestResolve(t *testing.T) {
	t.Run("accept a pending request", func(t *testing.T) {
		r := newPendingRequest(t, hiring.Application)
		require.NoError(t, r.Accept())
		assert.Equal(t, hiring.StatusAccepted, r.Status())
	})

	t.Run("reject a pending request", func(t *testing.T) {
		r := newPendingRequest(t, hiring.Invitation)
		require.NoError(t, r.Reject())
		assert.Equal(t, hiring.StatusRejected, r.Status())
	})

	t.Run("double resolution is rejected", func(t *testing.T) {
		r := newPendingRequest(t, hiring.Application)
		require.NoError(t, r.Accept())
		require.ErrorIs(t, r.Accept(), hiring.ErrRequestAlreadyResolved)
		require.ErrorIs(t, r.Reject(), hiring.ErrRequestAlreadyResolved)
	})
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"INVITATION", "APPLICATION"} {
		kind, err := hiring.ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, s, kind.String())
	}

	_, err := hiring.ParseKind("REFERRAL")
	require.Error(t, err)
}
