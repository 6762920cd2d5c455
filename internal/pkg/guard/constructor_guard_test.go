package guard_test

import (
	"errors"
	"testing"

	"urbanmart/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard(t *testing.T) {
	t.Run("constructed guard passes validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("should not be returned")))
	})

	t.Run("zero value fails with provided error", func(t *testing.T) {
		var g guard.ConstructorGuard
		sentinel := errors.New("thing must be created via NewThing")
		assert.Equal(t, sentinel, g.Validate(sentinel))
	})

	t.Run("zero value fails with default error when nil is passed", func(t *testing.T) {
		var g guard.ConstructorGuard
		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}
