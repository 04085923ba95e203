package guard_test

import (
	"errors"
	"testing"

	"swiftdrop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var g guard.ConstructorGuard
		errNotConstructed := errors.New("thing must be created via NewThing")

		err := g.Validate(errNotConstructed)
		require.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("constructed guard passes validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		assert.NoError(t, g.Validate(errors.New("unused")))
	})

	t.Run("nil validation error falls back to default", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(nil)
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}
