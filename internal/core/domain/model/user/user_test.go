package user_test

import (
	"testing"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		id := kernel.NewUUID()
		u, err := user.NewUser(id, "0812345678", "$2a$10$digest", "Somchai", user.RoleSender)
		require.NoError(t, err)

		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "0812345678", u.Phone())
		assert.Equal(t, "Somchai", u.Name())
		assert.Equal(t, user.RoleSender, u.Role())
		assert.Empty(t, u.Address())
		assert.Nil(t, u.Location())
		assert.NoError(t, u.Validate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		id := kernel.NewUUID()

		_, err := user.NewUser(id, "", "digest", "Somchai", user.RoleSender)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = user.NewUser(id, "0812345678", "", "Somchai", user.RoleSender)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = user.NewUser(id, "0812345678", "digest", "", user.RoleSender)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "0812345678", "digest", "Somchai", user.Role("Admin"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestUserOptionalAttributes(t *testing.T) {
	newUser := func(t *testing.T) *user.User {
		t.Helper()
		u, err := user.NewUser(kernel.NewUUID(), "0812345678", "digest", "Somchai", user.RoleReceiver)
		require.NoError(t, err)
		return u
	}

	t.Run("set address and image", func(t *testing.T) {
		u := newUser(t)
		u.SetAddress("99 Rama IV Rd, Bangkok")
		u.SetImageRef("profile.jpg")

		assert.Equal(t, "99 Rama IV Rd, Bangkok", u.Address())
		assert.Equal(t, "profile.jpg", u.ImageRef())
	})

	t.Run("set location", func(t *testing.T) {
		u := newUser(t)
		p, err := kernel.NewGeoPoint(100.523186, 13.736717)
		require.NoError(t, err)

		require.NoError(t, u.SetLocation(p))
		require.NotNil(t, u.Location())

		equal, err := u.Location().IsEqual(p)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("unconstructed location is rejected", func(t *testing.T) {
		u := newUser(t)
		var p kernel.GeoPoint
		require.Error(t, u.SetLocation(p))
	})
}

func TestUserChangeRole(t *testing.T) {
	t.Run("switch sender to receiver", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "0812345678", "digest", "Somchai", user.RoleSender)
		require.NoError(t, err)

		require.NoError(t, u.ChangeRole(user.RoleReceiver))
		assert.Equal(t, user.RoleReceiver, u.Role())
	})

	t.Run("unknown role is rejected and state unchanged", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "0812345678", "digest", "Somchai", user.RoleSender)
		require.NoError(t, err)

		require.ErrorIs(t, u.ChangeRole(user.Role("Courier")), errs.ErrValueIsInvalid)
		assert.Equal(t, user.RoleSender, u.Role())
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("restores optional attributes", func(t *testing.T) {
		id := kernel.NewUUID()
		p, _ := kernel.NewGeoPoint(100.5, 13.7)

		u, err := user.RestoreUser(id, "0812345678", "digest", "Somchai",
			"profile.jpg", "99 Rama IV Rd", &p, user.RoleReceiver)
		require.NoError(t, err)

		assert.Equal(t, "profile.jpg", u.ImageRef())
		assert.Equal(t, "99 Rama IV Rd", u.Address())
		require.NotNil(t, u.Location())
		assert.Equal(t, user.RoleReceiver, u.Role())
	})
}
