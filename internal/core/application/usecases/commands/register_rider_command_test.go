package commands_test

import (
	"testing"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/rider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterRiderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewRegisterRiderCommand(
			kernel.NewUUID(), "0911111111", "s3cret", "Somchai", "1กข 1234")
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "1กข 1234", cmd.VehicleRegistration())
	})

	t.Run("vehicle registration is required", func(t *testing.T) {
		_, err := commands.NewRegisterRiderCommand(
			kernel.NewUUID(), "0911111111", "s3cret", "Somchai", "")
		require.ErrorIs(t, err, rider.ErrVehicleRegistrationIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.RegisterRiderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterRiderCommandIsNotConstructed)
	})
}
