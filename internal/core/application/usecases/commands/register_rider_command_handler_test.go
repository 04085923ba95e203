package commands_test

import (
	"testing"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/rider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterRiderHandler_Success_NewRiderIsAvailable(t *testing.T) {
	ctx := t.Context()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewRegisterRiderCommand(
		riderID, "0911111111", "s3cret", "Somchai", "1กข 1234")
	require.NoError(t, err)

	var created *rider.Rider
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Add", mock.Anything, mock.AnythingOfType("*rider.Rider")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*rider.Rider)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterRiderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, created)
	assert.True(t, created.ID().IsEqual(riderID))
	assert.Equal(t, "1กข 1234", created.VehicleRegistration())
	assert.True(t, created.Available())
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(created.PasswordDigest()), []byte("s3cret")))

	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterRiderHandler_ValidationError(t *testing.T) {
	factory := new(MockRiderUoWFactory)
	h := commands.NewRegisterRiderCommandHandler(factory)

	err := h.Handle(t.Context(), commands.RegisterRiderCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
