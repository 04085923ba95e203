package commands_test

import (
	"testing"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/delivery"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAppendStatusImageHandler_AppendsEntryWithoutTouchingStatus(t *testing.T) {
	ctx := t.Context()
	storedDelivery := newStoredDelivery(t)
	require.NoError(t, storedDelivery.ChangeStatus(delivery.Status("picked up")))

	cmd, err := commands.NewAppendStatusImageCommand(
		storedDelivery.ID(), "proof.jpg", delivery.Status("picked up"))
	require.NoError(t, err)

	var appended *delivery.StatusImage
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, storedDelivery.ID()).Return(storedDelivery, nil).Once(),
		deliveryRepo.On("AddStatusImage", mock.Anything, storedDelivery.ID(),
			mock.AnythingOfType("*delivery.StatusImage")).
			Run(func(args mock.Arguments) {
				appended = args.Get(2).(*delivery.StatusImage)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendStatusImageCommandHandler(factory)
	imageID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, appended)
	assert.True(t, imageID.IsEqual(appended.ID()))
	assert.Equal(t, "proof.jpg", appended.ImageRef())
	assert.Equal(t, delivery.Status("picked up"), appended.StatusLabel())
	assert.Equal(t, delivery.Status("picked up"), storedDelivery.Status(),
		"evidence upload must not change the status")

	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAppendStatusImageHandler_ExplicitLabel_Kept(t *testing.T) {
	ctx := t.Context()
	storedDelivery := newStoredDelivery(t)

	cmd, err := commands.NewAppendStatusImageCommand(
		storedDelivery.ID(), "proof.jpg", delivery.Status("at the gate"))
	require.NoError(t, err)

	var appended *delivery.StatusImage
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, storedDelivery.ID()).Return(storedDelivery, nil).Once(),
		deliveryRepo.On("AddStatusImage", mock.Anything, storedDelivery.ID(),
			mock.AnythingOfType("*delivery.StatusImage")).
			Run(func(args mock.Arguments) {
				appended = args.Get(2).(*delivery.StatusImage)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendStatusImageCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, appended)
	assert.Equal(t, delivery.Status("at the gate"), appended.StatusLabel())
	assert.Equal(t, delivery.StatusAwaitingRider, storedDelivery.Status())

	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAppendStatusImageHandler_UnknownDelivery_ReturnsNotFound(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()

	cmd, err := commands.NewAppendStatusImageCommand(deliveryID, "proof.jpg", delivery.Status("picked up"))
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, deliveryID).
			Return(nil, errs.NewObjectNotFoundError("delivery", deliveryID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendStatusImageCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
