package commands_test

import (
	"testing"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/delivery"
	"swiftdrop/internal/core/domain/model/rider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileRiderAvailabilityHandler_FreesOnlyIdleRiders(t *testing.T) {
	ctx := t.Context()

	idleRider := newBusyRider(t)
	workingRider := newBusyRider(t)

	activeDelivery := newStoredDelivery(t)
	require.NoError(t, activeDelivery.AssignRider(workingRider.ID()))
	require.NoError(t, activeDelivery.ChangeStatus(delivery.Status("picked up")))

	cmd, err := commands.NewReconcileRiderAvailabilityCommand()
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("GetAllBusy", mock.Anything).
			Return([]*rider.Rider{idleRider, workingRider}, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetAllActiveAssigned", mock.Anything).
			Return([]*delivery.Delivery{activeDelivery}, nil).Once(),
		riderRepo.On("Update", mock.Anything, idleRider).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileRiderAvailabilityCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, idleRider.Available(), "rider with no active delivery must be freed")
	assert.False(t, workingRider.Available(), "rider with an active delivery stays busy")

	riderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReconcileRiderAvailabilityHandler_NoBusyRiders_SkipsDeliveryScan(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewReconcileRiderAvailabilityCommand()
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("GetAllBusy", mock.Anything).Return([]*rider.Rider{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileRiderAvailabilityCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "DeliveryRepository")
}
