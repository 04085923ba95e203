package commands_test

import (
	"testing"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetRiderLocationHandler_Success(t *testing.T) {
	ctx := t.Context()
	reporter := newAvailableRider(t)
	location, err := kernel.NewGeoPoint(100.55, 13.72)
	require.NoError(t, err)

	cmd, err := commands.NewSetRiderLocationCommand(reporter.ID(), location)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", mock.Anything, reporter.ID()).Return(reporter, nil).Once(),
		riderRepo.On("Update", mock.Anything, reporter).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetRiderLocationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, reporter.Location())
	assert.Equal(t, 100.55, reporter.Location().Lon())
	assert.Equal(t, 13.72, reporter.Location().Lat())

	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetRiderLocationHandler_UnknownRider_ReturnsNotFound(t *testing.T) {
	ctx := t.Context()
	riderID := kernel.NewUUID()
	location, err := kernel.NewGeoPoint(100.55, 13.72)
	require.NoError(t, err)

	cmd, err := commands.NewSetRiderLocationCommand(riderID, location)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", mock.Anything, riderID).
			Return(nil, errs.NewObjectNotFoundError("rider", riderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetRiderLocationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetRiderLocationCommand_RequiresConstructedLocation(t *testing.T) {
	_, err := commands.NewSetRiderLocationCommand(kernel.NewUUID(), kernel.GeoPoint{})
	require.Error(t, err)
}
