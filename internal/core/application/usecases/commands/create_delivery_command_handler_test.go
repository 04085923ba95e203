package commands_test

import (
	"testing"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/delivery"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSender(t *testing.T) *user.User {
	t.Helper()
	sender, err := user.NewUser(
		kernel.NewUUID(), "0811111111", "$2a$10$abcdefghijklmnopqrstuv", "Somsri", user.RoleSender)
	require.NoError(t, err)
	sender.SetAddress("sender's house")
	senderLoc, err := kernel.NewGeoPoint(100.50, 13.70)
	require.NoError(t, err)
	require.NoError(t, sender.SetLocation(senderLoc))
	return sender
}

func newReceiver(t *testing.T, phone string) *user.User {
	t.Helper()
	receiver, err := user.NewUser(
		kernel.NewUUID(), phone, "$2a$10$abcdefghijklmnopqrstuv", "Somchai", user.RoleReceiver)
	require.NoError(t, err)
	receiver.SetAddress("receiver's office")
	receiverLoc, err := kernel.NewGeoPoint(100.60, 13.80)
	require.NoError(t, err)
	require.NoError(t, receiver.SetLocation(receiverLoc))
	return receiver
}

// The pickup location mirrors the receiver's stored address and the dropoff
// the sender's. Clients render around this wire contract; the test pins it.
func TestCreateDeliveryHandler_PickupFollowsReceiver_DropoffFollowsSender(t *testing.T) {
	ctx := t.Context()
	sender := newSender(t)
	receiver := newReceiver(t, "0822222222")

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), sender.ID(), receiver.Phone(), "product.jpg",
		[]commands.DeliveryItemInput{
			{Description: "documents"},
			{Description: "snacks", ImageRef: "snacks.jpg"},
		})
	require.NoError(t, err)

	var created *delivery.Delivery
	userRepo := new(MockUserRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, sender.ID()).Return(sender, nil).Once(),
		userRepo.On("GetByPhone", mock.Anything, receiver.Phone()).Return(receiver, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*delivery.Delivery)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, created)
	assert.Equal(t, "receiver's office", created.PickupAddress())
	require.NotNil(t, created.PickupPoint())
	assert.Equal(t, 100.60, created.PickupPoint().Lon())
	assert.Equal(t, "sender's house", created.DropoffAddress())
	require.NotNil(t, created.DropoffPoint())
	assert.Equal(t, 100.50, created.DropoffPoint().Lon())

	assert.Equal(t, delivery.StatusAwaitingRider, created.Status())
	assert.Equal(t, "product.jpg", created.ProductImage())
	require.Len(t, created.Items(), 2)
	assert.Equal(t, "documents", created.Items()[0].Description())
	assert.Equal(t, "snacks", created.Items()[1].Description())

	userRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDeliveryHandler_UnknownReceiver_NothingPersisted(t *testing.T) {
	ctx := t.Context()
	sender := newSender(t)

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), sender.ID(), "0899999999", "",
		[]commands.DeliveryItemInput{{Description: "keys"}})
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, sender.ID()).Return(sender, nil).Once(),
		userRepo.On("GetByPhone", mock.Anything, "0899999999").
			Return(nil, errs.NewObjectNotFoundError("user", "0899999999")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "DeliveryRepository")
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateDeliveryHandler_UnknownSender_NothingPersisted(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), senderID, "0800000000", "",
		[]commands.DeliveryItemInput{{Description: "keys"}})
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, senderID).
			Return(nil, errs.NewObjectNotFoundError("user", senderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "DeliveryRepository")
}
