package commands

import (
	"context"
)

// ReconcileRiderAvailabilityCommandHandler frees riders whose deliveries have
// all finished. The lifecycle engine normally flips availability in the same
// transaction as the status change, but a rider left busy by an abandoned
// delivery (for example one relabeled without naming the rider) would stay
// busy forever; the periodic sweep catches those.
type ReconcileRiderAvailabilityCommandHandler struct {
	uowFactory RiderDeliveryUoWFactory
}

// NewReconcileRiderAvailabilityCommandHandler creates the sweep handler.
func NewReconcileRiderAvailabilityCommandHandler(
	uowFactory RiderDeliveryUoWFactory,
) ReconcileRiderAvailabilityCommandHandler {
	return ReconcileRiderAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs one reconciliation pass: every busy rider with no active
// assigned delivery is marked available again.
func (h *ReconcileRiderAvailabilityCommandHandler) Handle(
	ctx context.Context, cmd ReconcileRiderAvailabilityCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	busyRiders, err := riderRepo.GetAllBusy(ctx)
	if err != nil {
		return err
	}
	if len(busyRiders) == 0 {
		return uow.Commit(ctx)
	}

	activeDeliveries, err := uow.DeliveryRepository().GetAllActiveAssigned(ctx)
	if err != nil {
		return err
	}

	working := make(map[string]struct{}, len(activeDeliveries))
	for _, d := range activeDeliveries {
		if d.Rider() != nil {
			working[d.Rider().String()] = struct{}{}
		}
	}

	for _, busyRider := range busyRiders {
		if _, stillWorking := working[busyRider.ID().String()]; stillWorking {
			continue
		}

		busyRider.MarkFree()
		if err = riderRepo.Update(ctx, busyRider); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
