package deliveryrepo

import (
	"context"
	"errors"

	"swiftdrop/internal/core/domain/model/delivery"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery together with its item lines. GORM writes the
// association rows in the same statement batch, so a failure on any line
// leaves no partial delivery behind.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery's own row. Item lines are immutable and
// status images are append-only, so associations are deliberately not
// rewritten here.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID, including item lines in their original
// order and the status image log ordered by upload time.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("delivery_items.position ASC")
		}).
		Preload("StatusImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("delivery_status_images.uploaded_at ASC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveAssigned retrieves all deliveries that have a rider and have not
// reached the terminal delivered state. Child collections are not loaded; the
// reconciliation job only inspects rider references and statuses.
func (r *GormDeliveryRepository) GetAllActiveAssigned(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("rider_id IS NOT NULL AND status <> ?", delivery.StatusDelivered.String()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		deliveries = append(deliveries, aggregate)
	}

	return deliveries, nil
}

// AddStatusImage appends one evidence entry to the delivery's image log.
// The log is append-only; existing rows are never touched.
func (r *GormDeliveryRepository) AddStatusImage(ctx context.Context, deliveryID kernel.UUID, entry *delivery.StatusImage) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	dto := statusImageFromDomain(deliveryID.Bytes(), entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
