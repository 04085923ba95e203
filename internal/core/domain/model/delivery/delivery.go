package delivery

import (
	"errors"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

// Domain errors for delivery operations.
var (
	// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
	ErrDeliveryIsNotConstructed = errors.New(
		"Delivery must be created via NewDelivery or RestoreDelivery constructors")
	// ErrReceiverPhoneIsRequired is returned when the receiver phone number is missing.
	ErrReceiverPhoneIsRequired = errs.NewValueIsRequiredError("receiverPhone")
	// ErrItemDescriptionIsRequired is returned when an item line has no description.
	ErrItemDescriptionIsRequired = errs.NewValueIsRequiredError("itemDescription")
	// ErrImageRefIsRequired is returned when a status image has no image reference.
	ErrImageRefIsRequired = errs.NewValueIsRequiredError("imageRef")
)

// Item is a single line of a multi-item delivery. Lines are created in a batch
// alongside the parent delivery and are immutable afterwards.
type Item struct {
	id          kernel.UUID
	description string
	imageRef    string
}

// RestoreItem reconstructs an item line from persistent storage.
func RestoreItem(id kernel.UUID, description, imageRef string) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, ErrItemDescriptionIsRequired
	}
	return &Item{id: id, description: description, imageRef: imageRef}, nil
}

// ID returns the item line's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// Description returns what the line contains.
func (i *Item) Description() string { return i.description }

// ImageRef returns the item image filename, empty when absent.
func (i *Item) ImageRef() string { return i.imageRef }

// StatusImage is one entry of the append-only photo evidence log. Entries
// document the status the delivery had when the photo was taken; they are
// never updated or deleted, and appending one never mutates the delivery
// status itself.
type StatusImage struct {
	id          kernel.UUID
	imageRef    string
	statusLabel Status
	uploadedAt  time.Time
}

// RestoreStatusImage reconstructs an evidence entry from persistent storage.
func RestoreStatusImage(id kernel.UUID, imageRef string, statusLabel Status, uploadedAt time.Time) (*StatusImage, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if imageRef == "" {
		return nil, ErrImageRefIsRequired
	}
	if err := statusLabel.Validate(); err != nil {
		return nil, err
	}
	return &StatusImage{id: id, imageRef: imageRef, statusLabel: statusLabel, uploadedAt: uploadedAt}, nil
}

// ID returns the entry's unique identifier.
func (si *StatusImage) ID() kernel.UUID { return si.id }

// ImageRef returns the photo filename.
func (si *StatusImage) ImageRef() string { return si.imageRef }

// StatusLabel returns the status the photo documents.
func (si *StatusImage) StatusLabel() Status { return si.statusLabel }

// UploadedAt returns when the photo was uploaded.
func (si *StatusImage) UploadedAt() time.Time { return si.uploadedAt }

// Delivery is the aggregate root for delivery orders.
//
// Invariants:
//   - Sender reference and receiver phone are always present. The receiver is
//     matched by phone at read time and is not a foreign key.
//   - Status is never empty; a new delivery starts in StatusAwaitingRider.
//   - The rider reference is non-nil iff the delivery has been claimed at
//     least once; reassignment overwrites it.
//   - Item lines are fixed at creation; status images are append-only.
type Delivery struct {
	id            kernel.UUID
	senderID      kernel.UUID
	receiverPhone string
	status        Status
	productImage  string

	pickupAddress  string
	pickupPoint    *kernel.GeoPoint
	dropoffAddress string
	dropoffPoint   *kernel.GeoPoint

	riderID *kernel.UUID

	items        []*Item
	statusImages []*StatusImage

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a Delivery in the initial awaiting-rider state with no
// rider assigned. Pickup/dropoff locations and item lines are attached before
// the aggregate is first persisted.
func NewDelivery(id kernel.UUID, senderID kernel.UUID, receiverPhone string) (*Delivery, error) {
	now := time.Now().UTC()
	d := &Delivery{
		status:    StatusAwaitingRider,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setSenderID(senderID),
		d.setReceiverPhone(receiverPhone),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage.
func RestoreDelivery(
	id kernel.UUID,
	senderID kernel.UUID,
	receiverPhone string,
	status Status,
	productImage string,
	pickupAddress string, pickupPoint *kernel.GeoPoint,
	dropoffAddress string, dropoffPoint *kernel.GeoPoint,
	riderID *kernel.UUID,
	items []*Item,
	statusImages []*StatusImage,
	createdAt, updatedAt time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, senderID, receiverPhone)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if riderID != nil {
		if err = riderID.Validate(); err != nil {
			return nil, err
		}
	}

	d.status = status
	d.productImage = productImage
	d.pickupAddress = pickupAddress
	d.pickupPoint = pickupPoint
	d.dropoffAddress = dropoffAddress
	d.dropoffPoint = dropoffPoint
	d.riderID = riderID
	d.items = items
	d.statusImages = statusImages
	d.createdAt = createdAt
	d.updatedAt = updatedAt

	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || d.guard.Validate(ErrDeliveryIsNotConstructed) != nil {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID { return d.id }

// SenderID returns the originating user's identifier.
func (d *Delivery) SenderID() kernel.UUID { return d.senderID }

// ReceiverPhone returns the destination phone number.
func (d *Delivery) ReceiverPhone() string { return d.receiverPhone }

// Status returns the current lifecycle label.
func (d *Delivery) Status() Status { return d.status }

// ProductImage returns the product photo filename, empty when absent.
func (d *Delivery) ProductImage() string { return d.productImage }

// PickupAddress returns the pickup address text.
func (d *Delivery) PickupAddress() string { return d.pickupAddress }

// PickupPoint returns the pickup geo point, nil when absent.
func (d *Delivery) PickupPoint() *kernel.GeoPoint { return d.pickupPoint }

// DropoffAddress returns the dropoff address text.
func (d *Delivery) DropoffAddress() string { return d.dropoffAddress }

// DropoffPoint returns the dropoff geo point, nil when absent.
func (d *Delivery) DropoffPoint() *kernel.GeoPoint { return d.dropoffPoint }

// Rider returns the assigned rider's identifier, nil while unclaimed.
func (d *Delivery) Rider() *kernel.UUID { return d.riderID }

// Items returns the delivery's item lines in insertion order.
func (d *Delivery) Items() []*Item { return d.items }

// StatusImages returns the evidence log entries.
func (d *Delivery) StatusImages() []*StatusImage { return d.statusImages }

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns the last-modification timestamp.
func (d *Delivery) UpdatedAt() time.Time { return d.updatedAt }

// SetProductImage attaches the product photo filename.
func (d *Delivery) SetProductImage(imageRef string) {
	d.productImage = imageRef
}

// SetPickup sets the pickup address and optional geo point.
func (d *Delivery) SetPickup(address string, point *kernel.GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}
	d.pickupAddress = address
	d.pickupPoint = point
	return nil
}

// SetDropoff sets the dropoff address and optional geo point.
func (d *Delivery) SetDropoff(address string, point *kernel.GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}
	d.dropoffAddress = address
	d.dropoffPoint = point
	return nil
}

// AddItem appends an item line during delivery creation. Lines keep the order
// in which they were supplied.
func (d *Delivery) AddItem(description, imageRef string) (*Item, error) {
	if description == "" {
		return nil, ErrItemDescriptionIsRequired
	}

	item := &Item{
		id:          kernel.NewUUID(),
		description: description,
		imageRef:    imageRef,
	}
	d.items = append(d.items, item)
	return item, nil
}

// ChangeStatus sets the lifecycle label. Any non-empty label is accepted;
// the rider-availability coupling is applied by the command handler, not here.
func (d *Delivery) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	d.status = status
	d.updatedAt = time.Now().UTC()
	return nil
}

// AssignRider records the rider working this delivery. Assigning on first
// claim and re-confirming on subsequent status reports go through the same
// path; reassignment to a different rider simply overwrites.
func (d *Delivery) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	d.riderID = &riderID
	d.updatedAt = time.Now().UTC()
	return nil
}

// AppendStatusImage adds an evidence entry documenting the given status label.
// It never changes the delivery status.
func (d *Delivery) AppendStatusImage(imageRef string, statusLabel Status) (*StatusImage, error) {
	if imageRef == "" {
		return nil, ErrImageRefIsRequired
	}
	if err := statusLabel.Validate(); err != nil {
		return nil, err
	}

	entry := &StatusImage{
		id:          kernel.NewUUID(),
		imageRef:    imageRef,
		statusLabel: statusLabel,
		uploadedAt:  time.Now().UTC(),
	}
	d.statusImages = append(d.statusImages, entry)
	return entry, nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	d.senderID = senderID
	return nil
}

func (d *Delivery) setReceiverPhone(receiverPhone string) error {
	if receiverPhone == "" {
		return ErrReceiverPhoneIsRequired
	}
	d.receiverPhone = receiverPhone
	return nil
}
