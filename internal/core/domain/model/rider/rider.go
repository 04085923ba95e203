package rider

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

// Domain errors for rider operations.
var (
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider constructors")
	// ErrPhoneIsRequired is returned when attempting to create a rider without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phoneNumber")
	// ErrPasswordDigestIsRequired is returned when the password digest is missing.
	ErrPasswordDigestIsRequired = errs.NewValueIsRequiredError("passwordDigest")
	// ErrNameIsRequired is returned when attempting to create a rider without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrVehicleRegistrationIsRequired is returned when the vehicle registration is missing.
	// The registration is immutable after creation.
	ErrVehicleRegistrationIsRequired = errs.NewValueIsRequiredError("vehicleRegistration")
)

// Rider is the aggregate root for courier accounts.
//
// Invariants:
//   - Phone number, password digest, display name, and vehicle registration are always present.
//   - The phone number is unique across riders (enforced by the persistence layer).
//   - Vehicle registration never changes after creation.
//   - A new rider is available; availability is only toggled by the lifecycle engine.
type Rider struct {
	id                  kernel.UUID
	phone               string
	passwordDigest      string
	name                string
	imageRef            string
	vehicleRegistration string
	location            *kernel.GeoPoint
	available           bool

	guard guard.ConstructorGuard
}

// NewRider creates an available Rider with the required fields validated.
func NewRider(id kernel.UUID, phone, passwordDigest, name, vehicleRegistration string) (*Rider, error) {
	r := &Rider{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setPhone(phone),
		r.setPasswordDigest(passwordDigest),
		r.setName(name),
		r.setVehicleRegistration(vehicleRegistration),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a Rider from persistent storage, including the
// optional attributes and the persisted availability flag.
func RestoreRider(
	id kernel.UUID,
	phone, passwordDigest, name, vehicleRegistration string,
	imageRef string,
	location *kernel.GeoPoint,
	available bool,
) (*Rider, error) {
	r, err := NewRider(id, phone, passwordDigest, name, vehicleRegistration)
	if err != nil {
		return nil, err
	}

	r.imageRef = imageRef
	if location != nil {
		if err = location.Validate(); err != nil {
			return nil, err
		}
		r.location = location
	}
	r.available = available

	return r, nil
}

// Validate ensures the Rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil || r.guard.Validate(ErrRiderIsNotConstructed) != nil {
		return ErrRiderIsNotConstructed
	}
	return nil
}

// IsEqual compares two riders by identifier.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Phone returns the unique phone number used for login.
func (r *Rider) Phone() string {
	return r.phone
}

// PasswordDigest returns the stored bcrypt digest.
func (r *Rider) PasswordDigest() string {
	return r.passwordDigest
}

// Name returns the display name.
func (r *Rider) Name() string {
	return r.name
}

// ImageRef returns the stored image filename, empty when absent.
func (r *Rider) ImageRef() string {
	return r.imageRef
}

// VehicleRegistration returns the immutable vehicle registration.
func (r *Rider) VehicleRegistration() string {
	return r.vehicleRegistration
}

// Location returns the rider's current geo point, nil when never reported.
func (r *Rider) Location() *kernel.GeoPoint {
	return r.location
}

// Available reports whether the rider can accept a new assignment.
func (r *Rider) Available() bool {
	return r.available
}

// SetImageRef attaches an image filename to the rider.
func (r *Rider) SetImageRef(imageRef string) {
	r.imageRef = imageRef
}

// MoveTo updates the rider's current position. Unlike user addresses, the
// location-update operation requires valid coordinates.
func (r *Rider) MoveTo(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = &location
	return nil
}

// MarkBusy flags the rider as working a delivery. Called by the lifecycle
// engine when a rider claims a delivery or reports a non-terminal status.
func (r *Rider) MarkBusy() {
	r.available = false
}

// MarkFree flags the rider as available again. Called by the lifecycle engine
// when the delivery reaches its terminal delivered status.
func (r *Rider) MarkFree() {
	r.available = true
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	r.phone = phone
	return nil
}

func (r *Rider) setPasswordDigest(digest string) error {
	if digest == "" {
		return ErrPasswordDigestIsRequired
	}
	r.passwordDigest = digest
	return nil
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Rider) setVehicleRegistration(vehicleRegistration string) error {
	if vehicleRegistration == "" {
		return ErrVehicleRegistrationIsRequired
	}
	r.vehicleRegistration = vehicleRegistration
	return nil
}
