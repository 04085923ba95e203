package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/rider"
	"swiftdrop/internal/pkg/guard"
)

var ErrRegisterRiderCommandIsNotConstructed = errors.New(
	"RegisterRiderCommand must be created via NewRegisterRiderCommand constructor",
)

// RegisterRiderCommand represents a request to create a new rider account.
// Like RegisterUserCommand it carries the plaintext password; the handler
// hashes it.
type RegisterRiderCommand struct { //nolint:recvcheck //using for validation
	riderID             kernel.UUID
	phone               string
	password            string
	name                string
	vehicleRegistration string

	imageRef string
	location *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterRiderCommand creates a command to register a new rider account.
func NewRegisterRiderCommand(
	riderID kernel.UUID, phone, password, name, vehicleRegistration string,
) (RegisterRiderCommand, error) {
	cmd := RegisterRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setPhone(phone),
		cmd.setPassword(password),
		cmd.setName(name),
		cmd.setVehicleRegistration(vehicleRegistration),
	); err != nil {
		return RegisterRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRiderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRiderCommandIsNotConstructed)
}

// RiderID returns the identifier for the new account.
func (c RegisterRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Phone returns the phone number the account logs in with.
func (c RegisterRiderCommand) Phone() string {
	return c.phone
}

// Password returns the plaintext password to be hashed.
func (c RegisterRiderCommand) Password() string {
	return c.password
}

// Name returns the display name.
func (c RegisterRiderCommand) Name() string {
	return c.name
}

// VehicleRegistration returns the rider's vehicle registration plate.
func (c RegisterRiderCommand) VehicleRegistration() string {
	return c.vehicleRegistration
}

// ImageRef returns the optional profile image filename.
func (c RegisterRiderCommand) ImageRef() string {
	return c.imageRef
}

// Location returns the optional starting geo point, nil when absent.
func (c RegisterRiderCommand) Location() *kernel.GeoPoint {
	return c.location
}

// SetImageRef attaches an optional profile image filename.
func (c *RegisterRiderCommand) SetImageRef(imageRef string) {
	c.imageRef = imageRef
}

// SetLocation attaches an optional starting geo point.
func (c *RegisterRiderCommand) SetLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = &location
	return nil
}

func (c *RegisterRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *RegisterRiderCommand) setPhone(phone string) error {
	if phone == "" {
		return rider.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterRiderCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterRiderCommand) setName(name string) error {
	if name == "" {
		return rider.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterRiderCommand) setVehicleRegistration(vehicleRegistration string) error {
	if vehicleRegistration == "" {
		return rider.ErrVehicleRegistrationIsRequired
	}

	c.vehicleRegistration = vehicleRegistration
	return nil
}
