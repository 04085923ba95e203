package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterUserCommand represents a request to create a new user account.
// Carries the plaintext password; hashing happens in the handler so the
// domain layer only ever sees digests.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	phone    string
	password string
	name     string
	role     user.Role

	imageRef string
	address  string
	location *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user account.
// Validates that the ID, phone, password, name, and role are all present.
func NewRegisterUserCommand(
	userID kernel.UUID, phone, password, name string, role user.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPhone(phone),
		cmd.setPassword(password),
		cmd.setName(name),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Phone returns the phone number the account logs in with.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Password returns the plaintext password to be hashed.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Role returns the initial role tag.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

// ImageRef returns the optional profile image filename.
func (c RegisterUserCommand) ImageRef() string {
	return c.imageRef
}

// Address returns the optional free-form address.
func (c RegisterUserCommand) Address() string {
	return c.address
}

// Location returns the optional geo point, nil when absent.
func (c RegisterUserCommand) Location() *kernel.GeoPoint {
	return c.location
}

// SetImageRef attaches an optional profile image filename.
func (c *RegisterUserCommand) SetImageRef(imageRef string) {
	c.imageRef = imageRef
}

// SetAddress attaches an optional free-form address.
func (c *RegisterUserCommand) SetAddress(address string) {
	c.address = address
}

// SetLocation attaches an optional geo point.
func (c *RegisterUserCommand) SetLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = &location
	return nil
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setPhone(phone string) error {
	if phone == "" {
		return user.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return user.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
