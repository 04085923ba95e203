package user

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

// Domain errors for user operations.
var (
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructors")
	// ErrPhoneIsRequired is returned when attempting to create a user without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phoneNumber")
	// ErrPasswordDigestIsRequired is returned when the password digest is missing.
	// Plaintext passwords never reach this aggregate; hashing happens in the command layer.
	ErrPasswordDigestIsRequired = errs.NewValueIsRequiredError("passwordDigest")
	// ErrNameIsRequired is returned when attempting to create a user without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// User is the aggregate root for sender/receiver accounts.
//
// Invariants:
//   - Phone number, password digest, display name, and a valid role are always present.
//   - The phone number is unique across users (enforced by the persistence layer).
//   - Image reference, address, and geo point are optional.
type User struct {
	id             kernel.UUID
	phone          string
	passwordDigest string
	name           string
	imageRef       string
	address        string
	location       *kernel.GeoPoint
	role           Role

	guard guard.ConstructorGuard
}

// NewUser creates a User with the required fields validated.
// Optional attributes (image, address, location) are attached afterwards
// via their setters before the aggregate is first persisted.
func NewUser(id kernel.UUID, phone, passwordDigest, name string, role Role) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setPhone(phone),
		u.setPasswordDigest(passwordDigest),
		u.setName(name),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistent storage, including the
// optional attributes.
func RestoreUser(
	id kernel.UUID,
	phone, passwordDigest, name string,
	imageRef, address string,
	location *kernel.GeoPoint,
	role Role,
) (*User, error) {
	u, err := NewUser(id, phone, passwordDigest, name, role)
	if err != nil {
		return nil, err
	}

	u.imageRef = imageRef
	u.address = address
	if location != nil {
		if err = location.Validate(); err != nil {
			return nil, err
		}
		u.location = location
	}

	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || u.guard.Validate(ErrUserIsNotConstructed) != nil {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Phone returns the unique phone number used for login and receiver matching.
func (u *User) Phone() string {
	return u.phone
}

// PasswordDigest returns the stored bcrypt digest.
func (u *User) PasswordDigest() string {
	return u.passwordDigest
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// ImageRef returns the stored image filename, empty when absent.
func (u *User) ImageRef() string {
	return u.imageRef
}

// Address returns the free-form address string, empty when absent.
func (u *User) Address() string {
	return u.address
}

// Location returns the user's geo point, nil when absent.
func (u *User) Location() *kernel.GeoPoint {
	return u.location
}

// Role returns the current role tag.
func (u *User) Role() Role {
	return u.role
}

// SetImageRef attaches an image filename to the user.
func (u *User) SetImageRef(imageRef string) {
	u.imageRef = imageRef
}

// SetAddress attaches a free-form address to the user.
func (u *User) SetAddress(address string) {
	u.address = address
}

// SetLocation attaches a geo point to the user.
func (u *User) SetLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	u.location = &location
	return nil
}

// ChangeRole switches the account between sender and receiver.
func (u *User) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	u.phone = phone
	return nil
}

func (u *User) setPasswordDigest(digest string) error {
	if digest == "" {
		return ErrPasswordDigestIsRequired
	}
	u.passwordDigest = digest
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
