package queries

import (
	"errors"
	"fmt"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

// AccountKind selects which credential table an authentication attempt runs
// against. Users and riders live in separate tables and carry separate
// profiles, so the caller has to say which one it is logging into.
type AccountKind string

const (
	AccountKindUser  AccountKind = "user"
	AccountKindRider AccountKind = "rider"
)

// IsValid checks the kind against the known account kinds.
func (k AccountKind) IsValid() error {
	switch k {
	case AccountKindUser, AccountKindRider:
		return nil
	default:
		return fmt.Errorf("%w: account kind '%s'", errs.ErrValueIsInvalid, k)
	}
}

var (
	ErrAuthenticateQueryIsNotConstructed = errors.New(
		"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
	)

	// ErrAccountNotFound is returned when no account with the given phone
	// number exists for the requested kind.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCredentials is returned when the password does not match the
	// stored digest.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthenticateQuery checks a phone number and password against one of the
// account tables.
type AuthenticateQuery struct {
	guard guard.ConstructorGuard

	kind     AccountKind
	phone    string
	password string
}

// NewAuthenticateQuery creates an authentication query for the given account
// kind and credentials.
func NewAuthenticateQuery(kind AccountKind, phone string, password string) (AuthenticateQuery, error) {
	if err := kind.IsValid(); err != nil {
		return AuthenticateQuery{}, err
	}
	if phone == "" {
		return AuthenticateQuery{}, errs.NewValueIsRequiredError("phone")
	}
	if password == "" {
		return AuthenticateQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateQuery{
		guard:    guard.NewConstructorGuard(),
		kind:     kind,
		phone:    phone,
		password: password,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

func (q AuthenticateQuery) Kind() AccountKind {
	return q.kind
}

func (q AuthenticateQuery) Phone() string {
	return q.phone
}

func (q AuthenticateQuery) Password() string {
	return q.password
}

// AuthenticateQueryResponse is the authenticated account's profile. Role is
// set for user accounts, VehicleRegistration for rider accounts.
type AuthenticateQueryResponse struct {
	ID       kernel.UUID
	Kind     AccountKind
	Name     string
	Phone    string
	ImageRef string

	Role                string
	VehicleRegistration string
}
