package domain

import (
	"errors"
	"fmt"
)

// Role is the closed set of authorization levels an administrator can hold.
// It is stored on the entity, embedded in tokens, and checked by the route
// authorization middleware.
type Role string

const (
	// RoleAdmin grants full access to every route, including administrator
	// management and vehicle updates/deletes.
	RoleAdmin Role = "Admin"

	// RoleEditor grants access to vehicle creation and single-vehicle reads.
	RoleEditor Role = "Editor"
)

// ErrUnknownRole is returned when a string cannot be parsed into a Role.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole converts an untrusted string into a Role. This is the single
// conversion point from the API boundary; everything past it works with the
// enumerated type.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleEditor:
		return RoleEditor, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// String returns the role's wire representation.
func (r Role) String() string {
	return string(r)
}

// Valid reports whether the role is one of the enumerated values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// Administrator represents a registered administrator of the fleet API.
// The password is stored only as a bcrypt hash; the hash is never exposed
// in JSON responses.
type Administrator struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
