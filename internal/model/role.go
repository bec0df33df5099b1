package model

import (
	"errors"
	"fmt"
)

// ErrUnknownRole is returned for role values outside the closed Role set.
var ErrUnknownRole = errors.New("unknown role")

type Role string

const (
	RoleBusiness    Role = "business"
	RoleDataScience Role = "data_science"
	RoleAdmin       Role = "admin"
)

// Roles lists every valid role in display order.
func Roles() []Role {
	return []Role{RoleBusiness, RoleDataScience, RoleAdmin}
}

// ParseRole validates s against the known roles.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleBusiness, RoleDataScience, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// SelfAssignable reports whether a user may choose this role at signup.
func (r Role) SelfAssignable() bool {
	switch r {
	case RoleBusiness, RoleDataScience:
		return true
	case RoleAdmin:
		return false
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
