package authorize

import (
	"fmt"
	"strings"
)

// RoleName is the portal-facing role identifier stored on user rows and
// carried in tokens. Distinct from Role, which is the Casbin policy subject.
type RoleName string

const (
	RoleNameAdmin   RoleName = "ADMIN"
	RoleNameDoctor  RoleName = "DOCTOR"
	RoleNamePatient RoleName = "PATIENT"
)

// RoleNameToRBACRole maps stored role values to Casbin roles.
var RoleNameToRBACRole = map[RoleName]Role{
	RoleNameAdmin:   RoleAdmin,
	RoleNameDoctor:  RoleDoctor,
	RoleNamePatient: RolePatient,
}

// ParseRoleName normalizes free-form role input: case-insensitive, and a
// leading "ROLE_" prefix is tolerated ("role_doctor" → DOCTOR).
func ParseRoleName(s string) (RoleName, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.TrimPrefix(norm, "ROLE_")

	switch RoleName(norm) {
	case RoleNameAdmin:
		return RoleNameAdmin, nil
	case RoleNameDoctor:
		return RoleNameDoctor, nil
	case RoleNamePatient:
		return RoleNamePatient, nil
	default:
		return "", fmt.Errorf("%w: unknown role: %q", ErrInvalidArgs, s)
	}
}

// MustRoleName parses a role value already validated upstream (e.g. a DB
// enum). Panics on unknown input.
func MustRoleName(s string) RoleName {
	rn, err := ParseRoleName(s)
	if err != nil {
		panic(err)
	}
	return rn
}
