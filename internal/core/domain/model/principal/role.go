package principal

import (
	"fmt"

	"servicetrack/internal/pkg/errs"
)

// Role classifies a principal for authorization decisions. Every principal
// carries exactly one role; there are no additional role-like flags.
//
// Roles are stored by name, not ordinal, so the set can grow without
// renumbering persisted data.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleGuest is the default classification before any staff role is granted.
	RoleGuest

	// RoleStaff is a front-desk or workshop member who may create orders and
	// drive status transitions. Staff members are also the pool that
	// technician assignments draw from.
	RoleStaff

	// RoleSales is a sales contact; read-only on orders.
	RoleSales

	// RoleTechnician is a repair technician; read-only on orders unless the
	// principal is classified as staff instead.
	RoleTechnician

	// RoleManager supervises staff and may approve pending principals.
	RoleManager

	// RoleOwner is the business owner; same authority as a manager for
	// staff management.
	RoleOwner

	// RoleAdmin is the system administrator.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleGuest:      "guest",
		RoleStaff:      "staff",
		RoleSales:      "sales",
		RoleTechnician: "technician",
		RoleManager:    "manager",
		RoleOwner:      "owner",
		RoleAdmin:      "admin",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleGuest:      "guest",
		RoleStaff:      "staff",
		RoleSales:      "sales",
		RoleTechnician: "technician",
		RoleManager:    "manager",
		RoleOwner:      "owner",
		RoleAdmin:      "admin",
	}
}

// RoleFromString parses the persisted role name into a Role.
// Returns an error for names outside the recognized set.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
//
// Valid roles are: guest, staff, sales, technician, manager, owner, admin.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the persisted name of the role.
// Implements fmt.Stringer; safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// CanManageStaff reports whether the role may approve or reject pending
// principals and reassign roles. Only managers, owners, and admins may.
func (r Role) CanManageStaff() bool {
	return r == RoleManager || r == RoleOwner || r == RoleAdmin
}

// In reports whether the role is one of the given roles.
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
