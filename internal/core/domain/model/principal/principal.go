package principal

import (
	"errors"
	"strings"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/pkg/errs"
)

var (
	// ErrPrincipalIsNotConstructed is returned when a Principal instance was not
	// created through the NewPrincipal factory method.
	ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")
)

// DivisionSales is the directory division whose members populate the sales
// contact candidate list.
const DivisionSales = "sales"

// Principal represents an authenticated actor as this core sees it: an
// identity snapshot plus the role and approval state that drive every
// authorization decision.
//
// The snapshot is supplied by the external authentication provider and the
// principal directory; this core only reads it. Approval and role changes
// happen in a separate staff-management workflow.
//
// Principal follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty email
//   - Must have a valid role
//   - Can only be created through NewPrincipal
type Principal struct {
	// id is the unique identifier of the principal
	id kernel.UUID

	// email is the verified contact address supplied by the auth provider
	email string

	// name is the display name from the directory
	name string

	// role is the single enumerated role used for authorization
	role Role

	// division is the organizational unit, e.g. "sales" or "workshop"
	division string

	// approved reports whether a manager-or-above accepted this principal
	approved bool

	// emailVerified reports whether the auth provider confirmed the address
	emailVerified bool

	// isConstructed ensures the principal was created via NewPrincipal
	isConstructed bool
}

// NewPrincipal creates a Principal snapshot with validation. This is the only
// way to create a valid Principal.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - email: Contact address (must be non-blank)
//   - name: Display name (may be empty; directory entries without names exist)
//   - role: Enumerated role (must be valid)
//   - division: Organizational unit (free-form, may be empty)
//   - approved: Whether the principal passed staff approval
//   - emailVerified: Whether the auth provider verified the address
func NewPrincipal(
	id kernel.UUID,
	email string,
	name string,
	role Role,
	division string,
	approved bool,
	emailVerified bool,
) (*Principal, error) {
	p := &Principal{
		name:          name,
		division:      division,
		approved:      approved,
		emailVerified: emailVerified,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setEmail(email),
		p.setRole(role),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Principal instance was properly constructed through
// NewPrincipal. Returns ErrPrincipalIsNotConstructed otherwise.
func (p *Principal) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

// IsEqual compares two principals by their unique identifiers.
func (p *Principal) IsEqual(other *Principal) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the principal's unique identifier.
func (p *Principal) ID() kernel.UUID {
	return p.id
}

// Email returns the principal's contact address.
func (p *Principal) Email() string {
	return p.email
}

// Name returns the principal's display name.
func (p *Principal) Name() string {
	return p.name
}

// Role returns the principal's enumerated role.
func (p *Principal) Role() Role {
	return p.role
}

// Division returns the principal's organizational unit.
func (p *Principal) Division() string {
	return p.division
}

// Approved reports whether the principal passed staff approval.
func (p *Principal) Approved() bool {
	return p.approved
}

// EmailVerified reports whether the auth provider verified the address.
func (p *Principal) EmailVerified() bool {
	return p.emailVerified
}

// IsAssignableTechnician reports whether this principal may appear in an
// order's technician set: an approved directory member with the staff or
// manager role.
func (p *Principal) IsAssignableTechnician() bool {
	return p.approved && p.role.In(RoleStaff, RoleManager)
}

func (p *Principal) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Principal) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	p.email = email
	return nil
}

func (p *Principal) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}
