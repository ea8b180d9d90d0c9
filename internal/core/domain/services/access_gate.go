package services

import (
	"servicetrack/internal/core/domain/model/principal"
	"servicetrack/internal/pkg/errs"
)

// DenyReason is a machine-readable code explaining an authorization denial,
// so the caller can route to the correct remediation view.
type DenyReason string

const (
	// DenyNoSession means no authenticated principal was presented.
	DenyNoSession DenyReason = "no_session"

	// DenyEmailUnverified means the auth provider has not confirmed the address.
	DenyEmailUnverified DenyReason = "email_unverified"

	// DenyPendingApproval means the principal awaits staff approval.
	DenyPendingApproval DenyReason = "pending_approval"

	// DenyRoleMismatch means the principal's role is not in the required set.
	DenyRoleMismatch DenyReason = "role_mismatch"
)

// Decision is the tagged result of an authorization check: either an allow,
// or a deny carrying the distinguishing reason.
type Decision struct {
	allowed bool
	reason  DenyReason
}

// Allowed reports whether the operation may proceed.
func (d Decision) Allowed() bool {
	return d.allowed
}

// Reason returns the deny reason; empty for an allow decision.
func (d Decision) Reason() DenyReason {
	return d.reason
}

// Err returns nil for an allow decision and a typed *errs.AccessDeniedError
// carrying the reason code otherwise.
func (d Decision) Err() error {
	if d.allowed {
		return nil
	}
	return errs.NewAccessDeniedError(string(d.reason))
}

func allow() Decision {
	return Decision{allowed: true}
}

func deny(reason DenyReason) Decision {
	return Decision{reason: reason}
}

// MutatingRoles is the role set the gate requires for every order mutation:
// technician and sales principals are read-only.
var MutatingRoles = []principal.Role{
	principal.RoleStaff,
	principal.RoleManager,
	principal.RoleOwner,
	principal.RoleAdmin,
}

// AccessGate is the single place role checks live. It is stateless and pure:
// every decision derives entirely from the principal snapshot passed in, and
// decisions must not be cached beyond a single check.
//
// Principal states, checked in order:
//   - unauthenticated (nil snapshot)        -> deny no_session
//   - authenticated, email unverified       -> deny email_unverified
//   - authenticated, not yet approved       -> deny pending_approval
//   - approved but role outside required    -> deny role_mismatch
//   - approved with a required role         -> allow
//
// Example usage:
//
//	gate := services.NewAccessGate()
//	decision := gate.Authorize(actor, services.MutatingRoles...)
//	if !decision.Allowed() {
//	    return decision.Err()
//	}
type AccessGate struct{}

// NewAccessGate creates a new AccessGate instance.
func NewAccessGate() AccessGate {
	return AccessGate{}
}

// Authorize decides whether the given principal may perform an operation
// restricted to the given roles.
//
// Parameters:
//   - p: The principal snapshot, or nil when no session exists
//   - requiredRoles: The roles allowed to perform the operation
//
// Returns:
//   - Decision: allow, or deny with the distinguishing reason
func (g AccessGate) Authorize(p *principal.Principal, requiredRoles ...principal.Role) Decision {
	if p == nil || p.Validate() != nil {
		return deny(DenyNoSession)
	}
	if !p.EmailVerified() {
		return deny(DenyEmailUnverified)
	}
	if !p.Approved() {
		return deny(DenyPendingApproval)
	}
	if !p.Role().In(requiredRoles...) {
		return deny(DenyRoleMismatch)
	}
	return allow()
}

// AuthorizeStaffManagement decides whether the principal may approve or
// reject pending staff and reassign roles. Only managers, owners, and
// admins may.
func (g AccessGate) AuthorizeStaffManagement(p *principal.Principal) Decision {
	return g.Authorize(p, principal.RoleManager, principal.RoleOwner, principal.RoleAdmin)
}
