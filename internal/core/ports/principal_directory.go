package ports

import (
	"context"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/principal"
)

// PrincipalDirectory is the readable projection of all principals with their
// role, division, and approval state. This core only reads from it; role and
// approval management is an external workflow.
type PrincipalDirectory interface {
	// Get retrieves a principal snapshot by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*principal.Principal, error)

	// GetAllApprovedByRoles retrieves all approved principals whose role is
	// in the given set. Used to validate and populate the technician
	// candidate list (role staff or manager).
	GetAllApprovedByRoles(ctx context.Context, roles ...principal.Role) ([]*principal.Principal, error)

	// GetAllInDivision retrieves all approved principals in the given
	// division. Used to populate the sales contact candidate list.
	GetAllInDivision(ctx context.Context, division string) ([]*principal.Principal, error)
}
