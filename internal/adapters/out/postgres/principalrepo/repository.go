// Package principalrepo provides the read-only principal directory backed by
// the principals table. Role and approval management happens in an external
// workflow; this adapter only projects the current state.
package principalrepo

import (
	"context"
	"errors"

	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/principal"
	"servicetrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrincipalDTO represents the database row of a directory principal.
type PrincipalDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:text;uniqueIndex"`
	Name          string    `gorm:"type:text"`
	Role          string    `gorm:"type:text;index"`
	Division      string    `gorm:"type:text;index"`
	Approved      bool
	EmailVerified bool
}

// TableName specifies the database table name for principals.
func (PrincipalDTO) TableName() string {
	return "principals"
}

func toDomain(dto PrincipalDTO) (*principal.Principal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := principal.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return principal.NewPrincipal(
		id, dto.Email, dto.Name, role, dto.Division, dto.Approved, dto.EmailVerified,
	)
}

// GormPrincipalDirectory implements PrincipalDirectory using GORM.
type GormPrincipalDirectory struct {
	db *gorm.DB
}

// NewGormPrincipalDirectory creates a new GORM principal directory.
func NewGormPrincipalDirectory(db *gorm.DB) *GormPrincipalDirectory {
	return &GormPrincipalDirectory{db: db}
}

// Get retrieves a principal snapshot by id.
func (r *GormPrincipalDirectory) Get(ctx context.Context, id kernel.UUID) (*principal.Principal, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PrincipalDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("principal", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllApprovedByRoles retrieves all approved principals whose role is in
// the given set, sorted by name.
func (r *GormPrincipalDirectory) GetAllApprovedByRoles(
	ctx context.Context, roles ...principal.Role,
) ([]*principal.Principal, error) {
	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return nil, err
		}
		roleNames = append(roleNames, role.String())
	}

	var dtos []PrincipalDTO
	err := r.db.WithContext(ctx).
		Where("approved AND role IN ?", roleNames).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllInDivision retrieves all approved principals in the given division,
// sorted by name.
func (r *GormPrincipalDirectory) GetAllInDivision(
	ctx context.Context, division string,
) ([]*principal.Principal, error) {
	var dtos []PrincipalDTO
	err := r.db.WithContext(ctx).
		Where("approved AND division = ?", division).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []PrincipalDTO) ([]*principal.Principal, error) {
	principals := make([]*principal.Principal, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		principals = append(principals, p)
	}
	return principals, nil
}
