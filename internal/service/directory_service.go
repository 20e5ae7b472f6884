package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/autismo-mochis/clinic-service/internal/auth"
	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/repository"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

// DirectoryService manages the administrative catalogs: roles, permissions
// and academic degrees.
type DirectoryService struct {
	roles       repository.RoleRepository
	permissions repository.PermissionRepository
	degrees     repository.DegreeRepository
	roleCache   *auth.RoleCache
}

// NewDirectoryService constructs the service. roleCache may be nil.
func NewDirectoryService(
	roles repository.RoleRepository,
	permissions repository.PermissionRepository,
	degrees repository.DegreeRepository,
	roleCache *auth.RoleCache,
) *DirectoryService {
	return &DirectoryService{
		roles:       roles,
		permissions: permissions,
		degrees:     degrees,
		roleCache:   roleCache,
	}
}

// ListRoles returns all roles.
func (s *DirectoryService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.roles.List(ctx)
}

// GetRole returns a role by id.
func (s *DirectoryService) GetRole(ctx context.Context, id int64) (*domain.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("role", map[string]any{"id": id})
		}
		return nil, err
	}
	return role, nil
}

// CreateRole creates a role. Names are unique.
func (s *DirectoryService) CreateRole(ctx context.Context, name, description string) (*domain.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if _, err := s.roles.GetByName(ctx, domain.RoleName(name)); err == nil {
		return nil, apperrors.NewDuplicateValue("role", "name", name)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	role := &domain.Role{Name: domain.RoleName(name), Description: description}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// UpdateRole renames or redescribes a role and invalidates its cache entry.
func (s *DirectoryService) UpdateRole(ctx context.Context, id int64, name, description *string) (*domain.Role, error) {
	role, err := s.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperrors.NewValidationError("name is required", nil)
		}
		if existing, err := s.roles.GetByName(ctx, domain.RoleName(trimmed)); err == nil {
			if existing.ID != id {
				return nil, apperrors.NewDuplicateValue("role", "name", trimmed)
			}
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		role.Name = domain.RoleName(trimmed)
	}
	if description != nil {
		role.Description = *description
	}

	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}
	s.invalidateRole(ctx, id)
	return role, nil
}

// DeleteRole removes a role and drops it from the cache.
func (s *DirectoryService) DeleteRole(ctx context.Context, id int64) error {
	if err := s.roles.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("role", map[string]any{"id": id})
		}
		return err
	}
	s.invalidateRole(ctx, id)
	return nil
}

// ListPermissions returns all permissions.
func (s *DirectoryService) ListPermissions(ctx context.Context) ([]domain.Permission, error) {
	return s.permissions.List(ctx)
}

// CreatePermission creates a permission. Names are unique.
func (s *DirectoryService) CreatePermission(ctx context.Context, name, description string) (*domain.Permission, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if _, err := s.permissions.GetByName(ctx, name); err == nil {
		return nil, apperrors.NewDuplicateValue("permission", "name", name)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	permission := &domain.Permission{Name: name, Description: description}
	if err := s.permissions.Create(ctx, permission); err != nil {
		return nil, err
	}
	return permission, nil
}

// ListDegrees returns all academic degrees.
func (s *DirectoryService) ListDegrees(ctx context.Context) ([]domain.Degree, error) {
	return s.degrees.List(ctx)
}

// CreateDegree creates a degree. Names are unique.
func (s *DirectoryService) CreateDegree(ctx context.Context, name string) (*domain.Degree, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if _, err := s.degrees.GetByName(ctx, name); err == nil {
		return nil, apperrors.NewDuplicateValue("degree", "name", name)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	degree := &domain.Degree{Name: name}
	if err := s.degrees.Create(ctx, degree); err != nil {
		return nil, err
	}
	return degree, nil
}

func (s *DirectoryService) invalidateRole(ctx context.Context, id int64) {
	if s.roleCache != nil {
		s.roleCache.Invalidate(ctx, id)
	}
}
