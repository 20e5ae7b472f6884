package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/repository"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

// UserService serves the user directory and the coordinator views, which
// are role-filtered projections over the same user table.
type UserService struct {
	users repository.UserRepository
	roles repository.RoleRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, roles repository.RoleRepository) *UserService {
	return &UserService{users: users, roles: roles}
}

// UserProfileUpdateInput is a sparse profile update.
type UserProfileUpdateInput struct {
	FirstName          *string
	SetPaternalSurname bool
	PaternalSurname    *string
	SetMaternalSurname bool
	MaternalSurname    *string
	SetPhone           bool
	Phone              *string
	SetProfilePhoto    bool
	ProfilePhoto       *string
	Active             *bool
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}
	return user, nil
}

// ListCoordinators returns users holding the coordinator role. An empty
// slice comes back when the role record itself does not exist.
func (s *UserService) ListCoordinators(ctx context.Context) ([]domain.User, error) {
	role, err := s.roles.GetByName(ctx, domain.RoleCoordinator)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.User{}, nil
		}
		return nil, err
	}
	return s.users.ListByRole(ctx, role.ID)
}

// GetCoordinator returns a user by id only if they hold the coordinator
// role; anyone else is reported as not found.
func (s *UserService) GetCoordinator(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireCoordinator(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateCoordinator applies a sparse profile update to a coordinator.
func (s *UserService) UpdateCoordinator(ctx context.Context, id int64, input UserProfileUpdateInput) (*domain.User, error) {
	user, err := s.GetCoordinator(ctx, id)
	if err != nil {
		return nil, err
	}
	applyProfileUpdate(user, input)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteCoordinator removes a coordinator's user account.
func (s *UserService) DeleteCoordinator(ctx context.Context, id int64) error {
	if _, err := s.GetCoordinator(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

func (s *UserService) requireCoordinator(ctx context.Context, user *domain.User) error {
	if user.RoleID == nil {
		return apperrors.NewNotFound("coordinator", map[string]any{"id": user.ID})
	}
	role, err := s.roles.GetByID(ctx, *user.RoleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("coordinator", map[string]any{"id": user.ID})
		}
		return err
	}
	if role.Name != domain.RoleCoordinator {
		return apperrors.NewNotFound("coordinator", map[string]any{"id": user.ID})
	}
	return nil
}

func applyProfileUpdate(user *domain.User, input UserProfileUpdateInput) {
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.SetPaternalSurname {
		user.PaternalSurname = input.PaternalSurname
	}
	if input.SetMaternalSurname {
		user.MaternalSurname = input.MaternalSurname
	}
	if input.SetPhone {
		user.Phone = input.Phone
	}
	if input.SetProfilePhoto {
		user.ProfilePhoto = input.ProfilePhoto
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
}
