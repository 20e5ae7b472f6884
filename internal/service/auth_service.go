package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/autismo-mochis/clinic-service/internal/auth"
	"github.com/autismo-mochis/clinic-service/internal/config"
	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/repository"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

// AuthService coordinates login and credential changes.
type AuthService struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, roles repository.RoleRepository) *AuthService {
	return &AuthService{
		users:      users,
		roles:      roles,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login authenticates by email and password and returns the user, their
// role (nil when unassigned) and a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *domain.Role, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
		}
		return nil, nil, "", time.Time{}, err
	}
	if !user.Active {
		return nil, nil, "", time.Time{}, apperrors.NewUnauthenticated("user disabled")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
	}

	var role *domain.Role
	if user.RoleID != nil {
		if r, err := s.roles.GetByID(ctx, *user.RoleID); err == nil {
			role = r
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, "", time.Time{}, err
		}
	}

	token, exp, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		return nil, nil, "", time.Time{}, err
	}

	_ = s.users.TouchLastLogin(ctx, user.ID)
	return user, role, token, exp, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewUnauthenticated("invalid credentials")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
