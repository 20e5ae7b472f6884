package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/repository"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

// FamilyService manages guardians, registered children and intake
// prospects, including the prospect-to-child promotion.
type FamilyService struct {
	guardians repository.GuardianRepository
	children  repository.ChildRepository
	prospects repository.ProspectRepository
}

// NewFamilyService constructs the service.
func NewFamilyService(
	guardians repository.GuardianRepository,
	children repository.ChildRepository,
	prospects repository.ProspectRepository,
) *FamilyService {
	return &FamilyService{guardians: guardians, children: children, prospects: prospects}
}

// --- guardians ---

// ListGuardians returns all guardian records.
func (s *FamilyService) ListGuardians(ctx context.Context) ([]domain.Guardian, error) {
	return s.guardians.List(ctx)
}

// GetGuardian returns a guardian by id.
func (s *FamilyService) GetGuardian(ctx context.Context, id int64) (*domain.Guardian, error) {
	guardian, err := s.guardians.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("guardian", map[string]any{"id": id})
		}
		return nil, err
	}
	return guardian, nil
}

// CreateGuardian stores a new guardian record.
func (s *FamilyService) CreateGuardian(ctx context.Context, guardian *domain.Guardian) (*domain.Guardian, error) {
	if err := s.guardians.Create(ctx, guardian); err != nil {
		return nil, err
	}
	return guardian, nil
}

// UpdateGuardian stores a full replacement of the guardian record.
func (s *FamilyService) UpdateGuardian(ctx context.Context, guardian *domain.Guardian) (*domain.Guardian, error) {
	if _, err := s.GetGuardian(ctx, guardian.ID); err != nil {
		return nil, err
	}
	if err := s.guardians.Update(ctx, guardian); err != nil {
		return nil, err
	}
	return guardian, nil
}

// DeleteGuardian removes a guardian record.
func (s *FamilyService) DeleteGuardian(ctx context.Context, id int64) error {
	if err := s.guardians.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("guardian", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// --- children ---

// ListChildren returns all registered children.
func (s *FamilyService) ListChildren(ctx context.Context) ([]domain.Child, error) {
	return s.children.List(ctx)
}

// GetChild returns a child by id.
func (s *FamilyService) GetChild(ctx context.Context, id int64) (*domain.Child, error) {
	child, err := s.children.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("child", map[string]any{"id": id})
		}
		return nil, err
	}
	return child, nil
}

// CreateChild registers a child.
func (s *FamilyService) CreateChild(ctx context.Context, child *domain.Child) (*domain.Child, error) {
	if strings.TrimSpace(child.FirstName) == "" {
		return nil, apperrors.NewValidationError("first_name is required", nil)
	}
	if err := s.checkGuardian(ctx, child.GuardianID); err != nil {
		return nil, err
	}
	child.Active = true
	if err := s.children.Create(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

// UpdateChild stores a full replacement of the child record.
func (s *FamilyService) UpdateChild(ctx context.Context, child *domain.Child) (*domain.Child, error) {
	if _, err := s.GetChild(ctx, child.ID); err != nil {
		return nil, err
	}
	if err := s.checkGuardian(ctx, child.GuardianID); err != nil {
		return nil, err
	}
	if err := s.children.Update(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

// DeleteChild removes a child record.
func (s *FamilyService) DeleteChild(ctx context.Context, id int64) error {
	if err := s.children.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("child", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// --- prospects ---

// ListProspects returns active intake prospects.
func (s *FamilyService) ListProspects(ctx context.Context) ([]domain.Prospect, error) {
	return s.prospects.ListActive(ctx)
}

// GetProspect returns a prospect by id.
func (s *FamilyService) GetProspect(ctx context.Context, id int64) (*domain.Prospect, error) {
	prospect, err := s.prospects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("prospect", map[string]any{"id": id})
		}
		return nil, err
	}
	return prospect, nil
}

// CreateProspect stores a new intake prospect.
func (s *FamilyService) CreateProspect(ctx context.Context, prospect *domain.Prospect) (*domain.Prospect, error) {
	if strings.TrimSpace(prospect.FirstName) == "" {
		return nil, apperrors.NewValidationError("first_name is required", nil)
	}
	prospect.Active = true
	if err := s.prospects.Create(ctx, prospect); err != nil {
		return nil, err
	}
	return prospect, nil
}

// UpdateProspect stores a full replacement of the prospect record.
func (s *FamilyService) UpdateProspect(ctx context.Context, prospect *domain.Prospect) (*domain.Prospect, error) {
	if _, err := s.GetProspect(ctx, prospect.ID); err != nil {
		return nil, err
	}
	if err := s.prospects.Update(ctx, prospect); err != nil {
		return nil, err
	}
	return prospect, nil
}

// DeleteProspect deactivates the prospect. Intake history stays queryable.
func (s *FamilyService) DeleteProspect(ctx context.Context, id int64) error {
	if _, err := s.GetProspect(ctx, id); err != nil {
		return err
	}
	return s.prospects.Deactivate(ctx, id)
}

// RegisterProspect turns a prospect into a registered child and
// deactivates the intake record. The caller promotes any appointments
// separately.
func (s *FamilyService) RegisterProspect(ctx context.Context, id int64, guardianID *int64) (*domain.Child, error) {
	prospect, err := s.GetProspect(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkGuardian(ctx, guardianID); err != nil {
		return nil, err
	}

	child := &domain.Child{
		FirstName:       prospect.FirstName,
		PaternalSurname: prospect.PaternalSurname,
		MaternalSurname: prospect.MaternalSurname,
		BirthDate:       prospect.BirthDate,
		Sex:             prospect.Sex,
		GuardianID:      guardianID,
		Notes:           prospect.Notes,
		Active:          true,
	}
	if child.BirthDate == nil && prospect.ApproximateAge != nil {
		approx := time.Now().AddDate(-*prospect.ApproximateAge, 0, 0)
		child.BirthDate = &approx
	}

	if err := s.children.Create(ctx, child); err != nil {
		return nil, err
	}
	if err := s.prospects.Deactivate(ctx, id); err != nil {
		return nil, err
	}
	return child, nil
}

func (s *FamilyService) checkGuardian(ctx context.Context, guardianID *int64) error {
	if guardianID == nil {
		return nil
	}
	if _, err := s.guardians.GetByID(ctx, *guardianID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("unknown guardian", map[string]any{"guardian_id": *guardianID})
		}
		return err
	}
	return nil
}
