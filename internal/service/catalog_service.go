package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/repository"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

// CatalogService manages the clinical catalogs: therapies on offer and
// appointment kinds.
type CatalogService struct {
	therapies repository.TherapyRepository
	kinds     repository.AppointmentKindRepository
}

// NewCatalogService constructs the service.
func NewCatalogService(therapies repository.TherapyRepository, kinds repository.AppointmentKindRepository) *CatalogService {
	return &CatalogService{therapies: therapies, kinds: kinds}
}

// ListTherapies returns all therapies.
func (s *CatalogService) ListTherapies(ctx context.Context) ([]domain.Therapy, error) {
	return s.therapies.List(ctx)
}

// GetTherapy returns a therapy by id.
func (s *CatalogService) GetTherapy(ctx context.Context, id int64) (*domain.Therapy, error) {
	therapy, err := s.therapies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("therapy", map[string]any{"id": id})
		}
		return nil, err
	}
	return therapy, nil
}

// CreateTherapy stores a new therapy.
func (s *CatalogService) CreateTherapy(ctx context.Context, therapy *domain.Therapy) (*domain.Therapy, error) {
	if strings.TrimSpace(therapy.Name) == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if err := s.therapies.Create(ctx, therapy); err != nil {
		return nil, err
	}
	return therapy, nil
}

// UpdateTherapy stores a full replacement of the therapy record.
func (s *CatalogService) UpdateTherapy(ctx context.Context, therapy *domain.Therapy) (*domain.Therapy, error) {
	if _, err := s.GetTherapy(ctx, therapy.ID); err != nil {
		return nil, err
	}
	if err := s.therapies.Update(ctx, therapy); err != nil {
		return nil, err
	}
	return therapy, nil
}

// DeleteTherapy removes a therapy.
func (s *CatalogService) DeleteTherapy(ctx context.Context, id int64) error {
	if err := s.therapies.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("therapy", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// ListKinds returns all appointment kinds.
func (s *CatalogService) ListKinds(ctx context.Context) ([]domain.AppointmentKind, error) {
	return s.kinds.List(ctx)
}

// GetKind returns an appointment kind by id.
func (s *CatalogService) GetKind(ctx context.Context, id int64) (*domain.AppointmentKind, error) {
	kind, err := s.kinds.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("appointment kind", map[string]any{"id": id})
		}
		return nil, err
	}
	return kind, nil
}

// CreateKind stores a new appointment kind. Names are unique.
func (s *CatalogService) CreateKind(ctx context.Context, kind *domain.AppointmentKind) (*domain.AppointmentKind, error) {
	kind.Name = strings.TrimSpace(kind.Name)
	if kind.Name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if _, err := s.kinds.GetByName(ctx, kind.Name); err == nil {
		return nil, apperrors.NewDuplicateValue("appointment kind", "name", kind.Name)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err := s.kinds.Create(ctx, kind); err != nil {
		return nil, err
	}
	return kind, nil
}

// UpdateKind renames or redescribes a kind, keeping names unique.
func (s *CatalogService) UpdateKind(ctx context.Context, kind *domain.AppointmentKind) (*domain.AppointmentKind, error) {
	if _, err := s.GetKind(ctx, kind.ID); err != nil {
		return nil, err
	}
	kind.Name = strings.TrimSpace(kind.Name)
	if kind.Name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if existing, err := s.kinds.GetByName(ctx, kind.Name); err == nil {
		if existing.ID != kind.ID {
			return nil, apperrors.NewDuplicateValue("appointment kind", "name", kind.Name)
		}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err := s.kinds.Update(ctx, kind); err != nil {
		return nil, err
	}
	return kind, nil
}

// DeleteKind removes an appointment kind.
func (s *CatalogService) DeleteKind(ctx context.Context, id int64) error {
	if err := s.kinds.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("appointment kind", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
