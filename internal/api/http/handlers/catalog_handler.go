package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autismo-mochis/clinic-service/internal/api/dto"
	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/service"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

// CatalogHandler serves therapies and appointment kinds.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: catalogService}
}

// ListTherapies GET /therapies.
func (h *CatalogHandler) ListTherapies(c *fiber.Ctx) error {
	therapies, err := h.service.ListTherapies(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.TherapyResponse, 0, len(therapies))
	for i := range therapies {
		items = append(items, dto.NewTherapyResponse(&therapies[i]))
	}
	return dataResponse(c, items)
}

// GetTherapy GET /therapies/:id.
func (h *CatalogHandler) GetTherapy(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	therapy, err := h.service.GetTherapy(c.Context(), id)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewTherapyResponse(therapy))
}

// CreateTherapy POST /therapies.
func (h *CatalogHandler) CreateTherapy(c *fiber.Ctx) error {
	var req dto.TherapyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	therapy, err := h.service.CreateTherapy(c.Context(), &domain.Therapy{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Cost:            req.Cost,
	})
	if err != nil {
		return err
	}
	return createdResponse(c, dto.NewTherapyResponse(therapy))
}

// UpdateTherapy PUT /therapies/:id.
func (h *CatalogHandler) UpdateTherapy(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.TherapyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	therapy, err := h.service.UpdateTherapy(c.Context(), &domain.Therapy{
		ID:              id,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Cost:            req.Cost,
	})
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewTherapyResponse(therapy))
}

// DeleteTherapy DELETE /therapies/:id.
func (h *CatalogHandler) DeleteTherapy(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteTherapy(c.Context(), id); err != nil {
		return err
	}
	return dataResponse(c, fiber.Map{"deleted": true})
}

// ListKinds GET /appointment-kinds.
func (h *CatalogHandler) ListKinds(c *fiber.Ctx) error {
	kinds, err := h.service.ListKinds(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.AppointmentKindResponse, 0, len(kinds))
	for i := range kinds {
		items = append(items, dto.NewAppointmentKindResponse(&kinds[i]))
	}
	return dataResponse(c, items)
}

// GetKind GET /appointment-kinds/:id.
func (h *CatalogHandler) GetKind(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	kind, err := h.service.GetKind(c.Context(), id)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewAppointmentKindResponse(kind))
}

// CreateKind POST /appointment-kinds.
func (h *CatalogHandler) CreateKind(c *fiber.Ctx) error {
	var req dto.AppointmentKindRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	kind, err := h.service.CreateKind(c.Context(), &domain.AppointmentKind{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return createdResponse(c, dto.NewAppointmentKindResponse(kind))
}

// UpdateKind PUT /appointment-kinds/:id.
func (h *CatalogHandler) UpdateKind(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.AppointmentKindRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	kind, err := h.service.UpdateKind(c.Context(), &domain.AppointmentKind{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewAppointmentKindResponse(kind))
}

// DeleteKind DELETE /appointment-kinds/:id.
func (h *CatalogHandler) DeleteKind(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteKind(c.Context(), id); err != nil {
		return err
	}
	return dataResponse(c, fiber.Map{"deleted": true})
}
