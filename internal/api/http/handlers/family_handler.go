package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autismo-mochis/clinic-service/internal/api/dto"
	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/service"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

// FamilyHandler serves guardians, children and intake prospects.
type FamilyHandler struct {
	service *service.FamilyService
}

// NewFamilyHandler constructs handler.
func NewFamilyHandler(familyService *service.FamilyService) *FamilyHandler {
	return &FamilyHandler{service: familyService}
}

// ListGuardians GET /guardians.
func (h *FamilyHandler) ListGuardians(c *fiber.Ctx) error {
	guardians, err := h.service.ListGuardians(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.GuardianResponse, 0, len(guardians))
	for i := range guardians {
		items = append(items, dto.NewGuardianResponse(&guardians[i]))
	}
	return dataResponse(c, items)
}

// GetGuardian GET /guardians/:id.
func (h *FamilyHandler) GetGuardian(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	guardian, err := h.service.GetGuardian(c.Context(), id)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewGuardianResponse(guardian))
}

// CreateGuardian POST /guardians.
func (h *FamilyHandler) CreateGuardian(c *fiber.Ctx) error {
	var req dto.GuardianRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	guardian, err := h.service.CreateGuardian(c.Context(), req.ToDomain(0))
	if err != nil {
		return err
	}
	return createdResponse(c, dto.NewGuardianResponse(guardian))
}

// UpdateGuardian PUT /guardians/:id.
func (h *FamilyHandler) UpdateGuardian(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.GuardianRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	guardian, err := h.service.UpdateGuardian(c.Context(), req.ToDomain(id))
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewGuardianResponse(guardian))
}

// DeleteGuardian DELETE /guardians/:id.
func (h *FamilyHandler) DeleteGuardian(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteGuardian(c.Context(), id); err != nil {
		return err
	}
	return dataResponse(c, fiber.Map{"deleted": true})
}

// ListChildren GET /children.
func (h *FamilyHandler) ListChildren(c *fiber.Ctx) error {
	children, err := h.service.ListChildren(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ChildResponse, 0, len(children))
	for i := range children {
		items = append(items, dto.NewChildResponse(&children[i]))
	}
	return dataResponse(c, items)
}

// GetChild GET /children/:id.
func (h *FamilyHandler) GetChild(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	child, err := h.service.GetChild(c.Context(), id)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewChildResponse(child))
}

// CreateChild POST /children.
func (h *FamilyHandler) CreateChild(c *fiber.Ctx) error {
	child, err := h.parseChild(c, 0)
	if err != nil {
		return err
	}
	created, err := h.service.CreateChild(c.Context(), child)
	if err != nil {
		return err
	}
	return createdResponse(c, dto.NewChildResponse(created))
}

// UpdateChild PUT /children/:id.
func (h *FamilyHandler) UpdateChild(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	child, err := h.parseChild(c, id)
	if err != nil {
		return err
	}
	existing, err := h.service.GetChild(c.Context(), id)
	if err != nil {
		return err
	}
	child.Active = existing.Active

	updated, err := h.service.UpdateChild(c.Context(), child)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewChildResponse(updated))
}

// DeleteChild DELETE /children/:id.
func (h *FamilyHandler) DeleteChild(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteChild(c.Context(), id); err != nil {
		return err
	}
	return dataResponse(c, fiber.Map{"deleted": true})
}

// ListProspects GET /prospects.
func (h *FamilyHandler) ListProspects(c *fiber.Ctx) error {
	prospects, err := h.service.ListProspects(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ProspectResponse, 0, len(prospects))
	for i := range prospects {
		items = append(items, dto.NewProspectResponse(&prospects[i]))
	}
	return dataResponse(c, items)
}

// GetProspect GET /prospects/:id.
func (h *FamilyHandler) GetProspect(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	prospect, err := h.service.GetProspect(c.Context(), id)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewProspectResponse(prospect))
}

// CreateProspect POST /prospects.
func (h *FamilyHandler) CreateProspect(c *fiber.Ctx) error {
	prospect, err := h.parseProspect(c, 0)
	if err != nil {
		return err
	}
	created, err := h.service.CreateProspect(c.Context(), prospect)
	if err != nil {
		return err
	}
	return createdResponse(c, dto.NewProspectResponse(created))
}

// UpdateProspect PUT /prospects/:id.
func (h *FamilyHandler) UpdateProspect(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	prospect, err := h.parseProspect(c, id)
	if err != nil {
		return err
	}
	existing, err := h.service.GetProspect(c.Context(), id)
	if err != nil {
		return err
	}
	prospect.Active = existing.Active

	updated, err := h.service.UpdateProspect(c.Context(), prospect)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewProspectResponse(updated))
}

// DeleteProspect DELETE /prospects/:id. Soft delete.
func (h *FamilyHandler) DeleteProspect(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteProspect(c.Context(), id); err != nil {
		return err
	}
	return dataResponse(c, fiber.Map{"deleted": true})
}

// RegisterProspect POST /prospects/:id/register.
func (h *FamilyHandler) RegisterProspect(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.RegisterProspectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	child, err := h.service.RegisterProspect(c.Context(), id, req.GuardianID)
	if err != nil {
		return err
	}
	return createdResponse(c, dto.NewChildResponse(child))
}

func (h *FamilyHandler) parseChild(c *fiber.Ctx, id int64) (*domain.Child, error) {
	var req dto.ChildRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	birthDate, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidationError("birth_date must be YYYY-MM-DD", nil)
	}
	return &domain.Child{
		ID:               id,
		FirstName:        req.FirstName,
		PaternalSurname:  req.PaternalSurname,
		MaternalSurname:  req.MaternalSurname,
		BirthDate:        birthDate,
		Sex:              req.Sex,
		GuardianID:       req.GuardianID,
		ResponsibleID:    req.ResponsibleID,
		SchoolGrade:      req.SchoolGrade,
		PrimaryDiagnosis: req.PrimaryDiagnosis,
		Allergies:        req.Allergies,
		Notes:            req.Notes,
	}, nil
}

func (h *FamilyHandler) parseProspect(c *fiber.Ctx, id int64) (*domain.Prospect, error) {
	var req dto.ProspectRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	birthDate, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidationError("birth_date must be YYYY-MM-DD", nil)
	}
	return &domain.Prospect{
		ID:              id,
		FirstName:       req.FirstName,
		PaternalSurname: req.PaternalSurname,
		MaternalSurname: req.MaternalSurname,
		ApproximateAge:  req.ApproximateAge,
		BirthDate:       birthDate,
		Sex:             req.Sex,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    req.ContactEmail,
		GuardianName:    req.GuardianName,
		Notes:           req.Notes,
	}, nil
}
