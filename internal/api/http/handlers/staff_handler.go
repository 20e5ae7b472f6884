package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autismo-mochis/clinic-service/internal/api/dto"
	"github.com/autismo-mochis/clinic-service/internal/service"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

// StaffHandler serves staff member management.
type StaffHandler struct {
	service *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{service: staffService}
}

// CreateStaff POST /staff.
func (h *StaffHandler) CreateStaff(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FirstName == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("first_name, email and password required", nil)
	}

	birthDate, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		return apperrors.NewValidationError("birth_date must be YYYY-MM-DD", nil)
	}
	hireDate, err := dto.ParseDate(req.HireDate)
	if err != nil {
		return apperrors.NewValidationError("hire_date must be YYYY-MM-DD", nil)
	}

	detail, err := h.service.Create(c.Context(), service.StaffCreateInput{
		FirstName:       req.FirstName,
		PaternalSurname: req.PaternalSurname,
		MaternalSurname: req.MaternalSurname,
		Email:           req.Email,
		Password:        req.Password,
		Phone:           req.Phone,
		RoleID:          req.RoleID,
		BirthDate:       birthDate,
		HireDate:        hireDate,
		DegreeID:        req.DegreeID,
		Specialties:     req.Specialties,
		PersonalPhone:   req.PersonalPhone,
		PersonalEmail:   req.PersonalEmail,
		RFC:             req.RFC,
		CURP:            req.CURP,
		Street:          req.Street,
		Neighborhood:    req.Neighborhood,
		PostalCode:      req.PostalCode,
		Municipality:    req.Municipality,
		State:           req.State,
		Experience:      req.Experience,
	})
	if err != nil {
		return err
	}
	return createdResponse(c, dto.NewStaffResponse(detail, nil))
}

// ListStaff GET /staff.
func (h *StaffHandler) ListStaff(c *fiber.Ctx) error {
	details, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.StaffResponse, 0, len(details))
	for i := range details {
		items = append(items, dto.NewStaffResponse(&details[i], nil))
	}
	return dataResponse(c, items)
}

// GetStaff GET /staff/:id.
func (h *StaffHandler) GetStaff(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewStaffResponse(detail, nil))
}

// UpdateStaff PATCH /staff/:id.
func (h *StaffHandler) UpdateStaff(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.StaffUpdateInput{
		Profile:          profileUpdateInput(req.UpdateUserRequest),
		RoleID:           req.RoleID,
		SetDegreeID:      req.DegreeID.Set,
		DegreeID:         req.DegreeID.Ptr(),
		SetSpecialties:   req.Specialties.Set,
		Specialties:      req.Specialties.Ptr(),
		SetPersonalPhone: req.PersonalPhone.Set,
		PersonalPhone:    req.PersonalPhone.Ptr(),
		SetPersonalEmail: req.PersonalEmail.Set,
		PersonalEmail:    req.PersonalEmail.Ptr(),
		SetRFC:           req.RFC.Set,
		RFC:              req.RFC.Ptr(),
		SetCURP:          req.CURP.Set,
		CURP:             req.CURP.Ptr(),
		SetStreet:        req.Street.Set,
		Street:           req.Street.Ptr(),
		SetNeighborhood:  req.Neighborhood.Set,
		Neighborhood:     req.Neighborhood.Ptr(),
		SetPostalCode:    req.PostalCode.Set,
		PostalCode:       req.PostalCode.Ptr(),
		SetMunicipality:  req.Municipality.Set,
		Municipality:     req.Municipality.Ptr(),
		SetState:         req.State.Set,
		State:            req.State.Ptr(),
		SetExperience:    req.Experience.Set,
		Experience:       req.Experience.Ptr(),
	}

	if req.BirthDate.Set {
		input.SetBirthDate = true
		parsed, err := dto.ParseDate(req.BirthDate.Ptr())
		if err != nil {
			return apperrors.NewValidationError("birth_date must be YYYY-MM-DD", nil)
		}
		input.BirthDate = parsed
	}
	if req.HireDate.Set {
		input.SetHireDate = true
		parsed, err := dto.ParseDate(req.HireDate.Ptr())
		if err != nil {
			return apperrors.NewValidationError("hire_date must be YYYY-MM-DD", nil)
		}
		input.HireDate = parsed
	}

	detail, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewStaffResponse(detail, nil))
}

// SetStaffActive PATCH /staff/:id/active.
func (h *StaffHandler) SetStaffActive(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.SetStaffActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	detail, err := h.service.SetActive(c.Context(), id, req.Active)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewStaffResponse(detail, nil))
}

// DeleteStaff DELETE /staff/:id.
func (h *StaffHandler) DeleteStaff(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return dataResponse(c, fiber.Map{"deleted": true})
}
