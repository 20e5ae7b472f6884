package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/autismo-mochis/clinic-service/internal/api/dto"
	"github.com/autismo-mochis/clinic-service/internal/auth"
	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/service"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

// AppointmentsHandler serves the appointment lifecycle endpoints.
type AppointmentsHandler struct {
	service *service.AppointmentService
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(appointmentService *service.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{service: appointmentService}
}

// CreateAppointment POST /appointments.
func (h *AppointmentsHandler) CreateAppointment(c *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return apperrors.NewValidationError("date must be YYYY-MM-DD", nil)
	}

	appointment, err := h.service.Create(c.Context(), actorID(c), service.AppointmentCreateInput{
		ChildID:    req.ChildID,
		ProspectID: req.ProspectID,
		FreeName:   req.FreeTextName,
		StaffID:    req.StaffID,
		TherapyID:  req.TherapyID,
		KindID:     req.KindID,
		Date:       date,
		Time:       req.Time,
		KindLabel:  req.KindLabel,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}
	return createdResponse(c, dto.NewAppointmentResponse(appointment))
}

// UpdateAppointment PATCH /appointments/:id.
func (h *AppointmentsHandler) UpdateAppointment(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.AppointmentUpdateInput{
		Patient: domain.PatientRefPatch{
			SetChildID:    req.ChildID.Set,
			ChildID:       req.ChildID.Ptr(),
			SetProspectID: req.ProspectID.Set,
			ProspectID:    req.ProspectID.Ptr(),
			SetFreeName:   req.FreeTextName.Set,
			FreeName:      req.FreeTextName.Ptr(),
		},
		SetStaffID:   req.StaffID.Set,
		StaffID:      req.StaffID.Ptr(),
		SetTherapyID: req.TherapyID.Set,
		TherapyID:    req.TherapyID.Ptr(),
		SetKindID:    req.KindID.Set,
		KindID:       req.KindID.Ptr(),
		Time:         req.Time,
		SetKindLabel: req.KindLabel.Set,
		KindLabel:    req.KindLabel.Ptr(),
		SetNotes:     req.Notes.Set,
		Notes:        req.Notes.Ptr(),
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return apperrors.NewValidationError("date must be YYYY-MM-DD", nil)
		}
		input.Date = &date
	}
	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		if status != domain.AppointmentStatusScheduled && status != domain.AppointmentStatusCancelled {
			return apperrors.NewValidationError("invalid status", map[string]any{"status": *req.Status})
		}
		input.Status = &status
	}

	appointment, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewAppointmentResponse(appointment))
}

// CancelAppointment POST /appointments/:id/cancel.
func (h *AppointmentsHandler) CancelAppointment(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	appointment, err := h.service.Cancel(c.Context(), actorID(c), id)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewAppointmentResponse(appointment))
}

// DeleteAppointment DELETE /appointments/:id.
func (h *AppointmentsHandler) DeleteAppointment(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return dataResponse(c, fiber.Map{"deleted": true})
}

// PromoteAppointment POST /appointments/:id/promote.
func (h *AppointmentsHandler) PromoteAppointment(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.PromoteAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ChildID <= 0 {
		return apperrors.NewValidationError("child_id required", nil)
	}

	appointment, err := h.service.Promote(c.Context(), id, req.ChildID)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewAppointmentResponse(appointment))
}

// GetAppointment GET /appointments/:id.
func (h *AppointmentsHandler) GetAppointment(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	appointment, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewAppointmentResponse(appointment))
}

// ListAppointments GET /appointments. An optional date filter narrows the
// list to one day.
func (h *AppointmentsHandler) ListAppointments(c *fiber.Ctx) error {
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return apperrors.NewValidationError("date must be YYYY-MM-DD", nil)
		}
		items, err := h.service.ListByDate(c.Context(), date)
		if err != nil {
			return err
		}
		return dataResponse(c, dto.AppointmentResponses(items))
	}

	items, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, dto.AppointmentResponses(items))
}

// ListTodayAppointments GET /appointments/today.
func (h *AppointmentsHandler) ListTodayAppointments(c *fiber.Ctx) error {
	items, err := h.service.ListToday(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, dto.AppointmentResponses(items))
}

// ListUnregisteredAppointments GET /appointments/unregistered.
func (h *AppointmentsHandler) ListUnregisteredAppointments(c *fiber.Ctx) error {
	items, err := h.service.ListUnregistered(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, dto.AppointmentResponses(items))
}

// ListStaffAppointments GET /appointments/staff/:staffId.
func (h *AppointmentsHandler) ListStaffAppointments(c *fiber.Ctx) error {
	staffID, err := pathID(c, "staffId")
	if err != nil {
		return err
	}
	items, err := h.service.ListByStaff(c.Context(), staffID)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.AppointmentResponses(items))
}

// ListChildAppointments GET /appointments/child/:childId.
func (h *AppointmentsHandler) ListChildAppointments(c *fiber.Ctx) error {
	childID, err := pathID(c, "childId")
	if err != nil {
		return err
	}
	items, err := h.service.ListByChild(c.Context(), childID)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.AppointmentResponses(items))
}

func actorID(c *fiber.Ctx) *int64 {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil
	}
	id := principal.User.ID
	return &id
}
