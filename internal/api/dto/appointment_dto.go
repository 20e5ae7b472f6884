package dto

import (
	"time"

	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// CreateAppointmentRequest payload. The patient is named by exactly one or
// more of child_id, prospect_id and free_text_name; all three empty is
// rejected downstream.
type CreateAppointmentRequest struct {
	ChildID      *int64  `json:"child_id"`
	ProspectID   *int64  `json:"prospect_id"`
	FreeTextName *string `json:"free_text_name"`
	StaffID      *int64  `json:"staff_id"`
	TherapyID    *int64  `json:"therapy_id"`
	KindID       *int64  `json:"kind_id"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	KindLabel    *string `json:"kind_label"`
	Notes        *string `json:"notes"`
}

// UpdateAppointmentRequest is a sparse update. Absent fields are left
// alone; explicit null clears nullable fields.
type UpdateAppointmentRequest struct {
	ChildID      OptField[int64]  `json:"child_id"`
	ProspectID   OptField[int64]  `json:"prospect_id"`
	FreeTextName OptField[string] `json:"free_text_name"`
	StaffID      OptField[int64]  `json:"staff_id"`
	TherapyID    OptField[int64]  `json:"therapy_id"`
	KindID       OptField[int64]  `json:"kind_id"`
	Date         *string          `json:"date"`
	Time         *string          `json:"time"`
	KindLabel    OptField[string] `json:"kind_label"`
	Notes        OptField[string] `json:"notes"`
	Status       *string          `json:"status"`
}

// PromoteAppointmentRequest attaches a registered child.
type PromoteAppointmentRequest struct {
	ChildID int64 `json:"child_id"`
}

// AppointmentResponse shape.
type AppointmentResponse struct {
	ID           int64     `json:"id"`
	ChildID      *int64    `json:"child_id"`
	ProspectID   *int64    `json:"prospect_id"`
	FreeTextName *string   `json:"free_text_name"`
	StaffID      *int64    `json:"staff_id"`
	TherapyID    *int64    `json:"therapy_id"`
	KindID       *int64    `json:"kind_id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	KindLabel    *string   `json:"kind_label"`
	Notes        *string   `json:"notes"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewAppointmentResponse maps an appointment.
func NewAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:           a.ID,
		ChildID:      a.Patient.ChildID,
		ProspectID:   a.Patient.ProspectID,
		FreeTextName: a.Patient.FreeName,
		StaffID:      a.StaffID,
		TherapyID:    a.TherapyID,
		KindID:       a.KindID,
		Date:         a.Date.Format("2006-01-02"),
		Time:         a.Time,
		KindLabel:    a.KindLabel,
		Notes:        a.Notes,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// AppointmentResponses maps a slice.
func AppointmentResponses(items []domain.Appointment) []AppointmentResponse {
	resp := make([]AppointmentResponse, 0, len(items))
	for i := range items {
		resp = append(resp, NewAppointmentResponse(&items[i]))
	}
	return resp
}
