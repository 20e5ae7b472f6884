package dto

import (
	"time"

	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// TherapyRequest payload for create and full update.
type TherapyRequest struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	DurationMinutes *int     `json:"duration_minutes"`
	Cost            *float64 `json:"cost"`
}

// TherapyResponse shape.
type TherapyResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	DurationMinutes *int      `json:"duration_minutes"`
	Cost            *float64  `json:"cost"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewTherapyResponse maps a therapy.
func NewTherapyResponse(t *domain.Therapy) TherapyResponse {
	return TherapyResponse{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		DurationMinutes: t.DurationMinutes,
		Cost:            t.Cost,
		CreatedAt:       t.CreatedAt,
	}
}

// AppointmentKindRequest payload for create and full update.
type AppointmentKindRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// AppointmentKindResponse shape.
type AppointmentKindResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewAppointmentKindResponse maps an appointment kind.
func NewAppointmentKindResponse(k *domain.AppointmentKind) AppointmentKindResponse {
	return AppointmentKindResponse{ID: k.ID, Name: k.Name, Description: k.Description, CreatedAt: k.CreatedAt}
}
