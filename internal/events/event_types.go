package events

import (
	"time"

	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAppointmentCreated   EventType = "appointment_created"
	EventAppointmentCancelled EventType = "appointment_cancelled"
)

// Event represents a domain event emitted by services. Appointment events
// carry a snapshot of the record so subscribers never re-read mutated state.
type Event struct {
	ID          string             `json:"id"`
	Type        EventType          `json:"type"`
	Appointment domain.Appointment `json:"appointment"`
	ActorUserID *int64             `json:"actor_user_id,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
}
