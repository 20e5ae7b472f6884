package domain

import "time"

// AppointmentStatus enumerates appointment states.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "SCHEDULED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// Appointment is a scheduled session. The patient is named by exactly the
// PatientRef discriminator; every other reference is optional.
type Appointment struct {
	ID        int64
	Patient   PatientRef
	StaffID   *int64
	TherapyID *int64
	KindID    *int64
	Date      time.Time
	Time      string // HH:MM, 24h
	KindLabel *string
	Notes     *string
	Status    AppointmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
