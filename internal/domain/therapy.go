package domain

import "time"

// Therapy is a service the clinic offers.
type Therapy struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes *int
	Cost            *float64
	CreatedAt       time.Time
}

// AppointmentKind classifies appointments (evaluation, observation, ...).
// Invariant: name is unique.
type AppointmentKind struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
}
