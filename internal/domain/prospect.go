package domain

import "time"

// Prospect is an intake record for a child that has not been formally
// registered yet. Deleting a prospect only deactivates it.
type Prospect struct {
	ID              int64
	FirstName       string
	PaternalSurname *string
	MaternalSurname *string
	ApproximateAge  *int
	BirthDate       *time.Time
	Sex             *string
	ContactPhone    *string
	ContactEmail    *string
	GuardianName    *string
	Notes           *string
	Active          bool
}
