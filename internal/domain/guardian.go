package domain

import "time"

// Guardian links a user account to the children they are responsible for.
type Guardian struct {
	ID             int64
	UserID         *int64
	INE            *string
	CURP           *string
	Relationship   *string
	Street         *string
	ExteriorNumber *string
	Neighborhood   *string
	PostalCode     *string
	Municipality   *string
	State          *string
	EmergencyPhone *string
	CreatedAt      time.Time
}
