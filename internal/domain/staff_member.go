package domain

import "time"

// StaffMember extends a User with employment details. One record per user.
type StaffMember struct {
	ID            int64
	UserID        int64
	BirthDate     *time.Time
	HireDate      *time.Time
	DegreeID      *int64
	Specialties   *string
	PersonalPhone *string
	PersonalEmail *string
	RFC           *string
	CURP          *string
	Street        *string
	Neighborhood  *string
	PostalCode    *string
	Municipality  *string
	State         *string
	Experience    *string
}

// Degree is an academic degree referenced by staff records.
type Degree struct {
	ID   int64
	Name string
}
