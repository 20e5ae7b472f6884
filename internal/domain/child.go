package domain

import "time"

// Child is a formally registered patient.
type Child struct {
	ID               int64
	FirstName        string
	PaternalSurname  *string
	MaternalSurname  *string
	BirthDate        *time.Time
	Sex              *string
	GuardianID       *int64
	ResponsibleID    *int64
	SchoolGrade      *string
	PrimaryDiagnosis *string
	Allergies        *string
	Notes            *string
	Active           bool
}

// FullName joins the child's name parts.
func (c *Child) FullName() string {
	name := c.FirstName
	if c.PaternalSurname != nil && *c.PaternalSurname != "" {
		name += " " + *c.PaternalSurname
	}
	if c.MaternalSurname != nil && *c.MaternalSurname != "" {
		name += " " + *c.MaternalSurname
	}
	return name
}
