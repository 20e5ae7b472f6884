package domain

import "time"

// User is the credential-bearing identity for everyone who can log in:
// administrators, coordinators, therapists and guardians alike.
type User struct {
	ID              int64
	FirstName       string
	PaternalSurname *string
	MaternalSurname *string
	Email           string
	PasswordHash    string
	Phone           *string
	ProfilePhoto    *string
	RoleID          *int64
	Active          bool
	LastLoginAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName joins the name parts, skipping absent surnames.
func (u *User) FullName() string {
	name := u.FirstName
	if u.PaternalSurname != nil && *u.PaternalSurname != "" {
		name += " " + *u.PaternalSurname
	}
	if u.MaternalSurname != nil && *u.MaternalSurname != "" {
		name += " " + *u.MaternalSurname
	}
	return name
}
