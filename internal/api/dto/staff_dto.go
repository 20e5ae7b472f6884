package dto

import (
	"time"

	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/service"
)

// CreateStaffRequest carries the user account and employment fields of a
// new staff member.
type CreateStaffRequest struct {
	FirstName       string  `json:"first_name"`
	PaternalSurname *string `json:"paternal_surname"`
	MaternalSurname *string `json:"maternal_surname"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	Phone           *string `json:"phone"`
	RoleID          *int64  `json:"role_id"`

	BirthDate     *string `json:"birth_date"`
	HireDate      *string `json:"hire_date"`
	DegreeID      *int64  `json:"degree_id"`
	Specialties   *string `json:"specialties"`
	PersonalPhone *string `json:"personal_phone"`
	PersonalEmail *string `json:"personal_email"`
	RFC           *string `json:"rfc"`
	CURP          *string `json:"curp"`
	Street        *string `json:"street"`
	Neighborhood  *string `json:"neighborhood"`
	PostalCode    *string `json:"postal_code"`
	Municipality  *string `json:"municipality"`
	State         *string `json:"state"`
	Experience    *string `json:"experience"`
}

// UpdateStaffRequest is a sparse update over both records.
type UpdateStaffRequest struct {
	UpdateUserRequest
	RoleID *int64 `json:"role_id"`

	BirthDate     OptField[string] `json:"birth_date"`
	HireDate      OptField[string] `json:"hire_date"`
	DegreeID      OptField[int64]  `json:"degree_id"`
	Specialties   OptField[string] `json:"specialties"`
	PersonalPhone OptField[string] `json:"personal_phone"`
	PersonalEmail OptField[string] `json:"personal_email"`
	RFC           OptField[string] `json:"rfc"`
	CURP          OptField[string] `json:"curp"`
	Street        OptField[string] `json:"street"`
	Neighborhood  OptField[string] `json:"neighborhood"`
	PostalCode    OptField[string] `json:"postal_code"`
	Municipality  OptField[string] `json:"municipality"`
	State         OptField[string] `json:"state"`
	Experience    OptField[string] `json:"experience"`
}

// SetStaffActiveRequest toggles the login account.
type SetStaffActiveRequest struct {
	Active bool `json:"active"`
}

// StaffResponse is a staff member with their user account.
type StaffResponse struct {
	ID            int64        `json:"id"`
	User          UserResponse `json:"user"`
	BirthDate     *string      `json:"birth_date"`
	HireDate      *string      `json:"hire_date"`
	DegreeID      *int64       `json:"degree_id"`
	Specialties   *string      `json:"specialties"`
	PersonalPhone *string      `json:"personal_phone"`
	PersonalEmail *string      `json:"personal_email"`
	RFC           *string      `json:"rfc"`
	CURP          *string      `json:"curp"`
	Street        *string      `json:"street"`
	Neighborhood  *string      `json:"neighborhood"`
	PostalCode    *string      `json:"postal_code"`
	Municipality  *string      `json:"municipality"`
	State         *string      `json:"state"`
	Experience    *string      `json:"experience"`
}

// NewStaffResponse maps a composite staff detail.
func NewStaffResponse(detail *service.StaffDetail, role *domain.Role) StaffResponse {
	return StaffResponse{
		ID:            detail.Staff.ID,
		User:          NewUserResponse(&detail.User, role),
		BirthDate:     FormatDate(detail.Staff.BirthDate),
		HireDate:      FormatDate(detail.Staff.HireDate),
		DegreeID:      detail.Staff.DegreeID,
		Specialties:   detail.Staff.Specialties,
		PersonalPhone: detail.Staff.PersonalPhone,
		PersonalEmail: detail.Staff.PersonalEmail,
		RFC:           detail.Staff.RFC,
		CURP:          detail.Staff.CURP,
		Street:        detail.Staff.Street,
		Neighborhood:  detail.Staff.Neighborhood,
		PostalCode:    detail.Staff.PostalCode,
		Municipality:  detail.Staff.Municipality,
		State:         detail.Staff.State,
		Experience:    detail.Staff.Experience,
	}
}

// FormatDate renders a date pointer as YYYY-MM-DD.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// ParseDate parses a YYYY-MM-DD pointer, nil in and nil out.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
