package dto

import "github.com/autismo-mochis/clinic-service/internal/domain"

// GuardianRequest payload for create and full update.
type GuardianRequest struct {
	UserID         *int64  `json:"user_id"`
	INE            *string `json:"ine"`
	CURP           *string `json:"curp"`
	Relationship   *string `json:"relationship"`
	Street         *string `json:"street"`
	ExteriorNumber *string `json:"exterior_number"`
	Neighborhood   *string `json:"neighborhood"`
	PostalCode     *string `json:"postal_code"`
	Municipality   *string `json:"municipality"`
	State          *string `json:"state"`
	EmergencyPhone *string `json:"emergency_phone"`
}

// ToDomain builds the entity, carrying the id for updates.
func (r GuardianRequest) ToDomain(id int64) *domain.Guardian {
	return &domain.Guardian{
		ID:             id,
		UserID:         r.UserID,
		INE:            r.INE,
		CURP:           r.CURP,
		Relationship:   r.Relationship,
		Street:         r.Street,
		ExteriorNumber: r.ExteriorNumber,
		Neighborhood:   r.Neighborhood,
		PostalCode:     r.PostalCode,
		Municipality:   r.Municipality,
		State:          r.State,
		EmergencyPhone: r.EmergencyPhone,
	}
}

// GuardianResponse shape.
type GuardianResponse struct {
	ID             int64   `json:"id"`
	UserID         *int64  `json:"user_id"`
	INE            *string `json:"ine"`
	CURP           *string `json:"curp"`
	Relationship   *string `json:"relationship"`
	Street         *string `json:"street"`
	ExteriorNumber *string `json:"exterior_number"`
	Neighborhood   *string `json:"neighborhood"`
	PostalCode     *string `json:"postal_code"`
	Municipality   *string `json:"municipality"`
	State          *string `json:"state"`
	EmergencyPhone *string `json:"emergency_phone"`
}

// NewGuardianResponse maps a guardian.
func NewGuardianResponse(g *domain.Guardian) GuardianResponse {
	return GuardianResponse{
		ID:             g.ID,
		UserID:         g.UserID,
		INE:            g.INE,
		CURP:           g.CURP,
		Relationship:   g.Relationship,
		Street:         g.Street,
		ExteriorNumber: g.ExteriorNumber,
		Neighborhood:   g.Neighborhood,
		PostalCode:     g.PostalCode,
		Municipality:   g.Municipality,
		State:          g.State,
		EmergencyPhone: g.EmergencyPhone,
	}
}

// ChildRequest payload for create and full update.
type ChildRequest struct {
	FirstName        string  `json:"first_name"`
	PaternalSurname  *string `json:"paternal_surname"`
	MaternalSurname  *string `json:"maternal_surname"`
	BirthDate        *string `json:"birth_date"`
	Sex              *string `json:"sex"`
	GuardianID       *int64  `json:"guardian_id"`
	ResponsibleID    *int64  `json:"responsible_id"`
	SchoolGrade      *string `json:"school_grade"`
	PrimaryDiagnosis *string `json:"primary_diagnosis"`
	Allergies        *string `json:"allergies"`
	Notes            *string `json:"notes"`
}

// ChildResponse shape.
type ChildResponse struct {
	ID               int64   `json:"id"`
	FirstName        string  `json:"first_name"`
	PaternalSurname  *string `json:"paternal_surname"`
	MaternalSurname  *string `json:"maternal_surname"`
	FullName         string  `json:"full_name"`
	BirthDate        *string `json:"birth_date"`
	Sex              *string `json:"sex"`
	GuardianID       *int64  `json:"guardian_id"`
	ResponsibleID    *int64  `json:"responsible_id"`
	SchoolGrade      *string `json:"school_grade"`
	PrimaryDiagnosis *string `json:"primary_diagnosis"`
	Allergies        *string `json:"allergies"`
	Notes            *string `json:"notes"`
	Active           bool    `json:"active"`
}

// NewChildResponse maps a child.
func NewChildResponse(c *domain.Child) ChildResponse {
	return ChildResponse{
		ID:               c.ID,
		FirstName:        c.FirstName,
		PaternalSurname:  c.PaternalSurname,
		MaternalSurname:  c.MaternalSurname,
		FullName:         c.FullName(),
		BirthDate:        FormatDate(c.BirthDate),
		Sex:              c.Sex,
		GuardianID:       c.GuardianID,
		ResponsibleID:    c.ResponsibleID,
		SchoolGrade:      c.SchoolGrade,
		PrimaryDiagnosis: c.PrimaryDiagnosis,
		Allergies:        c.Allergies,
		Notes:            c.Notes,
		Active:           c.Active,
	}
}

// ProspectRequest payload for create and full update.
type ProspectRequest struct {
	FirstName       string  `json:"first_name"`
	PaternalSurname *string `json:"paternal_surname"`
	MaternalSurname *string `json:"maternal_surname"`
	ApproximateAge  *int    `json:"approximate_age"`
	BirthDate       *string `json:"birth_date"`
	Sex             *string `json:"sex"`
	ContactPhone    *string `json:"contact_phone"`
	ContactEmail    *string `json:"contact_email"`
	GuardianName    *string `json:"guardian_name"`
	Notes           *string `json:"notes"`
}

// ProspectResponse shape.
type ProspectResponse struct {
	ID              int64   `json:"id"`
	FirstName       string  `json:"first_name"`
	PaternalSurname *string `json:"paternal_surname"`
	MaternalSurname *string `json:"maternal_surname"`
	ApproximateAge  *int    `json:"approximate_age"`
	BirthDate       *string `json:"birth_date"`
	Sex             *string `json:"sex"`
	ContactPhone    *string `json:"contact_phone"`
	ContactEmail    *string `json:"contact_email"`
	GuardianName    *string `json:"guardian_name"`
	Notes           *string `json:"notes"`
	Active          bool    `json:"active"`
}

// NewProspectResponse maps a prospect.
func NewProspectResponse(p *domain.Prospect) ProspectResponse {
	return ProspectResponse{
		ID:              p.ID,
		FirstName:       p.FirstName,
		PaternalSurname: p.PaternalSurname,
		MaternalSurname: p.MaternalSurname,
		ApproximateAge:  p.ApproximateAge,
		BirthDate:       FormatDate(p.BirthDate),
		Sex:             p.Sex,
		ContactPhone:    p.ContactPhone,
		ContactEmail:    p.ContactEmail,
		GuardianName:    p.GuardianName,
		Notes:           p.Notes,
		Active:          p.Active,
	}
}

// RegisterProspectRequest promotes a prospect to a registered child.
type RegisterProspectRequest struct {
	GuardianID *int64 `json:"guardian_id"`
}
