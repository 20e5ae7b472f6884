package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/autismo-mochis/clinic-service/internal/auth"
	"github.com/autismo-mochis/clinic-service/internal/config"
	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/repository"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

// StaffService manages staff members as a composite of a user account and
// an employment record. Creation builds both; deletion removes both.
type StaffService struct {
	users      repository.UserRepository
	staff      repository.StaffRepository
	roles      repository.RoleRepository
	degrees    repository.DegreeRepository
	bcryptCost int
}

// NewStaffService constructs the service.
func NewStaffService(
	cfg config.Config,
	users repository.UserRepository,
	staff repository.StaffRepository,
	roles repository.RoleRepository,
	degrees repository.DegreeRepository,
) *StaffService {
	return &StaffService{
		users:      users,
		staff:      staff,
		roles:      roles,
		degrees:    degrees,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// StaffCreateInput carries both halves of a new staff member.
type StaffCreateInput struct {
	FirstName       string
	PaternalSurname *string
	MaternalSurname *string
	Email           string
	Password        string
	Phone           *string
	RoleID          *int64

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

// StaffUpdateInput is a sparse update over both records.
type StaffUpdateInput struct {
	Profile UserProfileUpdateInput
	RoleID  *int64

	SetBirthDate     bool
	BirthDate        *time.Time
	SetHireDate      bool
	HireDate         *time.Time
	SetDegreeID      bool
	DegreeID         *int64
	SetSpecialties   bool
	Specialties      *string
	SetPersonalPhone bool
	PersonalPhone    *string
	SetPersonalEmail bool
	PersonalEmail    *string
	SetRFC           bool
	RFC              *string
	SetCURP          bool
	CURP             *string
	SetStreet        bool
	Street           *string
	SetNeighborhood  bool
	Neighborhood     *string
	SetPostalCode    bool
	PostalCode       *string
	SetMunicipality  bool
	Municipality     *string
	SetState         bool
	State            *string
	SetExperience    bool
	Experience       *string
}

// StaffDetail pairs the employment record with its user account.
type StaffDetail struct {
	Staff domain.StaffMember
	User  domain.User
}

// Create registers a new staff member: the user account first, then the
// employment record. Email must be unique across all users.
func (s *StaffService) Create(ctx context.Context, input StaffCreateInput) (*StaffDetail, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.FirstName == "" || input.Email == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("first_name, email and password are required", nil)
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewDuplicateValue("user", "email", input.Email)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err := s.checkRole(ctx, input.RoleID); err != nil {
		return nil, err
	}
	if err := s.checkDegree(ctx, input.DegreeID); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:       input.FirstName,
		PaternalSurname: input.PaternalSurname,
		MaternalSurname: input.MaternalSurname,
		Email:           input.Email,
		PasswordHash:    hash,
		Phone:           input.Phone,
		RoleID:          input.RoleID,
		Active:          true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	staff := &domain.StaffMember{
		UserID:        user.ID,
		BirthDate:     input.BirthDate,
		HireDate:      input.HireDate,
		DegreeID:      input.DegreeID,
		Specialties:   input.Specialties,
		PersonalPhone: input.PersonalPhone,
		PersonalEmail: input.PersonalEmail,
		RFC:           input.RFC,
		CURP:          input.CURP,
		Street:        input.Street,
		Neighborhood:  input.Neighborhood,
		PostalCode:    input.PostalCode,
		Municipality:  input.Municipality,
		State:         input.State,
		Experience:    input.Experience,
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		// The user row would be orphaned otherwise.
		_ = s.users.Delete(ctx, user.ID)
		return nil, err
	}

	return &StaffDetail{Staff: *staff, User: *user}, nil
}

// List returns every staff member with their user account.
func (s *StaffService) List(ctx context.Context) ([]StaffDetail, error) {
	members, err := s.staff.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]StaffDetail, 0, len(members))
	for _, member := range members {
		user, err := s.users.GetByID(ctx, member.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, err
		}
		details = append(details, StaffDetail{Staff: member, User: *user})
	}
	return details, nil
}

// Get returns one staff member with their user account.
func (s *StaffService) Get(ctx context.Context, id int64) (*StaffDetail, error) {
	member, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, member.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff member", map[string]any{"id": id})
		}
		return nil, err
	}
	return &StaffDetail{Staff: *member, User: *user}, nil
}

// Update applies a sparse update across the user and employment records.
func (s *StaffService) Update(ctx context.Context, id int64, input StaffUpdateInput) (*StaffDetail, error) {
	detail, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.RoleID != nil {
		if err := s.checkRole(ctx, input.RoleID); err != nil {
			return nil, err
		}
		detail.User.RoleID = input.RoleID
	}
	applyProfileUpdate(&detail.User, input.Profile)

	if input.SetDegreeID {
		if err := s.checkDegree(ctx, input.DegreeID); err != nil {
			return nil, err
		}
		detail.Staff.DegreeID = input.DegreeID
	}
	if input.SetBirthDate {
		detail.Staff.BirthDate = input.BirthDate
	}
	if input.SetHireDate {
		detail.Staff.HireDate = input.HireDate
	}
	if input.SetSpecialties {
		detail.Staff.Specialties = input.Specialties
	}
	if input.SetPersonalPhone {
		detail.Staff.PersonalPhone = input.PersonalPhone
	}
	if input.SetPersonalEmail {
		detail.Staff.PersonalEmail = input.PersonalEmail
	}
	if input.SetRFC {
		detail.Staff.RFC = input.RFC
	}
	if input.SetCURP {
		detail.Staff.CURP = input.CURP
	}
	if input.SetStreet {
		detail.Staff.Street = input.Street
	}
	if input.SetNeighborhood {
		detail.Staff.Neighborhood = input.Neighborhood
	}
	if input.SetPostalCode {
		detail.Staff.PostalCode = input.PostalCode
	}
	if input.SetMunicipality {
		detail.Staff.Municipality = input.Municipality
	}
	if input.SetState {
		detail.Staff.State = input.State
	}
	if input.SetExperience {
		detail.Staff.Experience = input.Experience
	}

	if err := s.users.Update(ctx, &detail.User); err != nil {
		return nil, err
	}
	if err := s.staff.Update(ctx, &detail.Staff); err != nil {
		return nil, err
	}
	return detail, nil
}

// SetActive toggles the staff member's login account.
func (s *StaffService) SetActive(ctx context.Context, id int64, active bool) (*StaffDetail, error) {
	detail, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.User.Active = active
	if err := s.users.Update(ctx, &detail.User); err != nil {
		return nil, err
	}
	return detail, nil
}

// Delete removes the employment record and the user account behind it.
func (s *StaffService) Delete(ctx context.Context, id int64) error {
	member, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.staff.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, member.UserID); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	return nil
}

func (s *StaffService) getByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	member, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff member", map[string]any{"id": id})
		}
		return nil, err
	}
	return member, nil
}

func (s *StaffService) checkRole(ctx context.Context, roleID *int64) error {
	if roleID == nil {
		return nil
	}
	if _, err := s.roles.GetByID(ctx, *roleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("unknown role", map[string]any{"role_id": *roleID})
		}
		return err
	}
	return nil
}

func (s *StaffService) checkDegree(ctx context.Context, degreeID *int64) error {
	if degreeID == nil {
		return nil
	}
	if _, err := s.degrees.GetByID(ctx, *degreeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("unknown degree", map[string]any{"degree_id": *degreeID})
		}
		return err
	}
	return nil
}
