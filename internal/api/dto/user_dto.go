package dto

import (
	"time"

	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// UserResponse is the public shape of a user account.
type UserResponse struct {
	ID              int64      `json:"id"`
	FirstName       string     `json:"first_name"`
	PaternalSurname *string    `json:"paternal_surname"`
	MaternalSurname *string    `json:"maternal_surname"`
	FullName        string     `json:"full_name"`
	Email           string     `json:"email"`
	Phone           *string    `json:"phone"`
	ProfilePhoto    *string    `json:"profile_photo"`
	RoleID          *int64     `json:"role_id"`
	RoleName        *string    `json:"role_name,omitempty"`
	Active          bool       `json:"active"`
	LastLoginAt     *time.Time `json:"last_login_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

// NewUserResponse maps a domain user. role may be nil.
func NewUserResponse(user *domain.User, role *domain.Role) UserResponse {
	resp := UserResponse{
		ID:              user.ID,
		FirstName:       user.FirstName,
		PaternalSurname: user.PaternalSurname,
		MaternalSurname: user.MaternalSurname,
		FullName:        user.FullName(),
		Email:           user.Email,
		Phone:           user.Phone,
		ProfilePhoto:    user.ProfilePhoto,
		RoleID:          user.RoleID,
		Active:          user.Active,
		LastLoginAt:     user.LastLoginAt,
		CreatedAt:       user.CreatedAt,
	}
	if role != nil {
		name := string(role.Name)
		resp.RoleName = &name
	}
	return resp
}

// UpdateUserRequest is a sparse profile update.
type UpdateUserRequest struct {
	FirstName       *string          `json:"first_name"`
	PaternalSurname OptField[string] `json:"paternal_surname"`
	MaternalSurname OptField[string] `json:"maternal_surname"`
	Phone           OptField[string] `json:"phone"`
	ProfilePhoto    OptField[string] `json:"profile_photo"`
	Active          *bool            `json:"active"`
}
