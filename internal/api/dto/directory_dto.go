package dto

import "github.com/autismo-mochis/clinic-service/internal/domain"

// RoleRequest payload for create and update.
type RoleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// RoleResponse shape.
type RoleResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewRoleResponse maps a role.
func NewRoleResponse(role *domain.Role) RoleResponse {
	return RoleResponse{ID: role.ID, Name: string(role.Name), Description: role.Description}
}

// PermissionRequest payload.
type PermissionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PermissionResponse shape.
type PermissionResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewPermissionResponse maps a permission.
func NewPermissionResponse(p *domain.Permission) PermissionResponse {
	return PermissionResponse{ID: p.ID, Name: p.Name, Description: p.Description}
}

// DegreeRequest payload.
type DegreeRequest struct {
	Name string `json:"name"`
}

// DegreeResponse shape.
type DegreeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewDegreeResponse maps a degree.
func NewDegreeResponse(d *domain.Degree) DegreeResponse {
	return DegreeResponse{ID: d.ID, Name: d.Name}
}
