package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autismo-mochis/clinic-service/internal/api/dto"
	"github.com/autismo-mochis/clinic-service/internal/service"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

// DirectoryHandler serves roles, permissions and degrees.
type DirectoryHandler struct {
	service *service.DirectoryService
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: directoryService}
}

// ListRoles GET /roles.
func (h *DirectoryHandler) ListRoles(c *fiber.Ctx) error {
	roles, err := h.service.ListRoles(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.RoleResponse, 0, len(roles))
	for i := range roles {
		items = append(items, dto.NewRoleResponse(&roles[i]))
	}
	return dataResponse(c, items)
}

// GetRole GET /roles/:id.
func (h *DirectoryHandler) GetRole(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	role, err := h.service.GetRole(c.Context(), id)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewRoleResponse(role))
}

// CreateRole POST /roles.
func (h *DirectoryHandler) CreateRole(c *fiber.Ctx) error {
	var req dto.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == nil {
		return apperrors.NewValidationError("name is required", nil)
	}
	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	role, err := h.service.CreateRole(c.Context(), *req.Name, description)
	if err != nil {
		return err
	}
	return createdResponse(c, dto.NewRoleResponse(role))
}

// UpdateRole PATCH /roles/:id.
func (h *DirectoryHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	role, err := h.service.UpdateRole(c.Context(), id, req.Name, req.Description)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewRoleResponse(role))
}

// DeleteRole DELETE /roles/:id.
func (h *DirectoryHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteRole(c.Context(), id); err != nil {
		return err
	}
	return dataResponse(c, fiber.Map{"deleted": true})
}

// ListPermissions GET /permissions.
func (h *DirectoryHandler) ListPermissions(c *fiber.Ctx) error {
	permissions, err := h.service.ListPermissions(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PermissionResponse, 0, len(permissions))
	for i := range permissions {
		items = append(items, dto.NewPermissionResponse(&permissions[i]))
	}
	return dataResponse(c, items)
}

// CreatePermission POST /permissions.
func (h *DirectoryHandler) CreatePermission(c *fiber.Ctx) error {
	var req dto.PermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	permission, err := h.service.CreatePermission(c.Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return createdResponse(c, dto.NewPermissionResponse(permission))
}

// ListDegrees GET /degrees.
func (h *DirectoryHandler) ListDegrees(c *fiber.Ctx) error {
	degrees, err := h.service.ListDegrees(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.DegreeResponse, 0, len(degrees))
	for i := range degrees {
		items = append(items, dto.NewDegreeResponse(&degrees[i]))
	}
	return dataResponse(c, items)
}

// CreateDegree POST /degrees.
func (h *DirectoryHandler) CreateDegree(c *fiber.Ctx) error {
	var req dto.DegreeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	degree, err := h.service.CreateDegree(c.Context(), req.Name)
	if err != nil {
		return err
	}
	return createdResponse(c, dto.NewDegreeResponse(degree))
}
