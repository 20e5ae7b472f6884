package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autismo-mochis/clinic-service/internal/api/dto"
	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/service"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

// UsersHandler serves the user directory and the coordinator views.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// ListUsers GET /users.
func (h *UsersHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, userResponses(users))
}

// ListCoordinators GET /coordinators.
func (h *UsersHandler) ListCoordinators(c *fiber.Ctx) error {
	users, err := h.service.ListCoordinators(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, userResponses(users))
}

// GetCoordinator GET /coordinators/:id.
func (h *UsersHandler) GetCoordinator(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.service.GetCoordinator(c.Context(), id)
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewUserResponse(user, nil))
}

// UpdateCoordinator PATCH /coordinators/:id.
func (h *UsersHandler) UpdateCoordinator(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.service.UpdateCoordinator(c.Context(), id, profileUpdateInput(req))
	if err != nil {
		return err
	}
	return dataResponse(c, dto.NewUserResponse(user, nil))
}

// DeleteCoordinator DELETE /coordinators/:id.
func (h *UsersHandler) DeleteCoordinator(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteCoordinator(c.Context(), id); err != nil {
		return err
	}
	return dataResponse(c, fiber.Map{"deleted": true})
}

func userResponses(users []domain.User) []dto.UserResponse {
	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.NewUserResponse(&users[i], nil))
	}
	return resp
}

func profileUpdateInput(req dto.UpdateUserRequest) service.UserProfileUpdateInput {
	return service.UserProfileUpdateInput{
		FirstName:          req.FirstName,
		SetPaternalSurname: req.PaternalSurname.Set,
		PaternalSurname:    req.PaternalSurname.Ptr(),
		SetMaternalSurname: req.MaternalSurname.Set,
		MaternalSurname:    req.MaternalSurname.Ptr(),
		SetPhone:           req.Phone.Set,
		Phone:              req.Phone.Ptr(),
		SetProfilePhoto:    req.ProfilePhoto.Set,
		ProfilePhoto:       req.ProfilePhoto.Ptr(),
		Active:             req.Active,
	}
}
