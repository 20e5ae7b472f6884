package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autismo-mochis/clinic-service/internal/domain"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

func newRoleTestApp(principal *Principal, allowed ...domain.RoleName) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})
	app.Get("/probe",
		func(c *fiber.Ctx) error {
			if principal != nil {
				c.Locals(principalKey, principal)
			}
			return c.Next()
		},
		RequireRole(allowed...),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func roleName(name domain.RoleName) *domain.RoleName { return &name }

func TestRequireRoleWithoutPrincipal(t *testing.T) {
	app := newRoleTestApp(nil, domain.RoleAdministrator)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoleRejectsRolelessBeforeEmptySetPass(t *testing.T) {
	principal := &Principal{User: &domain.User{ID: 1, Active: true}}
	app := newRoleTestApp(principal)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleEmptySetPassesAnyRole(t *testing.T) {
	principal := &Principal{
		User: &domain.User{ID: 1, Active: true},
		Role: roleName(domain.RoleTherapist),
	}
	app := newRoleTestApp(principal)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleExactMatch(t *testing.T) {
	tests := []struct {
		name       string
		role       domain.RoleName
		allowed    []domain.RoleName
		wantStatus int
	}{
		{"administrator allowed", domain.RoleAdministrator, []domain.RoleName{domain.RoleAdministrator}, fiber.StatusOK},
		{"therapist forbidden on admin route", domain.RoleTherapist, []domain.RoleName{domain.RoleAdministrator}, fiber.StatusForbidden},
		{"coordinator allowed on shared route", domain.RoleCoordinator, []domain.RoleName{domain.RoleAdministrator, domain.RoleCoordinator}, fiber.StatusOK},
		{"guardian forbidden on shared route", domain.RoleGuardian, []domain.RoleName{domain.RoleAdministrator, domain.RoleCoordinator}, fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal := &Principal{User: &domain.User{ID: 1, Active: true}, Role: roleName(tt.role)}
			app := newRoleTestApp(principal, tt.allowed...)

			resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
