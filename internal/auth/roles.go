package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autismo-mochis/clinic-service/internal/domain"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

// RequireRole ensures the principal's role name is a member of the allow-set.
// A role-less identity is rejected before the allow-set is consulted; after
// that, an empty allow-set means any role passes. Membership is
// an exact name match; roles carry no hierarchy, so every route declares the
// full set it accepts.
func RequireRole(allowed ...domain.RoleName) fiber.Handler {
	allowedSet := make(map[domain.RoleName]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("authentication required")
		}
		if principal.Role == nil {
			return apperrors.NewNoRoleAssigned()
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[*principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
