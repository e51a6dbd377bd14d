package auth

import (
	"github.com/gofiber/fiber/v2"

	"quizprep_backend/internals/constants"
	helper "quizprep_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError checks the authenticated role against an
// allow list, with a custom forbidden message.
func RoleMiddlewareWithCustomError(allowedRoles []constants.UserRole, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetUserRole(c)
		if role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyRoles is the shorthand used by the route files.
func OnlyRoles(customMessage string, roles ...constants.UserRole) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
