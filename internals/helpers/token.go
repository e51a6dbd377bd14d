// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"quizprep_backend/internals/constants"
)

// Locals keys the auth middleware populates.
const (
	LocUserID    = "user_id"
	LocUserEmail = "user_email"
	LocUserRole  = "user_role"
)

// GetRawAccessToken returns the access token from:
// 1) Authorization header "Bearer <token>"
// 2) cookie "access_token"
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	return ""
}

// GetUserID reads the authenticated user's id out of Locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	s, ok := c.Locals(LocUserID).(string)
	if !ok || s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing user id in context")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in context")
	}
	return id, nil
}

// GetUserRole reads the authenticated user's role out of Locals.
func GetUserRole(c *fiber.Ctx) constants.UserRole {
	if s, ok := c.Locals(LocUserRole).(string); ok {
		return constants.UserRole(s)
	}
	return ""
}

// IsAdmin reports whether the authenticated user carries the ADMIN role.
func IsAdmin(c *fiber.Ctx) bool {
	return GetUserRole(c) == constants.RoleAdmin
}
