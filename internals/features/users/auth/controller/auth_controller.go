package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizprep_backend/internals/configs"
	authService "quizprep_backend/internals/features/users/auth/service"
	helper "quizprep_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	now := time.Now()
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(configs.AccessTokenTTL),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(configs.RefreshTokenTTL),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}
}

// refreshTokenFromRequest reads the refresh token from the body first, the
// cookie second.
func refreshTokenFromRequest(c *fiber.Ctx) string {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&body); err == nil && strings.TrimSpace(body.RefreshToken) != "" {
		return strings.TrimSpace(body.RefreshToken)
	}
	return strings.TrimSpace(c.Cookies("refresh_token"))
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var input authService.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := authService.Register(ctrl.DB, input)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	setAuthCookies(c, result.AccessToken, result.RefreshToken)
	return helper.JsonCreated(c, "Registration successful", result)
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := authService.Login(ctrl.DB, body.Email, body.Password)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	setAuthCookies(c, result.AccessToken, result.RefreshToken)
	return helper.JsonOK(c, "Login successful", result)
}

// POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	raw := refreshTokenFromRequest(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token is required")
	}

	result, err := authService.RefreshToken(ctrl.DB, raw)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	setAuthCookies(c, result.AccessToken, result.RefreshToken)
	return helper.JsonOK(c, "Token refreshed", result)
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := refreshTokenFromRequest(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token is required")
	}

	if err := authService.Logout(ctrl.DB, raw); err != nil {
		return helper.JsonServiceError(c, err)
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Logout successful", nil)
}

// POST /api/auth/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authService.ChangePassword(ctrl.DB, userID, body.OldPassword, body.NewPassword); err != nil {
		return helper.JsonServiceError(c, err)
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Password changed", nil)
}

// POST /api/auth/login/google
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := authService.GoogleLogin(ctrl.DB, body.IDToken)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	setAuthCookies(c, result.AccessToken, result.RefreshToken)
	return helper.JsonOK(c, "Login successful", result)
}

// POST /api/auth/login/github
func (ctrl *AuthController) GithubLogin(c *fiber.Ctx) error {
	var body struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := authService.GithubLogin(c.Context(), ctrl.DB, body.Code)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	setAuthCookies(c, result.AccessToken, result.RefreshToken)
	return helper.JsonOK(c, "Login successful", result)
}
