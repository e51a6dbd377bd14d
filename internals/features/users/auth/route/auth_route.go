package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "quizprep_backend/internals/features/users/auth/controller"
	"quizprep_backend/internals/middlewares"
	authMiddleware "quizprep_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the credential and social-login endpoints under /auth.
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Post("/login/github", middlewares.LoginRateLimiter(), ctrl.GithubLogin)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/logout", ctrl.Logout)
	auth.Post("/change-password", authMiddleware.AuthMiddleware(), ctrl.ChangePassword)
}
