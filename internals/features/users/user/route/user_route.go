package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizprep_backend/internals/constants"
	userController "quizprep_backend/internals/features/users/user/controller"
	authMiddleware "quizprep_backend/internals/middlewares/auth"
)

// UserRoutes mounts the user directory. All endpoints require a valid
// access token; admin endpoints are additionally role gated.
func UserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := router.Group("/users", authMiddleware.AuthMiddleware())
	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("user administration"),
		constants.RoleAdmin,
	)

	users.Get("/me", ctrl.GetMe)
	users.Get("/email/:email", adminOnly, ctrl.GetByEmail)
	users.Get("/:id", ctrl.GetByID)
	users.Patch("/:id", ctrl.Update)

	users.Get("/", adminOnly, ctrl.List)
	users.Patch("/:id/role", adminOnly, ctrl.UpdateRole)
	users.Patch("/:id/status", adminOnly, ctrl.UpdateStatus)
	users.Delete("/:id", adminOnly, ctrl.Delete)
}
