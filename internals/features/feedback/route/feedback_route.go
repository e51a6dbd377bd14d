package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feedbackController "quizprep_backend/internals/features/feedback/controller"
	authMiddleware "quizprep_backend/internals/middlewares/auth"
)

// FeedbackRoutes mounts topic feedback collection and stats.
func FeedbackRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := feedbackController.NewFeedbackController(db)

	feedback := router.Group("/feedback", authMiddleware.AuthMiddleware())
	feedback.Post("/", ctrl.Create)
	feedback.Get("/me", ctrl.ListOwn)
	feedback.Get("/topic/:topic", ctrl.ListByTopic)
	feedback.Get("/topic/:topic/stats", ctrl.Stats)
}
