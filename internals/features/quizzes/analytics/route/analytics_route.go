package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsController "quizprep_backend/internals/features/quizzes/analytics/controller"
	authMiddleware "quizprep_backend/internals/middlewares/auth"
)

// AnalyticsRoutes mounts the per-user aggregation endpoints.
func AnalyticsRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := analyticsController.NewAnalyticsController(db)

	analytics := router.Group("/analytics", authMiddleware.AuthMiddleware())
	analytics.Get("/topic-performance", ctrl.TopicPerformance)
	analytics.Get("/progress", ctrl.Progress)
	analytics.Get("/weak-areas", ctrl.WeakAreas)
	analytics.Get("/dashboard", ctrl.Dashboard)
}
