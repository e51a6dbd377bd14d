package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feedbackRoute "quizprep_backend/internals/features/feedback/route"
	analyticsRoute "quizprep_backend/internals/features/quizzes/analytics/route"
	mcqRoute "quizprep_backend/internals/features/quizzes/mcq/route"
	resultRoute "quizprep_backend/internals/features/quizzes/results/route"
	authRoute "quizprep_backend/internals/features/users/auth/route"
	userRoute "quizprep_backend/internals/features/users/user/route"
)

// SetupRoutes mounts every feature under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)
	userRoute.UserRoutes(api, db)
	mcqRoute.McqRoutes(api, db)
	resultRoute.QuizResultRoutes(api, db)
	analyticsRoute.AnalyticsRoutes(api, db)
	feedbackRoute.FeedbackRoutes(api, db)
}
