package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizprep_backend/internals/constants"
	resultController "quizprep_backend/internals/features/quizzes/results/controller"
	authMiddleware "quizprep_backend/internals/middlewares/auth"
)

// QuizResultRoutes mounts attempt recording and history, flat and
// topicwise. Everything requires a logged-in user; cross-user listings
// are admin only.
func QuizResultRoutes(router fiber.Router, db *gorm.DB) {
	flat := resultController.NewQuizResultController(db)
	topicwise := resultController.NewTopicwiseQuizResultController(db)

	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("quiz result administration"),
		constants.RoleAdmin,
	)

	results := router.Group("/quiz-results", authMiddleware.AuthMiddleware())
	results.Post("/", flat.Create)
	results.Get("/", flat.ListOwn)
	results.Get("/compare", flat.CompareOwn)
	results.Get("/mcq/:mcqId", flat.ListOwnByMcq)
	results.Get("/mcq/:mcqId/all", adminOnly, flat.ListByMcq)
	results.Get("/:id", flat.GetByID)

	topics := router.Group("/topicwise-quiz-results", authMiddleware.AuthMiddleware())
	topics.Post("/", topicwise.Create)
	topics.Get("/", topicwise.ListOwn)
	topics.Get("/mcq/:mcqId", topicwise.ListOwnByMcq)
	topics.Get("/mcq/:mcqId/all", adminOnly, topicwise.ListByMcq)
	topics.Get("/:id", topicwise.GetByID)
}
