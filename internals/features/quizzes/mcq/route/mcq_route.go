package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mcqController "quizprep_backend/internals/features/quizzes/mcq/controller"
)

// McqRoutes mounts the question catalog, flat and topicwise. The catalog
// is read-only and public; attempts and analytics are what require login.
func McqRoutes(router fiber.Router, db *gorm.DB) {
	flat := mcqController.NewMcqController(db)
	topicwise := mcqController.NewTopicwiseMcqController(db)

	mcqs := router.Group("/mcqs")
	mcqs.Get("/", flat.ListKeys)
	mcqs.Get("/:key", flat.GetByKey)
	mcqs.Get("/:key/random", flat.GetRandom)

	topics := router.Group("/topicwise-mcqs")
	topics.Get("/", topicwise.ListKeys)
	topics.Get("/:key", topicwise.GetByKey)
	topics.Get("/:key/random", topicwise.GetRandom)
}
