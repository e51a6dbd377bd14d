package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mcqService "quizprep_backend/internals/features/quizzes/mcq/service"
	helper "quizprep_backend/internals/helpers"
)

type TopicwiseMcqController struct {
	DB *gorm.DB
}

func NewTopicwiseMcqController(db *gorm.DB) *TopicwiseMcqController {
	return &TopicwiseMcqController{DB: db}
}

// GET /api/topicwise-mcqs
func (ctrl *TopicwiseMcqController) ListKeys(c *fiber.Ctx) error {
	keys, err := mcqService.GetTopicwiseKeys(ctrl.DB)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "Topics fetched", keys)
}

// GET /api/topicwise-mcqs/:key
func (ctrl *TopicwiseMcqController) GetByKey(c *fiber.Ctx) error {
	mcq, err := mcqService.GetTopicwiseByKey(ctrl.DB, c.Params("key"))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	questions, err := mcq.DecodeQuestions()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode questions")
	}
	return helper.JsonOK(c, "Topic fetched", fiber.Map{
		"id":        mcq.ID,
		"key":       mcq.Key,
		"questions": questions,
	})
}

// GET /api/topicwise-mcqs/:key/random?limit=
func (ctrl *TopicwiseMcqController) GetRandom(c *fiber.Ctx) error {
	questions, err := mcqService.GetRandomTopicwiseQuestions(ctrl.DB, c.Params("key"), sampleLimit(c))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "Random questions fetched", questions)
}
