package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mcqService "quizprep_backend/internals/features/quizzes/mcq/service"
	helper "quizprep_backend/internals/helpers"
)

type McqController struct {
	DB *gorm.DB
}

func NewMcqController(db *gorm.DB) *McqController {
	return &McqController{DB: db}
}

func sampleLimit(c *fiber.Ctx) int {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(mcqService.DefaultSampleSize)))
	if err != nil || limit <= 0 {
		return mcqService.DefaultSampleSize
	}
	return limit
}

// GET /api/mcqs
func (ctrl *McqController) ListKeys(c *fiber.Ctx) error {
	keys, err := mcqService.GetMcqKeys(ctrl.DB)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "Question sets fetched", keys)
}

// GET /api/mcqs/:key
func (ctrl *McqController) GetByKey(c *fiber.Ctx) error {
	mcq, err := mcqService.GetMcqByKey(ctrl.DB, c.Params("key"))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	questions, err := mcq.DecodeQuestions()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode questions")
	}
	return helper.JsonOK(c, "Question set fetched", fiber.Map{
		"id":        mcq.ID,
		"key":       mcq.Key,
		"questions": questions,
	})
}

// GET /api/mcqs/:key/random?limit=
func (ctrl *McqController) GetRandom(c *fiber.Ctx) error {
	questions, err := mcqService.GetRandomMcqQuestions(ctrl.DB, c.Params("key"), sampleLimit(c))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "Random questions fetched", questions)
}
