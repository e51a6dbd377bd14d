package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultDTO "quizprep_backend/internals/features/quizzes/results/dto"
	resultService "quizprep_backend/internals/features/quizzes/results/service"
	helper "quizprep_backend/internals/helpers"
)

type TopicwiseQuizResultController struct {
	DB *gorm.DB
}

func NewTopicwiseQuizResultController(db *gorm.DB) *TopicwiseQuizResultController {
	return &TopicwiseQuizResultController{DB: db}
}

// POST /api/topicwise-quiz-results
func (ctrl *TopicwiseQuizResultController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input resultDTO.CreateTopicwiseResultRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := resultService.CreateTopicwiseResult(ctrl.DB, userID, input)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	resp, err := resultDTO.FromTopicwiseModel(result)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode result")
	}
	return helper.JsonCreated(c, "Result recorded", resp)
}

// GET /api/topicwise-quiz-results (own history)
func (ctrl *TopicwiseQuizResultController) ListOwn(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	results, total, err := resultService.ListOwnTopicwiseResults(ctrl.DB, userID, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	resp, err := resultDTO.FromTopicwiseModels(results)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode results")
	}
	return helper.JsonList(c, "Results fetched", resp,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/topicwise-quiz-results/:id (owner or admin)
func (ctrl *TopicwiseQuizResultController) GetByID(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	result, err := resultService.GetTopicwiseResult(ctrl.DB, id, userID, helper.IsAdmin(c))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	resp, err := resultDTO.FromTopicwiseModel(result)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode result")
	}
	return helper.JsonOK(c, "Result fetched", resp)
}

// GET /api/topicwise-quiz-results/mcq/:mcqId (own attempts for one topic)
func (ctrl *TopicwiseQuizResultController) ListOwnByMcq(c *fiber.Ctx) error {
	mcqID, err := parseParamID(c, "mcqId")
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	results, err := resultService.ListOwnTopicwiseResultsForMcq(ctrl.DB, userID, mcqID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	resp, err := resultDTO.FromTopicwiseModels(results)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode results")
	}
	return helper.JsonOK(c, "Results fetched", resp)
}

// GET /api/topicwise-quiz-results/mcq/:mcqId/all (admin, every user)
func (ctrl *TopicwiseQuizResultController) ListByMcq(c *fiber.Ctx) error {
	mcqID, err := parseParamID(c, "mcqId")
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	results, total, err := resultService.ListTopicwiseResultsForMcq(ctrl.DB, mcqID, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	resp, err := resultDTO.FromTopicwiseModels(results)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode results")
	}
	return helper.JsonList(c, "Results fetched", resp,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}
