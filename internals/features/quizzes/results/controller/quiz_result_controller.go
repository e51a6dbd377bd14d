package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	resultDTO "quizprep_backend/internals/features/quizzes/results/dto"
	resultService "quizprep_backend/internals/features/quizzes/results/service"
	helper "quizprep_backend/internals/helpers"
)

type QuizResultController struct {
	DB *gorm.DB
}

func NewQuizResultController(db *gorm.DB) *QuizResultController {
	return &QuizResultController{DB: db}
}

func parseParamID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}

// POST /api/quiz-results
func (ctrl *QuizResultController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input resultDTO.CreateResultRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := resultService.CreateResult(ctrl.DB, userID, input)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "Result recorded", result)
}

// GET /api/quiz-results (own history)
func (ctrl *QuizResultController) ListOwn(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	results, total, err := resultService.ListOwnResults(ctrl.DB, userID, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, "Results fetched", results,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/quiz-results/:id (owner or admin)
func (ctrl *QuizResultController) GetByID(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	result, err := resultService.GetResult(ctrl.DB, id, userID, helper.IsAdmin(c))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "Result fetched", result)
}

// GET /api/quiz-results/compare?mcq_ids=a,b,c (own attempts across sets)
func (ctrl *QuizResultController) CompareOwn(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var ids []uuid.UUID
	for _, raw := range strings.Split(c.Query("mcq_ids"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mcq id: "+raw)
		}
		ids = append(ids, id)
	}

	results, err := resultService.ListOwnResultsForMcqs(ctrl.DB, userID, ids)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "Results fetched", results)
}

// GET /api/quiz-results/mcq/:mcqId (own attempts for one set)
func (ctrl *QuizResultController) ListOwnByMcq(c *fiber.Ctx) error {
	mcqID, err := parseParamID(c, "mcqId")
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	results, err := resultService.ListOwnResultsForMcq(ctrl.DB, userID, mcqID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "Results fetched", results)
}

// GET /api/quiz-results/mcq/:mcqId/all (admin, every user)
func (ctrl *QuizResultController) ListByMcq(c *fiber.Ctx) error {
	mcqID, err := parseParamID(c, "mcqId")
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	results, total, err := resultService.ListResultsForMcq(ctrl.DB, mcqID, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, "Results fetched", results,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}
