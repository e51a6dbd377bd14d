package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feedbackDTO "quizprep_backend/internals/features/feedback/dto"
	feedbackService "quizprep_backend/internals/features/feedback/service"
	helper "quizprep_backend/internals/helpers"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

// POST /api/feedback
func (ctrl *FeedbackController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input feedbackDTO.CreateFeedbackRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	feedback, err := feedbackService.CreateFeedback(ctrl.DB, userID, input)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "Feedback recorded", feedback)
}

// GET /api/feedback/me
func (ctrl *FeedbackController) ListOwn(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	items, total, err := feedbackService.ListOwnFeedback(ctrl.DB, userID, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, "Feedback fetched", items,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/feedback/topic/:topic
func (ctrl *FeedbackController) ListByTopic(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	items, total, err := feedbackService.ListFeedbackByTopic(ctrl.DB, c.Params("topic"), paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, "Feedback fetched", items,
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/feedback/topic/:topic/stats
func (ctrl *FeedbackController) Stats(c *fiber.Ctx) error {
	stats, err := feedbackService.GetFeedbackStats(ctrl.DB, c.Params("topic"))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "Feedback stats fetched", stats)
}
