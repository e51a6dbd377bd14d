package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsService "quizprep_backend/internals/features/quizzes/analytics/service"
	resultRepo "quizprep_backend/internals/features/quizzes/results/repository"
	userService "quizprep_backend/internals/features/users/user/service"
	helper "quizprep_backend/internals/helpers"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

func (ctrl *AnalyticsController) loadRows(c *fiber.Ctx) ([]resultRepo.AttemptRow, error) {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	rows, err := resultRepo.ListAttemptRowsByUser(ctrl.DB, userID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load attempts")
	}
	return rows, nil
}

// GET /api/analytics/topic-performance
func (ctrl *AnalyticsController) TopicPerformance(c *fiber.Ctx) error {
	rows, err := ctrl.loadRows(c)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "Topic performance fetched", analyticsService.BuildTopicPerformance(rows))
}

// GET /api/analytics/progress?topic=
func (ctrl *AnalyticsController) Progress(c *fiber.Ctx) error {
	rows, err := ctrl.loadRows(c)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	rows = analyticsService.FilterRowsByTopic(rows, c.Query("topic"))
	return helper.JsonOK(c, "Progress fetched", analyticsService.BuildProgress(rows))
}

// GET /api/analytics/weak-areas
func (ctrl *AnalyticsController) WeakAreas(c *fiber.Ctx) error {
	rows, err := ctrl.loadRows(c)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "Weak areas fetched", analyticsService.BuildWeakAreas(rows))
}

// GET /api/analytics/dashboard
func (ctrl *AnalyticsController) Dashboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if _, err := userService.GetUserByID(ctrl.DB, userID); err != nil {
		return helper.JsonServiceError(c, err)
	}

	rows, err := resultRepo.ListAttemptRowsByUser(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attempts")
	}
	return helper.JsonOK(c, "Dashboard fetched", analyticsService.BuildDashboard(rows))
}
