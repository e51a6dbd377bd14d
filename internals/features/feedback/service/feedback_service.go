package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizprep_backend/internals/constants"
	feedbackDTO "quizprep_backend/internals/features/feedback/dto"
	"quizprep_backend/internals/features/feedback/model"
)

// CreateFeedback stores one verdict. Users may leave several over time;
// stats count all of them.
func CreateFeedback(db *gorm.DB, userID uuid.UUID, input feedbackDTO.CreateFeedbackRequest) (*model.FeedbackModel, error) {
	topic := strings.TrimSpace(input.Topic)
	if topic == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Topic is required")
	}
	fbType := constants.FeedbackType(strings.ToUpper(strings.TrimSpace(input.Type)))
	if !fbType.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Type must be HELPFUL or NEEDS_IMPROVEMENT")
	}

	feedback := &model.FeedbackModel{
		Topic:   topic,
		Type:    fbType,
		Comment: input.Comment,
		UserID:  userID,
	}
	if err := db.Create(feedback).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to record feedback")
	}
	return feedback, nil
}

func ListFeedbackByTopic(db *gorm.DB, topic string, limit, offset int) ([]model.FeedbackModel, int64, error) {
	var total int64
	base := db.Model(&model.FeedbackModel{}).Where("topic = ?", topic)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to count feedback")
	}

	var items []model.FeedbackModel
	err := db.Where("topic = ?", topic).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to list feedback")
	}
	return items, total, nil
}

func ListOwnFeedback(db *gorm.DB, userID uuid.UUID, limit, offset int) ([]model.FeedbackModel, int64, error) {
	var total int64
	base := db.Model(&model.FeedbackModel{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to count feedback")
	}

	var items []model.FeedbackModel
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to list feedback")
	}
	return items, total, nil
}

// GetFeedbackStats tallies the verdicts for one topic.
func GetFeedbackStats(db *gorm.DB, topic string) (*feedbackDTO.FeedbackStats, error) {
	stats := &feedbackDTO.FeedbackStats{Topic: topic}

	err := db.Model(&model.FeedbackModel{}).
		Where("topic = ? AND type = ?", topic, constants.FeedbackHelpful).
		Count(&stats.Helpful).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to compute stats")
	}
	err = db.Model(&model.FeedbackModel{}).
		Where("topic = ? AND type = ?", topic, constants.FeedbackNeedsImprovement).
		Count(&stats.NeedsImprovement).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to compute stats")
	}
	stats.Total = stats.Helpful + stats.NeedsImprovement
	return stats, nil
}
