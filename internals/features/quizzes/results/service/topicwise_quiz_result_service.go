package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	mcqService "quizprep_backend/internals/features/quizzes/mcq/service"
	resultDTO "quizprep_backend/internals/features/quizzes/results/dto"
	"quizprep_backend/internals/features/quizzes/results/model"
	resultRepo "quizprep_backend/internals/features/quizzes/results/repository"
)

// CreateTopicwiseResult records a topicwise attempt, with optional
// per-question details stored alongside the counters.
func CreateTopicwiseResult(db *gorm.DB, userID uuid.UUID, input resultDTO.CreateTopicwiseResultRequest) (*model.TopicwiseQuizResultModel, error) {
	if err := validateCounts(input.TotalTimeTaken, input.CorrectAnswerCount, input.WrongAnswerCount); err != nil {
		return nil, err
	}
	if _, err := mcqService.GetTopicwiseByID(db, input.TopicwiseMcqID); err != nil {
		return nil, err
	}

	details, err := model.EncodeQuestionDetails(input.QuestionDetails)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid question details")
	}

	result := &model.TopicwiseQuizResultModel{
		UserID:             userID,
		TopicwiseMcqID:     input.TopicwiseMcqID,
		TotalTimeTaken:     input.TotalTimeTaken,
		CorrectAnswerCount: input.CorrectAnswerCount,
		WrongAnswerCount:   input.WrongAnswerCount,
		QuestionDetails:    details,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		attempt, err := resultRepo.NextTopicwiseAttemptCount(tx, userID, input.TopicwiseMcqID)
		if err != nil {
			return err
		}
		result.AttemptCount = attempt
		return resultRepo.CreateTopicwiseResult(tx, result)
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to record result")
	}
	return result, nil
}

func GetTopicwiseResult(db *gorm.DB, id, requesterID uuid.UUID, requesterIsAdmin bool) (*model.TopicwiseQuizResultModel, error) {
	result, err := resultRepo.FindTopicwiseResultByID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Result not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch result")
	}
	if result.UserID != requesterID && !requesterIsAdmin {
		return nil, fiber.NewError(fiber.StatusForbidden, "You may only view your own results")
	}
	return result, nil
}

func ListOwnTopicwiseResults(db *gorm.DB, userID uuid.UUID, limit, offset int) ([]model.TopicwiseQuizResultModel, int64, error) {
	results, total, err := resultRepo.ListTopicwiseResultsByUser(db, userID, limit, offset)
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to list results")
	}
	return results, total, nil
}

func ListTopicwiseResultsForMcq(db *gorm.DB, topicwiseMcqID uuid.UUID, limit, offset int) ([]model.TopicwiseQuizResultModel, int64, error) {
	if _, err := mcqService.GetTopicwiseByID(db, topicwiseMcqID); err != nil {
		return nil, 0, err
	}
	results, total, err := resultRepo.ListTopicwiseResultsByMcq(db, topicwiseMcqID, limit, offset)
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to list results")
	}
	return results, total, nil
}

func ListOwnTopicwiseResultsForMcq(db *gorm.DB, userID, topicwiseMcqID uuid.UUID) ([]model.TopicwiseQuizResultModel, error) {
	results, err := resultRepo.ListTopicwiseResultsByUserAndMcq(db, userID, topicwiseMcqID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list results")
	}
	return results, nil
}
