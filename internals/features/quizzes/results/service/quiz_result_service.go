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

func validateCounts(timeTaken, correct, wrong int) error {
	if timeTaken < 0 || correct < 0 || wrong < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Counts must not be negative")
	}
	return nil
}

// CreateResult records a flat attempt. The attempt counter is read and
// written in one transaction so retries stay monotonic.
func CreateResult(db *gorm.DB, userID uuid.UUID, input resultDTO.CreateResultRequest) (*model.UserQuizResultModel, error) {
	if err := validateCounts(input.TotalTimeTaken, input.CorrectAnswerCount, input.WrongAnswerCount); err != nil {
		return nil, err
	}
	if _, err := mcqService.GetMcqByID(db, input.McqID); err != nil {
		return nil, err
	}

	result := &model.UserQuizResultModel{
		UserID:             userID,
		McqID:              input.McqID,
		TotalTimeTaken:     input.TotalTimeTaken,
		CorrectAnswerCount: input.CorrectAnswerCount,
		WrongAnswerCount:   input.WrongAnswerCount,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		attempt, err := resultRepo.NextAttemptCount(tx, userID, input.McqID)
		if err != nil {
			return err
		}
		result.AttemptCount = attempt
		return resultRepo.CreateResult(tx, result)
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to record result")
	}
	return result, nil
}

// GetResult returns one attempt, readable by its owner or an admin.
func GetResult(db *gorm.DB, id, requesterID uuid.UUID, requesterIsAdmin bool) (*model.UserQuizResultModel, error) {
	result, err := resultRepo.FindResultByID(db, id)
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

func ListOwnResults(db *gorm.DB, userID uuid.UUID, limit, offset int) ([]model.UserQuizResultModel, int64, error) {
	results, total, err := resultRepo.ListResultsByUser(db, userID, limit, offset)
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to list results")
	}
	return results, total, nil
}

// ListResultsForMcq is the admin view of every attempt against one set.
func ListResultsForMcq(db *gorm.DB, mcqID uuid.UUID, limit, offset int) ([]model.UserQuizResultModel, int64, error) {
	if _, err := mcqService.GetMcqByID(db, mcqID); err != nil {
		return nil, 0, err
	}
	results, total, err := resultRepo.ListResultsByMcq(db, mcqID, limit, offset)
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to list results")
	}
	return results, total, nil
}

// ListOwnResultsForMcqs fetches a user's attempts across several sets in
// one query, for side-by-side comparison.
func ListOwnResultsForMcqs(db *gorm.DB, userID uuid.UUID, mcqIDs []uuid.UUID) ([]model.UserQuizResultModel, error) {
	if len(mcqIDs) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "At least one mcq id is required")
	}
	results, err := resultRepo.ListResultsByMcqIDs(db, userID, mcqIDs)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list results")
	}
	return results, nil
}

func ListOwnResultsForMcq(db *gorm.DB, userID, mcqID uuid.UUID) ([]model.UserQuizResultModel, error) {
	results, err := resultRepo.ListResultsByUserAndMcq(db, userID, mcqID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list results")
	}
	return results, nil
}
