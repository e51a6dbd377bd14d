package service

import (
	"errors"
	"math/rand"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizprep_backend/internals/features/quizzes/mcq/model"
)

// DefaultSampleSize is how many questions a random quiz serves when the
// caller does not ask for a specific count.
const DefaultSampleSize = 35

// SampleQuestions returns up to limit questions in random order. The input
// slice is not modified.
func SampleQuestions(qs model.QuestionList, limit int) model.QuestionList {
	if limit <= 0 {
		limit = DefaultSampleSize
	}
	shuffled := make(model.QuestionList, len(qs))
	copy(shuffled, qs)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if limit > len(shuffled) {
		limit = len(shuffled)
	}
	return shuffled[:limit]
}

/* ==========================
   Flat catalog
========================== */

func GetMcqKeys(db *gorm.DB) ([]string, error) {
	var keys []string
	if err := db.Model(&model.McqModel{}).Pluck("key", &keys).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list question sets")
	}
	return keys, nil
}

func GetMcqByKey(db *gorm.DB, key string) (*model.McqModel, error) {
	var mcq model.McqModel
	if err := db.Where("key = ?", key).First(&mcq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Question set not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch question set")
	}
	return &mcq, nil
}

func GetMcqByID(db *gorm.DB, id uuid.UUID) (*model.McqModel, error) {
	var mcq model.McqModel
	if err := db.Where("id = ?", id).First(&mcq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Question set not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch question set")
	}
	return &mcq, nil
}

// GetRandomMcqQuestions samples questions from one flat set.
func GetRandomMcqQuestions(db *gorm.DB, key string, limit int) (model.QuestionList, error) {
	mcq, err := GetMcqByKey(db, key)
	if err != nil {
		return nil, err
	}
	qs, err := mcq.DecodeQuestions()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to decode questions")
	}
	if len(qs) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Question set is empty")
	}
	return SampleQuestions(qs, limit), nil
}

/* ==========================
   Topicwise catalog
========================== */

func GetTopicwiseKeys(db *gorm.DB) ([]string, error) {
	var keys []string
	if err := db.Model(&model.TopicwiseMcqModel{}).Pluck("key", &keys).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list topics")
	}
	return keys, nil
}

func GetTopicwiseByKey(db *gorm.DB, key string) (*model.TopicwiseMcqModel, error) {
	var mcq model.TopicwiseMcqModel
	if err := db.Where("key = ?", key).First(&mcq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Topic not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch topic")
	}
	return &mcq, nil
}

func GetTopicwiseByID(db *gorm.DB, id uuid.UUID) (*model.TopicwiseMcqModel, error) {
	var mcq model.TopicwiseMcqModel
	if err := db.Where("id = ?", id).First(&mcq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Topic not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch topic")
	}
	return &mcq, nil
}

// GetRandomTopicwiseQuestions samples questions from one topic.
func GetRandomTopicwiseQuestions(db *gorm.DB, key string, limit int) (model.QuestionList, error) {
	mcq, err := GetTopicwiseByKey(db, key)
	if err != nil {
		return nil, err
	}
	qs, err := mcq.DecodeQuestions()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to decode questions")
	}
	if len(qs) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Topic has no questions")
	}
	return SampleQuestions(qs, limit), nil
}
