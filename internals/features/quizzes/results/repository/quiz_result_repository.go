package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"quizprep_backend/internals/features/quizzes/results/model"
)

/* ==========================
   Flat results
========================== */

// NextAttemptCount returns 1 + the highest attempt recorded for this user
// and set. Run inside the transaction that inserts the new row.
func NextAttemptCount(db *gorm.DB, userID, mcqID uuid.UUID) (int, error) {
	var max int
	err := db.Model(&model.UserQuizResultModel{}).
		Where("user_id = ? AND mcq_id = ?", userID, mcqID).
		Select("COALESCE(MAX(attempt_count), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func CreateResult(db *gorm.DB, result *model.UserQuizResultModel) error {
	return db.Create(result).Error
}

func FindResultByID(db *gorm.DB, id uuid.UUID) (*model.UserQuizResultModel, error) {
	var result model.UserQuizResultModel
	if err := db.Where("id = ?", id).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func ListResultsByUser(db *gorm.DB, userID uuid.UUID, limit, offset int) ([]model.UserQuizResultModel, int64, error) {
	var total int64
	base := db.Model(&model.UserQuizResultModel{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []model.UserQuizResultModel
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&results).Error
	return results, total, err
}

func ListResultsByMcq(db *gorm.DB, mcqID uuid.UUID, limit, offset int) ([]model.UserQuizResultModel, int64, error) {
	var total int64
	base := db.Model(&model.UserQuizResultModel{}).Where("mcq_id = ?", mcqID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []model.UserQuizResultModel
	err := db.Where("mcq_id = ?", mcqID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&results).Error
	return results, total, err
}

func ListResultsByUserAndMcq(db *gorm.DB, userID, mcqID uuid.UUID) ([]model.UserQuizResultModel, error) {
	var results []model.UserQuizResultModel
	err := db.Where("user_id = ? AND mcq_id = ?", userID, mcqID).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}

// ListResultsByMcqIDs fetches a user's attempts across several sets at once.
func ListResultsByMcqIDs(db *gorm.DB, userID uuid.UUID, mcqIDs []uuid.UUID) ([]model.UserQuizResultModel, error) {
	ids := make([]string, 0, len(mcqIDs))
	for _, id := range mcqIDs {
		ids = append(ids, id.String())
	}
	var results []model.UserQuizResultModel
	err := db.Where("user_id = ? AND mcq_id = ANY(?)", userID, pq.Array(ids)).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}

/* ==========================
   Topicwise results
========================== */

func NextTopicwiseAttemptCount(db *gorm.DB, userID, topicwiseMcqID uuid.UUID) (int, error) {
	var max int
	err := db.Model(&model.TopicwiseQuizResultModel{}).
		Where("user_id = ? AND topicwise_mcq_id = ?", userID, topicwiseMcqID).
		Select("COALESCE(MAX(attempt_count), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func CreateTopicwiseResult(db *gorm.DB, result *model.TopicwiseQuizResultModel) error {
	return db.Create(result).Error
}

func FindTopicwiseResultByID(db *gorm.DB, id uuid.UUID) (*model.TopicwiseQuizResultModel, error) {
	var result model.TopicwiseQuizResultModel
	if err := db.Where("id = ?", id).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func ListTopicwiseResultsByUser(db *gorm.DB, userID uuid.UUID, limit, offset int) ([]model.TopicwiseQuizResultModel, int64, error) {
	var total int64
	base := db.Model(&model.TopicwiseQuizResultModel{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []model.TopicwiseQuizResultModel
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&results).Error
	return results, total, err
}

func ListTopicwiseResultsByMcq(db *gorm.DB, topicwiseMcqID uuid.UUID, limit, offset int) ([]model.TopicwiseQuizResultModel, int64, error) {
	var total int64
	base := db.Model(&model.TopicwiseQuizResultModel{}).Where("topicwise_mcq_id = ?", topicwiseMcqID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []model.TopicwiseQuizResultModel
	err := db.Where("topicwise_mcq_id = ?", topicwiseMcqID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&results).Error
	return results, total, err
}

func ListTopicwiseResultsByUserAndMcq(db *gorm.DB, userID, topicwiseMcqID uuid.UUID) ([]model.TopicwiseQuizResultModel, error) {
	var results []model.TopicwiseQuizResultModel
	err := db.Where("user_id = ? AND topicwise_mcq_id = ?", userID, topicwiseMcqID).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}

/* ==========================
   Analytics feed
========================== */

// AttemptRow is a topicwise attempt joined with its topic key. The
// analytics service aggregates over these rows in memory.
type AttemptRow struct {
	Topic              string         `gorm:"column:topic"`
	TotalTimeTaken     int            `gorm:"column:total_time_taken"`
	CorrectAnswerCount int            `gorm:"column:correct_answer_count"`
	WrongAnswerCount   int            `gorm:"column:wrong_answer_count"`
	AttemptCount       int            `gorm:"column:attempt_count"`
	QuestionDetails    datatypes.JSON `gorm:"column:question_details"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
}

// ListAttemptRowsByUser loads every topicwise attempt for a user, oldest
// first, with the owning topic's key attached.
func ListAttemptRowsByUser(db *gorm.DB, userID uuid.UUID) ([]AttemptRow, error) {
	var rows []AttemptRow
	err := db.Table("topicwise_quiz_results AS r").
		Select(`t.key AS topic,
			r.total_time_taken,
			r.correct_answer_count,
			r.wrong_answer_count,
			r.attempt_count,
			r.question_details,
			r.created_at`).
		Joins("JOIN topicwise_mcqs AS t ON t.id = r.topicwise_mcq_id").
		Where("r.user_id = ?", userID).
		Order("r.created_at ASC").
		Scan(&rows).Error
	return rows, err
}
