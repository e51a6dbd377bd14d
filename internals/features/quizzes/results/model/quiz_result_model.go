package model

import (
	"time"

	"github.com/google/uuid"
)

// UserQuizResultModel records one attempt against a flat MCQ set.
// attempt_count is an informational best-effort counter, written by the
// service inside the same transaction that reads the prior maximum.
type UserQuizResultModel struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	McqID  uuid.UUID `gorm:"column:mcq_id;type:uuid;not null;index" json:"mcq_id"`

	TotalTimeTaken     int `gorm:"column:total_time_taken;not null;default:0" json:"total_time_taken"`
	CorrectAnswerCount int `gorm:"column:correct_answer_count;not null;default:0" json:"correct_answer_count"`
	WrongAnswerCount   int `gorm:"column:wrong_answer_count;not null;default:0" json:"wrong_answer_count"`
	AttemptCount       int `gorm:"column:attempt_count;not null;default:1" json:"attempt_count"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (UserQuizResultModel) TableName() string {
	return "user_quiz_results"
}
