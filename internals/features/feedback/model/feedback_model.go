package model

import (
	"time"

	"github.com/google/uuid"

	"quizprep_backend/internals/constants"
)

// FeedbackModel is a user's verdict on one topic's question set.
type FeedbackModel struct {
	ID      uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Topic   string                 `gorm:"column:topic;size:255;not null;index" json:"topic"`
	Type    constants.FeedbackType `gorm:"column:type;type:varchar(30);not null" json:"type"`
	Comment *string                `gorm:"column:comment" json:"comment,omitempty"`
	UserID  uuid.UUID              `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (FeedbackModel) TableName() string {
	return "feedbacks"
}
