package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuestionDetail is the per-question record optionally attached to a
// topicwise attempt. Attempts without details still count toward topic
// performance but are skipped by weak-area detection.
type QuestionDetail struct {
	QuestionID     int    `json:"question_id"`
	Question       string `json:"question"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
	IsCorrect      bool   `json:"is_correct"`
	TimeTaken      int    `json:"time_taken,omitempty"`
}

// EncodeQuestionDetails and DecodeQuestionDetails are the single
// conversion point between the structured detail list and the stored
// JSONB column. API responses always carry the structured form.
func EncodeQuestionDetails(details []QuestionDetail) (datatypes.JSON, error) {
	if details == nil {
		return nil, nil
	}
	b, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func DecodeQuestionDetails(raw datatypes.JSON) ([]QuestionDetail, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var details []QuestionDetail
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// TopicwiseQuizResultModel records one attempt against a topicwise set.
type TopicwiseQuizResultModel struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	TopicwiseMcqID uuid.UUID `gorm:"column:topicwise_mcq_id;type:uuid;not null;index" json:"topicwise_mcq_id"`

	TotalTimeTaken     int `gorm:"column:total_time_taken;not null;default:0" json:"total_time_taken"`
	CorrectAnswerCount int `gorm:"column:correct_answer_count;not null;default:0" json:"correct_answer_count"`
	WrongAnswerCount   int `gorm:"column:wrong_answer_count;not null;default:0" json:"wrong_answer_count"`
	AttemptCount       int `gorm:"column:attempt_count;not null;default:1" json:"attempt_count"`

	QuestionDetails datatypes.JSON `gorm:"column:question_details;type:jsonb" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (TopicwiseQuizResultModel) TableName() string {
	return "topicwise_quiz_results"
}

func (m *TopicwiseQuizResultModel) DecodeQuestionDetails() ([]QuestionDetail, error) {
	return DecodeQuestionDetails(m.QuestionDetails)
}
