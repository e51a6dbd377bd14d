package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Question is one multiple-choice question inside a set. Sets are stored
// as a single JSONB array per topic key; the catalog is read-mostly and
// pre-seeded by the loader in internals/seeds/mcqs.
type Question struct {
	QuestionID int    `json:"question_id"`
	Question   string `json:"question"`
	OptionA    string `json:"option_a"`
	OptionB    string `json:"option_b"`
	OptionC    string `json:"option_c"`
	OptionD    string `json:"option_d"`
	Answer     string `json:"answer"`
	SourceFile string `json:"source_file,omitempty"`
}

type QuestionList []Question

// EncodeQuestions and DecodeQuestions are the single conversion point
// between the structured form and the stored JSONB column.
func EncodeQuestions(qs QuestionList) (datatypes.JSON, error) {
	b, err := json.Marshal(qs)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func DecodeQuestions(raw datatypes.JSON) (QuestionList, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var qs QuestionList
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// McqModel is the flat catalog: one row per topic key.
type McqModel struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Key       string         `gorm:"column:key;size:255;not null;uniqueIndex" json:"key"`
	Questions datatypes.JSON `gorm:"column:questions;type:jsonb;not null" json:"questions"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (McqModel) TableName() string {
	return "mcqs"
}

func (m *McqModel) DecodeQuestions() (QuestionList, error) {
	return DecodeQuestions(m.Questions)
}

// TopicwiseMcqModel is the quiz variant that supports randomized
// sampling and rich per-question detail on results.
type TopicwiseMcqModel struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Key       string         `gorm:"column:key;size:255;not null;uniqueIndex" json:"key"`
	Questions datatypes.JSON `gorm:"column:questions;type:jsonb;not null" json:"questions"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (TopicwiseMcqModel) TableName() string {
	return "topicwise_mcqs"
}

func (m *TopicwiseMcqModel) DecodeQuestions() (QuestionList, error) {
	return DecodeQuestions(m.Questions)
}
