package dto

import (
	"time"

	"github.com/google/uuid"

	"quizprep_backend/internals/features/quizzes/results/model"
)

// CreateResultRequest is the flat attempt payload.
type CreateResultRequest struct {
	McqID              uuid.UUID `json:"mcq_id" validate:"required"`
	TotalTimeTaken     int       `json:"total_time_taken" validate:"gte=0"`
	CorrectAnswerCount int       `json:"correct_answer_count" validate:"gte=0"`
	WrongAnswerCount   int       `json:"wrong_answer_count" validate:"gte=0"`
}

// CreateTopicwiseResultRequest is the topicwise attempt payload. Question
// details are optional.
type CreateTopicwiseResultRequest struct {
	TopicwiseMcqID     uuid.UUID              `json:"topicwise_mcq_id" validate:"required"`
	TotalTimeTaken     int                    `json:"total_time_taken" validate:"gte=0"`
	CorrectAnswerCount int                    `json:"correct_answer_count" validate:"gte=0"`
	WrongAnswerCount   int                    `json:"wrong_answer_count" validate:"gte=0"`
	QuestionDetails    []model.QuestionDetail `json:"question_details"`
}

// TopicwiseResultResponse carries a topicwise attempt with its details
// decoded to the structured form.
type TopicwiseResultResponse struct {
	ID                 uuid.UUID              `json:"id"`
	UserID             uuid.UUID              `json:"user_id"`
	TopicwiseMcqID     uuid.UUID              `json:"topicwise_mcq_id"`
	TotalTimeTaken     int                    `json:"total_time_taken"`
	CorrectAnswerCount int                    `json:"correct_answer_count"`
	WrongAnswerCount   int                    `json:"wrong_answer_count"`
	AttemptCount       int                    `json:"attempt_count"`
	QuestionDetails    []model.QuestionDetail `json:"question_details,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

func FromTopicwiseModel(m *model.TopicwiseQuizResultModel) (TopicwiseResultResponse, error) {
	details, err := m.DecodeQuestionDetails()
	if err != nil {
		return TopicwiseResultResponse{}, err
	}
	return TopicwiseResultResponse{
		ID:                 m.ID,
		UserID:             m.UserID,
		TopicwiseMcqID:     m.TopicwiseMcqID,
		TotalTimeTaken:     m.TotalTimeTaken,
		CorrectAnswerCount: m.CorrectAnswerCount,
		WrongAnswerCount:   m.WrongAnswerCount,
		AttemptCount:       m.AttemptCount,
		QuestionDetails:    details,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}, nil
}

func FromTopicwiseModels(ms []model.TopicwiseQuizResultModel) ([]TopicwiseResultResponse, error) {
	out := make([]TopicwiseResultResponse, 0, len(ms))
	for i := range ms {
		resp, err := FromTopicwiseModel(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
