package dto

// CreateFeedbackRequest is the verdict a user leaves on a topic.
type CreateFeedbackRequest struct {
	Topic   string  `json:"topic" validate:"required"`
	Type    string  `json:"type" validate:"required"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

// FeedbackStats summarizes the verdicts for one topic.
type FeedbackStats struct {
	Topic            string `json:"topic"`
	Helpful          int64  `json:"helpful"`
	NeedsImprovement int64  `json:"needs_improvement"`
	Total            int64  `json:"total"`
}
