package service

import (
	"math"
	"sort"
	"time"

	resultModel "quizprep_backend/internals/features/quizzes/results/model"
	resultRepo "quizprep_backend/internals/features/quizzes/results/repository"
)

/* ==========================
   Response shapes
========================== */

type TopicPerformance struct {
	Topic            string  `json:"topic"`
	TotalAttempts    int     `json:"total_attempts"`
	TotalQuestions   int     `json:"total_questions"`
	TotalCorrect     int     `json:"total_correct"`
	AverageScore     float64 `json:"average_score"`
	AverageTimeTaken float64 `json:"average_time_taken"`
	BestScore        float64 `json:"best_score"`
	WorstScore       float64 `json:"worst_score"`
}

type ProgressPoint struct {
	Topic          string    `json:"topic"`
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	WrongAnswers   int       `json:"wrong_answers"`
	TotalQuestions int       `json:"total_questions"`
	TimeTaken      int       `json:"time_taken"`
	AttemptedAt    time.Time `json:"attempted_at"`
}

type WeakArea struct {
	Topic            string  `json:"topic"`
	QuestionID       int     `json:"question_id"`
	Question         string  `json:"question"`
	Attempts         int     `json:"attempts"`
	Correct          int     `json:"correct"`
	Incorrect        int     `json:"incorrect"`
	SuccessRate      float64 `json:"success_rate"`
	AverageTimeTaken float64 `json:"average_time_taken"`
}

type RecentAttempt struct {
	Topic       string    `json:"topic"`
	Score       float64   `json:"score"`
	TimeTaken   int       `json:"time_taken"`
	AttemptedAt time.Time `json:"attempted_at"`
}

type Dashboard struct {
	TotalAttempts          int                `json:"total_attempts"`
	TotalQuestionsAnswered int                `json:"total_questions_answered"`
	TotalCorrectAnswers    int                `json:"total_correct_answers"`
	OverallAverageScore    float64            `json:"overall_average_score"`
	TopTopics              []TopicPerformance `json:"top_topics"`
	RecentAttempts         []RecentAttempt    `json:"recent_attempts"`
}

/* ==========================
   Aggregation
========================== */

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// attemptScore is the percentage score of one attempt, 0 when the attempt
// somehow answered no questions.
func attemptScore(correct, wrong int) float64 {
	total := correct + wrong
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// BuildTopicPerformance aggregates attempts per topic. The average score
// pools answers across attempts rather than averaging attempt scores, so
// longer quizzes weigh more. Time taken uses a running mean.
func BuildTopicPerformance(rows []resultRepo.AttemptRow) []TopicPerformance {
	byTopic := map[string]*TopicPerformance{}
	order := []string{}

	for _, row := range rows {
		perf, ok := byTopic[row.Topic]
		if !ok {
			perf = &TopicPerformance{
				Topic:      row.Topic,
				BestScore:  0,
				WorstScore: 100,
			}
			byTopic[row.Topic] = perf
			order = append(order, row.Topic)
		}

		perf.TotalAttempts++
		perf.TotalQuestions += row.CorrectAnswerCount + row.WrongAnswerCount
		perf.TotalCorrect += row.CorrectAnswerCount
		perf.AverageTimeTaken += (float64(row.TotalTimeTaken) - perf.AverageTimeTaken) / float64(perf.TotalAttempts)

		score := attemptScore(row.CorrectAnswerCount, row.WrongAnswerCount)
		if score > perf.BestScore {
			perf.BestScore = score
		}
		if score < perf.WorstScore {
			perf.WorstScore = score
		}
	}

	out := make([]TopicPerformance, 0, len(order))
	for _, topic := range order {
		perf := byTopic[topic]
		if perf.TotalQuestions > 0 {
			perf.AverageScore = float64(perf.TotalCorrect) / float64(perf.TotalQuestions) * 100
		}
		perf.AverageScore = round2(perf.AverageScore)
		perf.AverageTimeTaken = round2(perf.AverageTimeTaken)
		perf.BestScore = round2(perf.BestScore)
		perf.WorstScore = round2(perf.WorstScore)
		out = append(out, *perf)
	}
	return out
}

// FilterRowsByTopic narrows attempts to one topic key. An empty key keeps
// everything.
func FilterRowsByTopic(rows []resultRepo.AttemptRow, topic string) []resultRepo.AttemptRow {
	if topic == "" {
		return rows
	}
	out := make([]resultRepo.AttemptRow, 0, len(rows))
	for _, row := range rows {
		if row.Topic == topic {
			out = append(out, row)
		}
	}
	return out
}

// BuildProgress lists every attempt in chronological order.
func BuildProgress(rows []resultRepo.AttemptRow) []ProgressPoint {
	out := make([]ProgressPoint, 0, len(rows))
	for _, row := range rows {
		out = append(out, ProgressPoint{
			Topic:          row.Topic,
			Score:          round2(attemptScore(row.CorrectAnswerCount, row.WrongAnswerCount)),
			CorrectAnswers: row.CorrectAnswerCount,
			WrongAnswers:   row.WrongAnswerCount,
			TotalQuestions: row.CorrectAnswerCount + row.WrongAnswerCount,
			TimeTaken:      row.TotalTimeTaken,
			AttemptedAt:    row.CreatedAt,
		})
	}
	return out
}

// BuildWeakAreas finds questions answered correctly less than half the
// time. Attempts recorded without per-question details are skipped. The
// weakest questions come first.
func BuildWeakAreas(rows []resultRepo.AttemptRow) []WeakArea {
	type key struct {
		topic      string
		questionID int
	}
	byQuestion := map[key]*WeakArea{}
	order := []key{}

	for _, row := range rows {
		details, err := resultModel.DecodeQuestionDetails(row.QuestionDetails)
		if err != nil || details == nil {
			continue
		}
		for _, d := range details {
			k := key{topic: row.Topic, questionID: d.QuestionID}
			area, ok := byQuestion[k]
			if !ok {
				area = &WeakArea{
					Topic:      row.Topic,
					QuestionID: d.QuestionID,
					Question:   d.Question,
				}
				byQuestion[k] = area
				order = append(order, k)
			}
			area.Attempts++
			if d.IsCorrect {
				area.Correct++
			} else {
				area.Incorrect++
			}
			area.AverageTimeTaken += (float64(d.TimeTaken) - area.AverageTimeTaken) / float64(area.Attempts)
		}
	}

	out := []WeakArea{}
	for _, k := range order {
		area := byQuestion[k]
		area.SuccessRate = round2(float64(area.Correct) / float64(area.Attempts) * 100)
		area.AverageTimeTaken = round2(area.AverageTimeTaken)
		if area.SuccessRate < 50 {
			out = append(out, *area)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SuccessRate < out[j].SuccessRate
	})
	return out
}

// BuildDashboard summarizes a user's whole history: overall totals, the
// five strongest topics, and the ten most recent attempts. An empty
// history yields a zero-valued dashboard.
func BuildDashboard(rows []resultRepo.AttemptRow) Dashboard {
	dash := Dashboard{
		TopTopics:      []TopicPerformance{},
		RecentAttempts: []RecentAttempt{},
	}
	if len(rows) == 0 {
		return dash
	}

	for _, row := range rows {
		dash.TotalAttempts++
		dash.TotalQuestionsAnswered += row.CorrectAnswerCount + row.WrongAnswerCount
		dash.TotalCorrectAnswers += row.CorrectAnswerCount
	}
	if dash.TotalQuestionsAnswered > 0 {
		dash.OverallAverageScore = round2(
			float64(dash.TotalCorrectAnswers) / float64(dash.TotalQuestionsAnswered) * 100)
	}

	topics := BuildTopicPerformance(rows)
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].AverageScore > topics[j].AverageScore
	})
	if len(topics) > 5 {
		topics = topics[:5]
	}
	dash.TopTopics = topics

	// rows arrive oldest first; walk backwards for the latest ten.
	for i := len(rows) - 1; i >= 0 && len(dash.RecentAttempts) < 10; i-- {
		row := rows[i]
		dash.RecentAttempts = append(dash.RecentAttempts, RecentAttempt{
			Topic:       row.Topic,
			Score:       round2(attemptScore(row.CorrectAnswerCount, row.WrongAnswerCount)),
			TimeTaken:   row.TotalTimeTaken,
			AttemptedAt: row.CreatedAt,
		})
	}
	return dash
}
