package service

import (
	"encoding/json"
	"testing"
	"time"

	"gorm.io/datatypes"

	resultModel "quizprep_backend/internals/features/quizzes/results/model"
	resultRepo "quizprep_backend/internals/features/quizzes/results/repository"
)

func row(topic string, correct, wrong, timeTaken int, at time.Time) resultRepo.AttemptRow {
	return resultRepo.AttemptRow{
		Topic:              topic,
		CorrectAnswerCount: correct,
		WrongAnswerCount:   wrong,
		TotalTimeTaken:     timeTaken,
		CreatedAt:          at,
	}
}

func rowWithDetails(t *testing.T, topic string, correct, wrong int, details []resultModel.QuestionDetail) resultRepo.AttemptRow {
	t.Helper()
	b, err := json.Marshal(details)
	if err != nil {
		t.Fatalf("marshal details: %v", err)
	}
	r := row(topic, correct, wrong, 0, time.Now())
	r.QuestionDetails = datatypes.JSON(b)
	return r
}

func TestBuildTopicPerformancePoolsAnswers(t *testing.T) {
	now := time.Now()
	rows := []resultRepo.AttemptRow{
		row("os", 8, 2, 100, now),
		row("os", 5, 5, 200, now.Add(time.Minute)),
	}

	perf := BuildTopicPerformance(rows)
	if len(perf) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(perf))
	}

	os := perf[0]
	if os.TotalAttempts != 2 {
		t.Errorf("total attempts = %d, want 2", os.TotalAttempts)
	}
	if os.TotalQuestions != 20 || os.TotalCorrect != 13 {
		t.Errorf("questions/correct = %d/%d, want 20/13", os.TotalQuestions, os.TotalCorrect)
	}
	// 13 of 20 pooled, not the mean of 80 and 50.
	if os.AverageScore != 65.00 {
		t.Errorf("average score = %v, want 65.00", os.AverageScore)
	}
	if os.BestScore != 80.00 {
		t.Errorf("best score = %v, want 80.00", os.BestScore)
	}
	if os.WorstScore != 50.00 {
		t.Errorf("worst score = %v, want 50.00", os.WorstScore)
	}
	if os.AverageTimeTaken != 150.00 {
		t.Errorf("average time = %v, want 150.00", os.AverageTimeTaken)
	}
}

func TestBuildTopicPerformanceSingleAttemptBounds(t *testing.T) {
	rows := []resultRepo.AttemptRow{row("dbms", 3, 1, 60, time.Now())}

	perf := BuildTopicPerformance(rows)
	if len(perf) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(perf))
	}
	if perf[0].BestScore != 75.00 || perf[0].WorstScore != 75.00 {
		t.Errorf("best/worst = %v/%v, want 75.00/75.00", perf[0].BestScore, perf[0].WorstScore)
	}
}

func TestBuildProgressKeepsChronologicalOrder(t *testing.T) {
	base := time.Now()
	rows := []resultRepo.AttemptRow{
		row("os", 1, 1, 10, base),
		row("cn", 2, 0, 20, base.Add(time.Hour)),
	}

	progress := BuildProgress(rows)
	if len(progress) != 2 {
		t.Fatalf("expected 2 points, got %d", len(progress))
	}
	if progress[0].Topic != "os" || progress[1].Topic != "cn" {
		t.Errorf("order = %s,%s, want os,cn", progress[0].Topic, progress[1].Topic)
	}
	if progress[0].Score != 50.00 || progress[1].Score != 100.00 {
		t.Errorf("scores = %v,%v, want 50.00,100.00", progress[0].Score, progress[1].Score)
	}
	if progress[0].CorrectAnswers != 1 || progress[0].WrongAnswers != 1 || progress[0].TotalQuestions != 2 {
		t.Errorf("counts = %d/%d/%d, want 1/1/2",
			progress[0].CorrectAnswers, progress[0].WrongAnswers, progress[0].TotalQuestions)
	}
	if progress[1].CorrectAnswers != 2 || progress[1].WrongAnswers != 0 || progress[1].TotalQuestions != 2 {
		t.Errorf("counts = %d/%d/%d, want 2/0/2",
			progress[1].CorrectAnswers, progress[1].WrongAnswers, progress[1].TotalQuestions)
	}
}

func TestFilterRowsByTopic(t *testing.T) {
	base := time.Now()
	rows := []resultRepo.AttemptRow{
		row("os", 1, 1, 10, base),
		row("cn", 2, 0, 20, base.Add(time.Minute)),
		row("os", 3, 1, 30, base.Add(2*time.Minute)),
	}

	filtered := FilterRowsByTopic(rows, "os")
	if len(filtered) != 2 {
		t.Fatalf("filtered %d rows, want 2", len(filtered))
	}
	for _, r := range filtered {
		if r.Topic != "os" {
			t.Errorf("foreign topic %q survived the filter", r.Topic)
		}
	}

	if got := FilterRowsByTopic(rows, ""); len(got) != 3 {
		t.Errorf("empty key filtered to %d rows, want all 3", len(got))
	}
	if got := FilterRowsByTopic(rows, "dbms"); len(got) != 0 {
		t.Errorf("unknown key yielded %d rows, want 0", len(got))
	}
}

func TestBuildWeakAreasFiltersAndSorts(t *testing.T) {
	rows := []resultRepo.AttemptRow{
		rowWithDetails(t, "os", 1, 3, []resultModel.QuestionDetail{
			{QuestionID: 1, Question: "q1", IsCorrect: false, TimeTaken: 10},
			{QuestionID: 2, Question: "q2", IsCorrect: true, TimeTaken: 15},
		}),
		rowWithDetails(t, "os", 1, 3, []resultModel.QuestionDetail{
			{QuestionID: 1, Question: "q1", IsCorrect: false, TimeTaken: 25},
			{QuestionID: 2, Question: "q2", IsCorrect: true, TimeTaken: 15},
		}),
		rowWithDetails(t, "os", 0, 2, []resultModel.QuestionDetail{
			{QuestionID: 1, Question: "q1", IsCorrect: true, TimeTaken: 30},
			{QuestionID: 3, Question: "q3", IsCorrect: false, TimeTaken: 40},
		}),
		// no details, must be skipped
		row("os", 0, 5, 10, time.Now()),
	}

	weak := BuildWeakAreas(rows)

	// q1: 1/3 correct (33.33), q3: 0/1 (0.00). q2 is 100 and must be absent.
	if len(weak) != 2 {
		t.Fatalf("expected 2 weak areas, got %d: %+v", len(weak), weak)
	}
	if weak[0].QuestionID != 3 || weak[0].SuccessRate != 0.00 {
		t.Errorf("weakest = q%d rate %v, want q3 rate 0.00", weak[0].QuestionID, weak[0].SuccessRate)
	}
	if weak[0].Attempts != 1 || weak[0].Correct != 0 || weak[0].Incorrect != 1 {
		t.Errorf("q3 counts = %d/%d/%d, want 1/0/1", weak[0].Attempts, weak[0].Correct, weak[0].Incorrect)
	}
	if weak[0].AverageTimeTaken != 40.00 {
		t.Errorf("q3 average time = %v, want 40.00", weak[0].AverageTimeTaken)
	}
	if weak[1].QuestionID != 1 || weak[1].SuccessRate != 33.33 {
		t.Errorf("second = q%d rate %v, want q1 rate 33.33", weak[1].QuestionID, weak[1].SuccessRate)
	}
	if weak[1].Attempts != 3 || weak[1].Correct != 1 || weak[1].Incorrect != 2 {
		t.Errorf("q1 counts = %d/%d/%d, want 3/1/2", weak[1].Attempts, weak[1].Correct, weak[1].Incorrect)
	}
	// (10+25+30)/3 rounded to 2 decimals
	if weak[1].AverageTimeTaken != 21.67 {
		t.Errorf("q1 average time = %v, want 21.67", weak[1].AverageTimeTaken)
	}
}

func TestBuildDashboardEmptyHistory(t *testing.T) {
	dash := BuildDashboard(nil)

	if dash.TotalAttempts != 0 || dash.TotalQuestionsAnswered != 0 || dash.TotalCorrectAnswers != 0 {
		t.Errorf("totals should be zero, got %+v", dash)
	}
	if dash.OverallAverageScore != 0 {
		t.Errorf("overall average = %v, want 0", dash.OverallAverageScore)
	}
	if dash.TopTopics == nil || len(dash.TopTopics) != 0 {
		t.Errorf("top topics should be empty non-nil, got %v", dash.TopTopics)
	}
	if dash.RecentAttempts == nil || len(dash.RecentAttempts) != 0 {
		t.Errorf("recent attempts should be empty non-nil, got %v", dash.RecentAttempts)
	}
}

func TestBuildDashboardTopTopicsAndRecents(t *testing.T) {
	base := time.Now()
	rows := []resultRepo.AttemptRow{}
	topics := []string{"a", "b", "c", "d", "e", "f"}
	for i, topic := range topics {
		// later topics score higher
		rows = append(rows, row(topic, i, len(topics)-i, 10, base.Add(time.Duration(i)*time.Minute)))
	}
	for i := 0; i < 12; i++ {
		rows = append(rows, row("a", 1, 1, 5, base.Add(time.Hour+time.Duration(i)*time.Minute)))
	}

	dash := BuildDashboard(rows)

	if len(dash.TopTopics) != 5 {
		t.Fatalf("expected 5 top topics, got %d", len(dash.TopTopics))
	}
	for i := 1; i < len(dash.TopTopics); i++ {
		if dash.TopTopics[i].AverageScore > dash.TopTopics[i-1].AverageScore {
			t.Errorf("top topics not sorted descending at %d", i)
		}
	}

	if len(dash.RecentAttempts) != 10 {
		t.Fatalf("expected 10 recent attempts, got %d", len(dash.RecentAttempts))
	}
	for i := 1; i < len(dash.RecentAttempts); i++ {
		if dash.RecentAttempts[i].AttemptedAt.After(dash.RecentAttempts[i-1].AttemptedAt) {
			t.Errorf("recent attempts not newest first at %d", i)
		}
	}
}

func TestAttemptScoreZeroQuestions(t *testing.T) {
	if got := attemptScore(0, 0); got != 0 {
		t.Errorf("attemptScore(0,0) = %v, want 0", got)
	}
}
