package service

import (
	"fmt"
	"testing"

	"quizprep_backend/internals/features/quizzes/mcq/model"
)

func questionSet(n int) model.QuestionList {
	qs := make(model.QuestionList, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, model.Question{
			QuestionID: i,
			Question:   fmt.Sprintf("question %d", i),
			Answer:     "A",
		})
	}
	return qs
}

func TestSampleQuestionsRespectsLimit(t *testing.T) {
	qs := questionSet(100)

	sample := SampleQuestions(qs, 35)
	if len(sample) != 35 {
		t.Errorf("sample size = %d, want 35", len(sample))
	}
}

func TestSampleQuestionsLimitLargerThanSet(t *testing.T) {
	qs := questionSet(5)

	sample := SampleQuestions(qs, 10)
	if len(sample) != 5 {
		t.Errorf("sample size = %d, want 5", len(sample))
	}
}

func TestSampleQuestionsDefaultsLimit(t *testing.T) {
	qs := questionSet(100)

	sample := SampleQuestions(qs, 0)
	if len(sample) != DefaultSampleSize {
		t.Errorf("sample size = %d, want %d", len(sample), DefaultSampleSize)
	}
}

func TestSampleQuestionsNoDuplicates(t *testing.T) {
	qs := questionSet(50)

	sample := SampleQuestions(qs, 50)
	seen := map[int]bool{}
	for _, q := range sample {
		if seen[q.QuestionID] {
			t.Fatalf("question %d sampled twice", q.QuestionID)
		}
		seen[q.QuestionID] = true
	}
}

func TestSampleQuestionsDoesNotMutateInput(t *testing.T) {
	qs := questionSet(20)

	SampleQuestions(qs, 20)
	for i, q := range qs {
		if q.QuestionID != i+1 {
			t.Fatalf("input slice reordered at index %d", i)
		}
	}
}
