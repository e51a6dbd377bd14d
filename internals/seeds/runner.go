package seeds

import (
	"os"

	"gorm.io/gorm"

	"quizprep_backend/internals/seeds/mcqs"
)

// RunAllSeeds loads the question catalog from the JSON files next to the
// binary. Seeding is idempotent; existing keys are left alone.
func RunAllSeeds(db *gorm.DB) {
	mcqFile := getenv("SEED_MCQS_FILE", "internals/seeds/mcqs/data_mcqs.json")
	topicwiseFile := getenv("SEED_TOPICWISE_MCQS_FILE", "internals/seeds/mcqs/data_topicwise_mcqs.json")

	if _, err := os.Stat(mcqFile); err == nil {
		mcqs.SeedMcqsFromJSON(db, mcqFile)
	}
	if _, err := os.Stat(topicwiseFile); err == nil {
		mcqs.SeedTopicwiseMcqsFromJSON(db, topicwiseFile)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
