package mcqs

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"quizprep_backend/internals/features/quizzes/mcq/model"
)

// McqSeed is one question set in the seed file: a catalog key plus its
// full question list.
type McqSeed struct {
	Key       string             `json:"key"`
	Questions model.QuestionList `json:"questions"`
}

func loadSeeds(filePath string) []McqSeed {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("failed to read seed file %s: %v", filePath, err)
	}
	var seeds []McqSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("failed to decode seed file %s: %v", filePath, err)
	}
	return seeds
}

// SeedMcqsFromJSON loads flat question sets, skipping keys that already
// exist.
func SeedMcqsFromJSON(db *gorm.DB, filePath string) {
	seeds := loadSeeds(filePath)

	var existingKeys []string
	if err := db.Model(&model.McqModel{}).Pluck("key", &existingKeys).Error; err != nil {
		log.Fatalf("failed to read existing mcq keys: %v", err)
	}
	existing := make(map[string]bool, len(existingKeys))
	for _, k := range existingKeys {
		existing[k] = true
	}

	var rows []model.McqModel
	for _, s := range seeds {
		if existing[s.Key] {
			continue
		}
		encoded, err := model.EncodeQuestions(s.Questions)
		if err != nil {
			log.Fatalf("failed to encode questions for %s: %v", s.Key, err)
		}
		rows = append(rows, model.McqModel{Key: s.Key, Questions: encoded})
	}

	if len(rows) > 0 {
		if err := db.Create(&rows).Error; err != nil {
			log.Fatalf("failed to insert mcqs: %v", err)
		}
		log.Printf("seeded %d mcq sets from %s", len(rows), filePath)
	}
}

// SeedTopicwiseMcqsFromJSON loads topicwise question sets, skipping keys
// that already exist.
func SeedTopicwiseMcqsFromJSON(db *gorm.DB, filePath string) {
	seeds := loadSeeds(filePath)

	var existingKeys []string
	if err := db.Model(&model.TopicwiseMcqModel{}).Pluck("key", &existingKeys).Error; err != nil {
		log.Fatalf("failed to read existing topicwise keys: %v", err)
	}
	existing := make(map[string]bool, len(existingKeys))
	for _, k := range existingKeys {
		existing[k] = true
	}

	var rows []model.TopicwiseMcqModel
	for _, s := range seeds {
		if existing[s.Key] {
			continue
		}
		encoded, err := model.EncodeQuestions(s.Questions)
		if err != nil {
			log.Fatalf("failed to encode questions for %s: %v", s.Key, err)
		}
		rows = append(rows, model.TopicwiseMcqModel{Key: s.Key, Questions: encoded})
	}

	if len(rows) > 0 {
		if err := db.Create(&rows).Error; err != nil {
			log.Fatalf("failed to insert topicwise mcqs: %v", err)
		}
		log.Printf("seeded %d topicwise sets from %s", len(rows), filePath)
	}
}
