package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authRepo "quizprep_backend/internals/features/users/auth/repository"
)

// Indirection so the loop can be exercised without a database.
var deleteExpiredSessions = authRepo.DeleteExpiredSessions

// StartSessionCleanupScheduler periodically prunes expired sessions until ctx
// is cancelled. The interval comes from SESSION_CLEANUP_INTERVAL_HOURS
// (default 24).
func StartSessionCleanupScheduler(ctx context.Context, db *gorm.DB) {
	intervalHours := 24
	if val := os.Getenv("SESSION_CLEANUP_INTERVAL_HOURS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			intervalHours = parsed
		}
	}

	go runSessionCleanup(ctx, db, time.Duration(intervalHours)*time.Hour)
}

func runSessionCleanup(ctx context.Context, db *gorm.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		deleted, err := deleteExpiredSessions(db, time.Now())
		if err != nil {
			log.Printf("[CLEANUP] failed to prune sessions: %v", err)
		} else if deleted > 0 {
			log.Printf("[CLEANUP] pruned %d expired sessions", deleted)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
