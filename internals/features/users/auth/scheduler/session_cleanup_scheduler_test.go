package scheduler

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"
)

func TestRunSessionCleanupStopsOnCancel(t *testing.T) {
	old := deleteExpiredSessions
	t.Cleanup(func() { deleteExpiredSessions = old })

	swept := make(chan struct{}, 8)
	deleteExpiredSessions = func(_ *gorm.DB, _ time.Time) (int64, error) {
		select {
		case swept <- struct{}{}:
		default:
		}
		return 0, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runSessionCleanup(ctx, nil, 5*time.Millisecond)
		close(done)
	}()

	// The first sweep runs before the first tick.
	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("cleanup never swept")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop after cancel")
	}
}
