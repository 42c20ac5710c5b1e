package workers

import (
	"context"
	"time"

	"lawlink_backend/internal/logger"
	"lawlink_backend/internal/services"
)

// CompletionWorker is the reconciliation sweep: every interval it forces
// Upcoming consultations whose date has passed into Completed, so missed
// manual completions do not leave stale bookings behind.
type CompletionWorker struct {
	consultations services.ConsultationService
	interval      time.Duration
}

func NewCompletionWorker(consultations services.ConsultationService, interval time.Duration) *CompletionWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &CompletionWorker{
		consultations: consultations,
		interval:      interval,
	}
}

// Start runs the sweep loop until the context is cancelled. One sweep runs
// immediately on startup so a restarted server catches up right away.
func (w *CompletionWorker) Start(ctx context.Context) {
	go func() {
		w.sweep()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("completion worker stopped")
				return
			case <-ticker.C:
				w.sweep()
			}
		}
	}()
}

func (w *CompletionWorker) sweep() {
	count, err := w.consultations.CompleteOverdue(time.Now())
	logger.WorkerLog("completion", "sweep overdue consultations", err)
	if err == nil && count > 0 {
		logger.Info("auto-completed overdue consultations", "count", count)
	}
}
