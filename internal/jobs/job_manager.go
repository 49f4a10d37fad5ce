package jobs

import (
	"fmt"
	"log/slog"

	"procserve/internal/core/application/usecases/commands"
)

// JobManager coordinates the application's scheduled jobs behind a single
// start/stop interface.
type JobManager struct {
	bidExpiryJob *BidExpiryJob
}

// NewJobManager creates a job manager wiring the expiry handler into its
// schedule.
func NewJobManager(
	expireStaleBidsHandler commands.ExpireStaleBidsCommandHandler,
	expirySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		bidExpiryJob: NewBidExpiryJob(expireStaleBidsHandler, expirySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.bidExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start bid expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.bidExpiryJob.Stop()
}
