package jobs

import (
	"context"
	"log/slog"

	"procserve/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BidExpiryJob periodically rejects pending bids whose negotiation has gone
// idle past the configured TTL. Without it, a recipient could sit in Bidding
// forever on bids nobody will ever act on.
type BidExpiryJob struct {
	handler  commands.ExpireStaleBidsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBidExpiryJob creates the expiry job. The schedule is a standard cron
// expression (or an @every descriptor); the idle TTL lives in the handler.
func NewBidExpiryJob(
	handler commands.ExpireStaleBidsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *BidExpiryJob {
	return &BidExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "bid_expiry_job"),
	}
}

// Start begins the scheduled expiry runs.
func (j *BidExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewExpireStaleBidsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Bid expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Bid expiry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the expiry job.
func (j *BidExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Bid expiry job stopped")
}
