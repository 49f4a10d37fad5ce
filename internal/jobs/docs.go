// Package jobs provides scheduled background tasks.
//
// The single job today is BidExpiryJob, which runs on a configurable cron
// schedule and rejects pending bids whose negotiation has been idle longer
// than the stale-bid TTL. Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(expireHandler, cfg.BidExpirySchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Job failures are logged and retried on the next tick; a run that finds
// nothing to expire is a successful no-op.
package jobs
