package cmd

import "time"

// Config carries everything the composition root needs to wire the
// application. Populated from the environment in main.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr enables the directory listing cache when set; empty
	// disables caching entirely.
	RedisAddr         string
	DirectoryCacheTTL time.Duration

	// Fee schedule, all in cents.
	ProcessServiceFeeCents  int64
	CertifiedMailFeeCents   int64
	RushServiceFeeCents     int64
	RemoteLocationFeeCents  int64
	OrderSurchargeFlatCents int64

	// NegotiationMaxRounds caps counter-offer rounds per bid.
	NegotiationMaxRounds int
	// BidTTL is how long a pending bid may sit without negotiation
	// activity before the expiry job rejects it.
	BidTTL time.Duration
	// BidExpirySchedule is the cron expression driving the expiry job.
	BidExpirySchedule string
}
