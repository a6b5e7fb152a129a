package jobs

import (
	"context"
	"log/slog"
	"time"

	"receipts/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SessionSweeperJob purges intake sessions that have been idle longer than
// the configured TTL. Runs every minute.
type SessionSweeperJob struct {
	sessions ports.SessionStore
	ttl      time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionSweeperJob creates a sweeper for idle intake sessions.
// A TTL of zero or less disables sweeping entirely.
func NewSessionSweeperJob(sessions ports.SessionStore, ttl time.Duration, logger *slog.Logger) *SessionSweeperJob {
	return &SessionSweeperJob{
		sessions: sessions,
		ttl:      ttl,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_sweeper_job"),
	}
}

// Start begins the sweeper to run every minute. With a non-positive TTL the
// job starts as a no-op so sessions never expire.
func (j *SessionSweeperJob) Start() error {
	if j.ttl <= 0 {
		j.logger.InfoContext(context.Background(), "Session sweeper disabled (no TTL configured)")
		return nil
	}

	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().Add(-j.ttl)

		if purged := j.sessions.PurgeIdle(cutoff); purged > 0 {
			j.logger.InfoContext(ctx, "Purged idle intake sessions",
				"count", purged, "ttl", j.ttl.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweeper started (running every minute)",
		"ttl", j.ttl.String())
	return nil
}

// Stop stops the sweeper.
func (j *SessionSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session sweeper stopped")
}
