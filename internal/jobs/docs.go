// Package jobs provides scheduled background tasks for the intake service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SessionSweeperJob - Runs every minute to purge intake sessions that have
// been idle longer than the configured TTL. The sweeper only runs when a
// positive TTL is configured; with TTL 0 sessions never expire, which is the
// default.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sessionStore, sessionTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
