// Package jobs provides scheduled background tasks for the service order
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AuditRetryJob - Drains the audit recorder's in-memory retry buffer on a
// configurable schedule, re-appending entries whose original write failed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(recorder, cfg.AuditRetrySchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Entries that fail again during a retry run stay in the buffer for the next
// run; the job logs a warning with the remaining count but never gives up on
// an entry while the process lives.
package jobs
