package jobs

import (
	"fmt"
	"log/slog"

	auditout "servicetrack/internal/adapters/out/audit"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	auditRetryJob *AuditRetryJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	recorder *auditout.Recorder,
	auditRetrySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		auditRetryJob: NewAuditRetryJob(recorder, auditRetrySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.auditRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start audit retry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.auditRetryJob.Stop()
}
