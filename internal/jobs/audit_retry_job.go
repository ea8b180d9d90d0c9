package jobs

import (
	"context"
	"log/slog"

	auditout "servicetrack/internal/adapters/out/audit"

	"github.com/robfig/cron/v3"
)

// AuditRetryJob periodically drains the audit recorder's retry buffer,
// re-appending entries whose first write failed.
type AuditRetryJob struct {
	recorder *auditout.Recorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAuditRetryJob creates a job that retries buffered audit entries on the
// given cron schedule (with a seconds field, e.g. "0 * * * * *" for every
// minute).
func NewAuditRetryJob(recorder *auditout.Recorder, schedule string, logger *slog.Logger) *AuditRetryJob {
	return &AuditRetryJob{
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "audit_retry_job"),
	}
}

// Start begins the audit retry job on its schedule.
func (j *AuditRetryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if j.recorder.PendingCount() == 0 {
			return
		}

		flushed := j.recorder.RetryPending(ctx)
		if remaining := j.recorder.PendingCount(); remaining > 0 {
			j.logger.WarnContext(ctx, "audit entries still pending after retry",
				"flushed", flushed, "remaining", remaining)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Audit retry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the audit retry job.
func (j *AuditRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Audit retry job stopped")
}
