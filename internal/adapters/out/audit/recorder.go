// Package audit provides the fire-and-forget recorder in front of the
// persistent audit log. A failed append must never change the outcome of the
// mutation that produced it, so failures are logged, buffered in memory, and
// retried on a schedule instead of being returned.
package audit

import (
	"context"
	"log/slog"
	"sync"

	"servicetrack/internal/core/domain/model/audit"
	"servicetrack/internal/core/ports"
)

// Recorder implements the AuditRecorder port over a persistent AuditLog.
// Safe for concurrent use.
type Recorder struct {
	log    ports.AuditLog
	logger *slog.Logger

	mu      sync.Mutex
	pending []audit.Entry
}

// NewRecorder creates a recorder writing through to the given audit log.
func NewRecorder(log ports.AuditLog, logger *slog.Logger) *Recorder {
	return &Recorder{
		log:    log,
		logger: logger.With("component", "audit_recorder"),
	}
}

// Record appends the entry to the audit log. On failure the entry is parked
// in the retry buffer and the failure is logged; the caller never sees it.
func (r *Recorder) Record(ctx context.Context, entry audit.Entry) {
	if err := r.log.Append(ctx, entry); err != nil {
		r.logger.Error("audit append failed, entry buffered for retry",
			"action", entry.Action(),
			"target_id", entry.TargetID().String(),
			"error", err,
		)
		r.mu.Lock()
		r.pending = append(r.pending, entry)
		r.mu.Unlock()
	}
}

// RetryPending drains the retry buffer, re-appending each parked entry.
// Entries that fail again go back to the buffer. Returns how many entries
// were successfully flushed.
func (r *Recorder) RetryPending(ctx context.Context) int {
	r.mu.Lock()
	batch := r.pending
	r.pending = nil
	r.mu.Unlock()

	if len(batch) == 0 {
		return 0
	}

	flushed := 0
	for _, entry := range batch {
		if err := r.log.Append(ctx, entry); err != nil {
			r.logger.Error("audit retry failed, entry kept",
				"action", entry.Action(),
				"target_id", entry.TargetID().String(),
				"error", err,
			)
			r.mu.Lock()
			r.pending = append(r.pending, entry)
			r.mu.Unlock()
			continue
		}
		flushed++
	}

	if flushed > 0 {
		r.logger.Info("audit retry flushed buffered entries", "count", flushed)
	}

	return flushed
}

// PendingCount reports how many entries await retry.
func (r *Recorder) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
