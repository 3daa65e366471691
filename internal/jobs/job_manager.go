package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob        *OutboxRelayJob
	pendingOrderExpiryJob *PendingOrderExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	publishHandler outboxPublisher,
	expireHandler pendingOrderExpirer,
	pendingOrderTTL time.Duration,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		outboxRelayJob:        NewOutboxRelayJob(publishHandler, DefaultOutboxBatchSize, logger),
		pendingOrderExpiryJob: NewPendingOrderExpiryJob(expireHandler, pendingOrderTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.pendingOrderExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start pending order expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrderExpiryJob.Stop()
	jm.outboxRelayJob.Stop()
}
