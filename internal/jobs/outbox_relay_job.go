package jobs

import (
	"context"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultOutboxBatchSize caps the events relayed per tick.
const DefaultOutboxBatchSize = 100

type outboxPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxEventsCommand) (int, error)
}

// OutboxRelayJob moves committed outbox events to the broker every second.
// A tick still running when the next one fires is skipped.
type OutboxRelayJob struct {
	handler   outboxPublisher
	batchSize int
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewOutboxRelayJob(handler outboxPublisher, batchSize int, logger *zap.Logger) *OutboxRelayJob {
	if batchSize <= 0 {
		batchSize = DefaultOutboxBatchSize
	}
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With(zap.String("component", "outbox_relay_job")),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc("* * * * * *", func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started (running every second)")
	return nil
}

// RunOnce relays one batch and drains further batches while they come back full.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewPublishOutboxEventsCommand(j.batchSize)
	if err != nil {
		j.logger.Error("Outbox relay job misconfigured", zap.Error(err))
		return
	}

	for {
		published, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.Error("Outbox relay job failed", zap.Error(err))
			return
		}
		if published > 0 {
			j.logger.Debug("Outbox events published", zap.Int("count", published))
		}
		if published < j.batchSize {
			return
		}
	}
}

// Stop waits for a running tick to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
