package jobs

import (
	"context"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultExpiryBatchSize = 100

type pendingOrderExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) (int, error)
}

// PendingOrderExpiryJob cancels unpaid PENDING orders older than ttl, once a minute.
type PendingOrderExpiryJob struct {
	handler   pendingOrderExpirer
	ttl       time.Duration
	batchSize int
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewPendingOrderExpiryJob(handler pendingOrderExpirer, ttl time.Duration, logger *zap.Logger) *PendingOrderExpiryJob {
	return &PendingOrderExpiryJob{
		handler:   handler,
		ttl:       ttl,
		batchSize: DefaultExpiryBatchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With(zap.String("component", "pending_order_expiry_job")),
	}
}

func (j *PendingOrderExpiryJob) Start() error {
	if _, err := j.cron.AddFunc("0 * * * * *", func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Pending order expiry job started (running every minute)", zap.Duration("ttl", j.ttl))
	return nil
}

func (j *PendingOrderExpiryJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewExpirePendingOrdersCommand(j.ttl, j.batchSize)
	if err != nil {
		j.logger.Error("Pending order expiry job misconfigured", zap.Error(err))
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("Pending order expiry job failed", zap.Int("expired", expired), zap.Error(err))
		return
	}
	if expired > 0 {
		j.logger.Info("Pending orders expired", zap.Int("count", expired))
	}
}

func (j *PendingOrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Pending order expiry job stopped")
}
