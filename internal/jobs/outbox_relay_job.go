package jobs

import (
	"context"

	"salesdelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type relayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob drains the outbox on a cron schedule (with seconds).
type OutboxRelayJob struct {
	handler   relayHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewOutboxRelayJob(handler relayHandler, schedule string, batchSize int, logger *zap.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With(zap.String("component", "outbox_relay_job")),
	}
}

// Start validates the batch size and schedule, then starts the cron.
func (j *OutboxRelayJob) Start() error {
	if _, err := commands.NewRelayOutboxCommand(j.batchSize); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("outbox relay job started",
		zap.String("schedule", j.schedule),
		zap.Int("batch_size", j.batchSize),
	)
	return nil
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("outbox relay job stopped")
}

func (j *OutboxRelayJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.Error("invalid relay command", zap.Error(err))
		return
	}

	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("outbox relay failed", zap.Int("published", published), zap.Error(err))
		return
	}

	if published > 0 {
		j.logger.Info("outbox messages published", zap.Int("count", published))
	}
}
