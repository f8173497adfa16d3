package scheduler

import (
	"context"
	"time"

	"estimator_backend/platform/config"
	"estimator_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// Cron enqueues the periodic catalog refresh.
type Cron struct {
	scheduler *asynq.Scheduler
	cronSpec  string
	queue     string
	log       *logger.Logger
}

func NewCron(cfg config.SchedulerConfig, log *logger.Logger) (*Cron, error) {
	opt, err := connOpt(cfg)
	if err != nil {
		return nil, err
	}

	return &Cron{
		scheduler: asynq.NewScheduler(opt, &asynq.SchedulerOpts{Location: time.UTC}),
		cronSpec:  cfg.GetCatalogRefreshCron(),
		queue:     queueName(cfg),
		log:       log,
	}, nil
}

// Run registers the refresh entry and blocks until ctx is done.
func (c *Cron) Run(ctx context.Context) error {
	task, err := NewCatalogRefreshTask(CatalogRefreshPayload{Reason: "scheduled"})
	if err != nil {
		return err
	}

	entryID, err := c.scheduler.Register(c.cronSpec, task, asynq.Queue(c.queue))
	if err != nil {
		return err
	}
	if err := c.scheduler.Start(); err != nil {
		return err
	}
	c.log.Info("catalog refresh scheduled", "cron", c.cronSpec, "entry_id", entryID)

	<-ctx.Done()
	c.scheduler.Shutdown()
	return nil
}
