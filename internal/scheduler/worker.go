package scheduler

import (
	"context"
	"fmt"

	"estimator_backend/internal/catalog/cache"
	"estimator_backend/platform/config"
	"estimator_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// InvalidationPublisher broadcasts catalog invalidations to API replicas.
type InvalidationPublisher interface {
	Publish(ctx context.Context, msg cache.InvalidationMessage) error
}

type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	publisher InvalidationPublisher
	log       *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, publisher InvalidationPublisher, log *logger.Logger) (*Worker, error) {
	opt, err := connOpt(cfg)
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 4
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queueName(cfg): 1,
		},
	})

	w := newWorker(publisher, log)
	w.server = server
	return w, nil
}

func newWorker(publisher InvalidationPublisher, log *logger.Logger) *Worker {
	mux := asynq.NewServeMux()
	w := &Worker{
		mux:       mux,
		publisher: publisher,
		log:       log,
	}
	mux.HandleFunc(TaskCatalogRefresh, w.handleCatalogRefresh)
	return w
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleCatalogRefresh(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseCatalogRefreshPayload(task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	msg := cache.InvalidationMessage{Cache: payload.Cache, Keys: payload.Keys}
	if err := w.publisher.Publish(ctx, msg); err != nil {
		return err
	}

	w.log.Info("catalog refresh published",
		"cache", payload.Cache,
		"keys", len(payload.Keys),
		"reason", payload.Reason,
	)
	return nil
}
