package scheduler

import (
	"context"
	"errors"
	"testing"

	"estimator_backend/internal/catalog/cache"
	"estimator_backend/platform/logger"

	"github.com/hibiken/asynq"
)

type recordingPublisher struct {
	msgs []cache.InvalidationMessage
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, msg cache.InvalidationMessage) error {
	p.msgs = append(p.msgs, msg)
	return p.err
}

func TestCatalogRefreshPayloadRoundTrip(t *testing.T) {
	task, err := NewCatalogRefreshTask(CatalogRefreshPayload{Cache: "labor", Keys: []string{"|bathroom||"}, Reason: "manual"})
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	if task.Type() != TaskCatalogRefresh {
		t.Fatalf("unexpected task type %s", task.Type())
	}

	payload, err := ParseCatalogRefreshPayload(task)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if payload.Cache != "labor" || len(payload.Keys) != 1 || payload.Reason != "manual" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestParseCatalogRefreshPayloadAcceptsEmptyBody(t *testing.T) {
	payload, err := ParseCatalogRefreshPayload(asynq.NewTask(TaskCatalogRefresh, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Cache != "" || payload.Keys != nil {
		t.Fatalf("expected empty payload, got %+v", payload)
	}
}

func TestHandleCatalogRefreshPublishesInvalidation(t *testing.T) {
	pub := &recordingPublisher{}
	w := newWorker(pub, logger.Nop())

	task, _ := NewCatalogRefreshTask(CatalogRefreshPayload{Cache: "tools"})
	if err := w.mux.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pub.msgs) != 1 || pub.msgs[0].Cache != "tools" {
		t.Fatalf("unexpected published messages %+v", pub.msgs)
	}
}

func TestHandleCatalogRefreshReturnsPublishError(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("redis down")}
	w := newWorker(pub, logger.Nop())

	task, _ := NewCatalogRefreshTask(CatalogRefreshPayload{})
	if err := w.mux.ProcessTask(context.Background(), task); err == nil {
		t.Fatalf("expected publish error to be returned for retry")
	}
}

func TestHandleCatalogRefreshSkipsRetryOnBadPayload(t *testing.T) {
	w := newWorker(&recordingPublisher{}, logger.Nop())
	err := w.mux.ProcessTask(context.Background(), asynq.NewTask(TaskCatalogRefresh, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}

func TestRedisClientOpt(t *testing.T) {
	opt, err := redisClientOpt("redis://:secret@localhost:6380/2", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Addr != "localhost:6380" || opt.Password != "secret" || opt.DB != 2 || opt.TLSConfig != nil {
		t.Fatalf("unexpected options %+v", opt)
	}

	secure, err := redisClientOpt("rediss://cache.internal:6379", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secure.TLSConfig == nil || !secure.TLSConfig.InsecureSkipVerify {
		t.Fatalf("expected insecure TLS config, got %+v", secure.TLSConfig)
	}
}
