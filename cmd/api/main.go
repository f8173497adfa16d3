package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estimator_backend/internal/advisor"
	"estimator_backend/internal/catalog"
	"estimator_backend/internal/catalog/cache"
	"estimator_backend/internal/catalog/repository"
	"estimator_backend/internal/estimates"
	apphttp "estimator_backend/internal/http"
	"estimator_backend/internal/http/router"
	"estimator_backend/internal/scheduler"
	"estimator_backend/migrations"
	"estimator_backend/platform/config"
	"estimator_backend/platform/db"
	"estimator_backend/platform/logger"
	"estimator_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, migrations.FS)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	catalogModule := catalog.NewModule(repository.New(pool), val, cfg, log)
	estimatesModule := estimates.NewModule(catalogModule.Service(), val, cfg, log)
	advisorModule, err := advisor.NewModule(catalogModule.Service(), val, log)
	if err != nil {
		log.Error("failed to initialize advisor module", "error", err)
		panic("failed to initialize advisor module: " + err.Error())
	}

	closeInvalidation := startCatalogInvalidation(ctx, cfg, log, catalogModule.Service().Caches()...)
	if closeInvalidation != nil {
		defer closeInvalidation()
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:    cfg,
		Logger:    log,
		Health:    db.NewPoolAdapter(pool),
		Validator: val,
		Modules: []apphttp.Module{
			catalogModule,
			estimatesModule,
			advisorModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// startCatalogInvalidation subscribes the local caches to the shared
// invalidation channel. Without Redis each replica relies on TTL only.
func startCatalogInvalidation(ctx context.Context, cfg *config.Config, log *logger.Logger, targets ...cache.Invalidatable) func() {
	if !cfg.IsRedisEnabled() {
		log.Warn("REDIS_URL not configured; catalog invalidation limited to TTL")
		return nil
	}

	client, err := scheduler.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to initialize redis client", "error", err)
		return nil
	}

	invalidator := cache.NewRedisInvalidator(client, cfg.GetCatalogInvalidationChannel(), log)
	sub, err := invalidator.Subscribe(ctx)
	if err != nil {
		log.Error("failed to subscribe to catalog invalidation", "error", err)
		_ = client.Close()
		return nil
	}
	go sub.Run(ctx, targets...)
	log.Info("catalog invalidation subscribed", "channel", cfg.GetCatalogInvalidationChannel())

	return func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
