// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"estimator_backend/platform/config"
	"estimator_backend/platform/logger"
	"estimator_backend/platform/validator"
)

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the HTTP settings.
	Config config.HTTPConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness/health checks (e.g., DB ping).
	Health HealthChecker
	// Validator is the shared request validator.
	Validator *validator.Validator
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
