package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apphttp "estimator_backend/internal/http"
	"estimator_backend/platform/config"
	"estimator_backend/platform/logger"
	"estimator_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubHealth struct{ err error }

func (s stubHealth) Ping(context.Context) error { return s.err }

type pingModule struct{}

func (pingModule) Name() string { return "ping" }

func (pingModule) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func newApp(health apphttp.HealthChecker) *apphttp.App {
	return &apphttp.App{
		Config:    &config.Config{CORSOrigins: []string{"http://localhost:4200"}},
		Logger:    logger.Nop(),
		Health:    health,
		Validator: validator.New(),
		Modules:   []apphttp.Module{pingModule{}},
	}
}

func TestHealthReportsDatabaseState(t *testing.T) {
	cases := []struct {
		name   string
		health apphttp.HealthChecker
		status int
	}{
		{"healthy", stubHealth{}, http.StatusOK},
		{"no database", nil, http.StatusOK},
		{"database down", stubHealth{err: errors.New("down")}, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := New(newApp(tc.health))
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestModulesMountUnderV1(t *testing.T) {
	engine := New(newApp(stubHealth{}))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("expected pong, got %d %q", w.Code, w.Body.String())
	}
}
