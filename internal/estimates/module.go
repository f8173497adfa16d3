// Package estimates provides the cost estimation module.
package estimates

import (
	"estimator_backend/internal/estimates/handler"
	"estimator_backend/internal/estimates/service"
	apphttp "estimator_backend/internal/http"
	"estimator_backend/platform/config"
	"estimator_backend/platform/logger"
	"estimator_backend/platform/validator"
)

// Module is the estimates module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates the estimates module.
func NewModule(catalog service.CatalogReader, val *validator.Validator, cfg config.EstimateDefaultsConfig, log *logger.Logger) *Module {
	svc := service.New(catalog, cfg, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "estimates"
}

// Service returns the service layer.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts estimate routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/estimates", m.handler.Create)
}

var _ apphttp.Module = (*Module)(nil)
