// Package catalog provides the catalog bounded context module.
package catalog

import (
	"estimator_backend/internal/catalog/cache"
	"estimator_backend/internal/catalog/handler"
	"estimator_backend/internal/catalog/repository"
	"estimator_backend/internal/catalog/service"
	apphttp "estimator_backend/internal/http"
	"estimator_backend/platform/config"
	"estimator_backend/platform/logger"
	"estimator_backend/platform/validator"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates the catalog module over provider.
func NewModule(provider repository.Provider, val *validator.Validator, cfg config.CatalogCacheConfig, log *logger.Logger) *Module {
	svc := service.New(provider, log, cache.WithTTL(cfg.GetCatalogCacheTTL()))

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for the estimates and advisor modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/catalog")
	group.GET("/tools", m.handler.ListTools)
	group.GET("/labor", m.handler.ListLabor)
	group.GET("/materials", m.handler.ListMaterials)
	group.GET("/regulations", m.handler.ListRegulations)
	group.GET("/regions", m.handler.ListRegions)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
