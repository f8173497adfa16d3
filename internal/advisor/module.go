// Package advisor provides the equipment advisor module.
package advisor

import (
	"estimator_backend/internal/advisor/handler"
	"estimator_backend/internal/advisor/service"
	apphttp "estimator_backend/internal/http"
	"estimator_backend/platform/logger"
	"estimator_backend/platform/validator"
)

// Module is the advisor module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule loads the embedded tool knowledge and creates the module.
func NewModule(tools service.ToolCatalog, val *validator.Validator, log *logger.Logger) (*Module, error) {
	kb, err := service.DefaultKnowledge()
	if err != nil {
		return nil, err
	}
	svc := service.New(kb, tools, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "advisor"
}

// Service returns the service layer.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts advisor routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/advisor")
	group.POST("/classify", m.handler.Classify)
	group.POST("/recommendations", m.handler.Recommend)
}

var _ apphttp.Module = (*Module)(nil)
