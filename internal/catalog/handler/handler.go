package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estimator_backend/internal/catalog/domain"
	"estimator_backend/internal/catalog/service"
	"estimator_backend/internal/catalog/transport"
	"estimator_backend/platform/httpkit"
	"estimator_backend/platform/validator"
)

// Handler handles HTTP requests for catalog.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new catalog handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ListTools lists hireable tools.
// GET /api/v1/catalog/tools
func (h *Handler) ListTools(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	rows, err := h.svc.Tools(c.Request.Context(), filter)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToList(rows, transport.ToToolResponse))
}

// ListLabor lists labor rates.
// GET /api/v1/catalog/labor
func (h *Handler) ListLabor(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	rows, err := h.svc.Labor(c.Request.Context(), filter)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToList(rows, transport.ToLaborResponse))
}

// ListMaterials lists material prices.
// GET /api/v1/catalog/materials
func (h *Handler) ListMaterials(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	rows, err := h.svc.Materials(c.Request.Context(), filter)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToList(rows, transport.ToMaterialResponse))
}

// ListRegulations lists building regulations.
// GET /api/v1/catalog/regulations
func (h *Handler) ListRegulations(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	rows, err := h.svc.Regulations(c.Request.Context(), filter)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToList(rows, transport.ToRegulationResponse))
}

// ListRegions returns the regional multiplier table.
// GET /api/v1/catalog/regions
func (h *Handler) ListRegions(c *gin.Context) {
	table, err := h.svc.Regions(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"regions": table})
}

func (h *Handler) bindFilter(c *gin.Context) (domain.Filter, bool) {
	var req transport.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return domain.Filter{}, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return domain.Filter{}, false
	}
	return domain.Filter{
		Search:      req.Search,
		Category:    req.Category,
		Region:      req.Region,
		QualityTier: domain.QualityTier(req.QualityTier),
	}, true
}
