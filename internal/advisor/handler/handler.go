package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estimator_backend/internal/advisor/service"
	"estimator_backend/internal/advisor/transport"
	"estimator_backend/platform/httpkit"
	"estimator_backend/platform/validator"
)

// Handler handles HTTP requests for the equipment advisor.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new advisor handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Classify classifies a project description.
// POST /api/v1/advisor/classify
func (h *Handler) Classify(c *gin.Context) {
	var req transport.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, transport.ToClassificationResponse(h.svc.Classify(req)))
}

// Recommend returns equipment advice for a project description.
// POST /api/v1/advisor/recommendations
func (h *Handler) Recommend(c *gin.Context) {
	var req transport.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	advice, err := h.svc.Advise(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToAdviceResponse(advice))
}
