package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"estimator_backend/internal/catalog/domain"
	"estimator_backend/internal/catalog/service"
	"estimator_backend/internal/catalog/transport"
	"estimator_backend/platform/logger"
	"estimator_backend/platform/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubProvider struct {
	err       error
	lastTools domain.Filter
}

func (s *stubProvider) ListToolHire(_ context.Context, f domain.Filter) ([]domain.ToolHireItem, error) {
	s.lastTools = f
	return []domain.ToolHireItem{{
		Key:   "mini-digger",
		Name:  "Mini digger",
		Rates: map[domain.RatePeriod]float64{domain.RateDaily: 180},
	}}, s.err
}

func (s *stubProvider) ListLaborCosts(context.Context, domain.Filter) ([]domain.LaborCost, error) {
	return nil, s.err
}

func (s *stubProvider) ListMaterialCosts(context.Context, domain.Filter) ([]domain.MaterialCost, error) {
	price := 25.0
	return []domain.MaterialCost{{Name: "Tiles", Unit: "sqm", PriceMidRange: &price}}, s.err
}

func (s *stubProvider) ListBuildingRegulations(context.Context, domain.Filter) ([]domain.BuildingRegulation, error) {
	return nil, s.err
}

func (s *stubProvider) ListRegionalMultipliers(context.Context) (domain.RegionalMultipliers, error) {
	return domain.RegionalMultipliers{}, s.err
}

func newEngine(p *stubProvider) *gin.Engine {
	h := New(service.New(p, logger.Nop()), validator.New())
	engine := gin.New()
	engine.GET("/tools", h.ListTools)
	engine.GET("/materials", h.ListMaterials)
	return engine
}

func TestListToolsPassesFilter(t *testing.T) {
	p := &stubProvider{}
	w := httptest.NewRecorder()
	newEngine(p).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tools?category=Excavation&search=digger", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body transport.ListResponse[transport.ToolResponse]
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 1 || body.Items[0].Rates["daily"] != 180 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if p.lastTools.Category != "excavation" || p.lastTools.Search != "digger" {
		t.Fatalf("expected normalized filter, got %+v", p.lastTools)
	}
}

func TestListMaterialsRejectsUnknownTier(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine(&stubProvider{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/materials?qualityTier=gold", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListToolsColdFailureIsUnavailable(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine(&stubProvider{err: errors.New("down")}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tools", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
