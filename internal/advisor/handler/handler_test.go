package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"estimator_backend/internal/advisor/service"
	"estimator_backend/internal/advisor/transport"
	"estimator_backend/platform/logger"
	"estimator_backend/platform/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	kb, err := service.DefaultKnowledge()
	if err != nil {
		t.Fatalf("load knowledge: %v", err)
	}
	h := New(service.New(kb, nil, logger.Nop()), validator.New())
	engine := gin.New()
	engine.POST("/classify", h.Classify)
	engine.POST("/recommendations", h.Recommend)
	return engine
}

func post(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestClassifyEndpoint(t *testing.T) {
	w := post(newEngine(t), "/classify", `{"query":"need to dig a garden foundation for a pool"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp transport.ClassificationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ProjectType != "excavation" || resp.Scale != "medium" || resp.Location != "UK" {
		t.Fatalf("unexpected classification %+v", resp)
	}
}

func TestClassifyRejectsBlankQuery(t *testing.T) {
	w := post(newEngine(t), "/classify", `{"query":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRecommendRejectsUnknownTimeline(t *testing.T) {
	w := post(newEngine(t), "/recommendations", `{"query":"dig","details":{"timeline":"forever"}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRecommendEndpoint(t *testing.T) {
	w := post(newEngine(t), "/recommendations", `{"query":"demolish the garage","details":{"timeline":"short"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp transport.AdviceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Recommendations) == 0 || resp.Recommendations[0].Priority != "primary" {
		t.Fatalf("expected a primary recommendation, got %+v", resp.Recommendations)
	}
	for _, pa := range resp.PurchaseAdvice {
		if pa.Recommendation != "rent" {
			t.Fatalf("expected rent for short job, got %+v", pa)
		}
	}
}
