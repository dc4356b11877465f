package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"moving-estimate-service/internal/http/handlers"
	"moving-estimate-service/internal/http/router"
	"moving-estimate-service/internal/logx"
)

func TestNew_NotNil(t *testing.T) {
	base := handlers.New(logx.Nop())
	est := &handlers.EstimateHandler{}
	ord := &handlers.OrderHandler{}

	var _ http.Handler = router.New(logx.Nop(), base, est, ord)
}

func TestNew_RoutesPing(t *testing.T) {
	base := handlers.New(logx.Nop())
	mux := router.New(logx.Nop(), base, &handlers.EstimateHandler{}, &handlers.OrderHandler{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from /ping, got %d", rr.Code)
	}
}

func TestNew_UnknownRouteIsJSON404(t *testing.T) {
	base := handlers.New(logx.Nop())
	mux := router.New(logx.Nop(), base, &handlers.EstimateHandler{}, &handlers.OrderHandler{})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON 404, got content type %q", ct)
	}
}

func TestNew_ServesMetrics(t *testing.T) {
	base := handlers.New(logx.Nop())
	mux := router.New(logx.Nop(), base, &handlers.EstimateHandler{}, &handlers.OrderHandler{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rr.Code)
	}
}
