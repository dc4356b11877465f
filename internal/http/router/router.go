package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"moving-estimate-service/internal/http/handlers"
	"moving-estimate-service/internal/http/middleware"
	"moving-estimate-service/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(logger logx.Logger, base *handlers.Handlers, est *handlers.EstimateHandler, ord *handlers.OrderHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(10 * time.Second))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/estimate", est.Quote)
	r.Get("/prefectures", est.Prefectures)
	r.Post("/orders", ord.Register)

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
