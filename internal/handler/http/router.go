package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riseagainX/orm/internal/service"
	"github.com/riseagainX/orm/pkg/health"
	"github.com/riseagainX/orm/pkg/middleware"
)

const defaultRequestTimeout = 30 * time.Second

// RouterConfig carries the transport settings of the router.
type RouterConfig struct {
	ServiceName       string
	RequestTimeout    time.Duration
	CORS              middleware.CORSConfig
	PprofAllowedCIDRs []string
}

// NewRouter creates a chi router with all page content routes registered.
func NewRouter(
	pageService *service.PageService,
	healthHandler *health.Handler,
	cfg RouterConfig,
	logger *slog.Logger,
) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Tracing(cfg.ServiceName))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))
	r.Use(chimw.Compress(5))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	if len(cfg.PprofAllowedCIDRs) > 0 {
		middleware.RegisterPprof(r, cfg.PprofAllowedCIDRs, logger)
	}

	// Page API endpoints
	pageHandler := NewPageHandler(pageService, logger)

	r.Route("/api/v1/pages", func(r chi.Router) {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
		r.Get("/{title}", pageHandler.GetPage)
	})

	return r
}
