package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpmiddleware "github.com/studyitalypro/landing/internal/http/middleware"
	"github.com/studyitalypro/landing/internal/observability/metrics"
	"github.com/studyitalypro/landing/internal/site"
	"github.com/studyitalypro/landing/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Site               *site.Handler
	MetricsHandler     http.Handler
	HTTPMetrics        *metrics.HTTPMetrics
	CORSAllowedOrigins []string

	// FormLimiter throttles the form POST routes per client IP. Nil disables it.
	FormLimiter *httpmiddleware.RateLimiter
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if cfg.HTTPMetrics != nil {
		r.Use(httpmiddleware.Metrics(cfg.HTTPMetrics))
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}

	throttle := func(next http.Handler) http.Handler { return next }
	if cfg.FormLimiter != nil {
		throttle = cfg.FormLimiter.Middleware
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}
	r.Handle("/static/*", site.StaticHandler("/static/"))

	// Page and HTML form
	r.Get("/", cfg.Site.Index)
	r.Route("/contact", func(contact chi.Router) {
		contact.With(throttle).Post("/", cfg.Site.SubmitForm)
		contact.Post("/dismiss", cfg.Site.DismissForm)
	})

	// JSON form API
	r.Route("/api/contact", func(api chi.Router) {
		api.Use(requireJSON)
		api.Get("/", cfg.Site.GetForm)
		api.With(throttle).Post("/", cfg.Site.SubmitJSON)
		api.With(throttle).Post("/validate", cfg.Site.ValidateJSON)
		api.Patch("/", cfg.Site.ChangeField)
		api.Delete("/success", cfg.Site.DismissJSON)
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
