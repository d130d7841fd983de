package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/studyitalypro/landing/internal/api/router"
	appconfig "github.com/studyitalypro/landing/internal/config"
	"github.com/studyitalypro/landing/internal/content"
	httpmiddleware "github.com/studyitalypro/landing/internal/http/middleware"
	"github.com/studyitalypro/landing/internal/i18n"
	"github.com/studyitalypro/landing/internal/leads"
	"github.com/studyitalypro/landing/internal/observability/metrics"
	"github.com/studyitalypro/landing/internal/site"
	"github.com/studyitalypro/landing/pkg/logging"
)

func main() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting studyitaly landing site",
		"env", cfg.Env,
		"port", cfg.Port,
		"public_base_url", cfg.PublicBaseURL,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) error {
	handler, cleanup, err := buildApp(cfg, logger, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	defer cleanup()

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return serve(ctx, newServer(handler), ln, cfg.ShutdownTimeout, logger)
}

// buildApp wires the site. cleanup stops background sweeps and timers.
func buildApp(cfg *appconfig.Config, logger *logging.Logger, reg *prometheus.Registry) (http.Handler, func(), error) {
	metricsHandler := setupMetrics(reg)

	tr, err := i18n.Load(cfg.DefaultLocale)
	if err != nil {
		return nil, nil, fmt.Errorf("load translations: %w", err)
	}
	catalog, err := content.NewCatalog(tr, content.DefaultScroller(), time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("build content: %w", err)
	}
	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, nil, err
	}

	sessions := leads.NewSessions(cfg.SessionTTL, leads.Options{
		SubmitDelay:    cfg.SubmitDelay,
		SuccessDisplay: cfg.SuccessDisplay,
		Logger:         logger,
		Recorder:       metrics.NewFormMetrics(reg),
	})
	limiter := httpmiddleware.NewRateLimiter(cfg.FormRateLimit, cfg.FormRateBurst)

	siteHandler := site.NewHandler(site.Options{
		Sessions:      sessions,
		Catalog:       catalog,
		Translator:    tr,
		Renderer:      renderer,
		Logger:        logger,
		SessionCookie: cfg.SessionCookie,
		LocaleCookie:  cfg.LocaleCookie,
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: cfg.SecureCookies,
	})

	r := router.New(&router.Config{
		Logger:             logger,
		Site:               siteHandler,
		MetricsHandler:     metricsHandler,
		HTTPMetrics:        metrics.NewHTTPMetrics(reg),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		FormLimiter:        limiter,
	})

	logger.Info("site ready",
		"locales", tr.Locales(),
		"submit_delay", cfg.SubmitDelay.String(),
		"success_display", cfg.SuccessDisplay.String(),
	)

	cleanup := func() {
		limiter.Close()
		sessions.Close()
	}
	return r, cleanup, nil
}

func setupMetrics(reg *prometheus.Registry) http.Handler {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func newServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// serve runs srv on ln until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration, logger *logging.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
