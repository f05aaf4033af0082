package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DukeRupert/felo-pricing/internal"
	"github.com/DukeRupert/felo-pricing/internal/catalog"
	"github.com/DukeRupert/felo-pricing/internal/handler"
	"github.com/DukeRupert/felo-pricing/internal/metrics"
	"github.com/DukeRupert/felo-pricing/internal/middleware"
	"github.com/DukeRupert/felo-pricing/internal/storage"
	"github.com/DukeRupert/felo-pricing/web"
)

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Load and check the plan catalog
	cat, err := catalog.Load(cfg.CatalogVariant)
	if err != nil {
		return fmt.Errorf("catalog load failed: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("catalog %s is invalid: %w", cfg.CatalogVariant, err)
	}
	logger.Info("Catalog ready",
		"variant", cat.Variant(),
		"segments", len(cat.Segments()),
		"currencies", len(cat.Currencies()),
	)

	// Initialize template renderer. TEMPLATES_DIR switches from the embedded
	// templates to files on disk, reloaded per request in development.
	renderer, err := handler.NewRenderer(handler.RendererConfig{
		TemplatesDir: cfg.TemplatesDir,
		FS:           web.TemplateFS(),
		Logger:       logger,
		IsDev:        cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("renderer initialization failed: %w", err)
	}
	logger.Info("Templates loaded", "count", len(renderer.ListTemplates()), "dir", cfg.TemplatesDir)

	// Initialize middleware
	isSecure := !cfg.IsDevelopment()
	securityMw := middleware.NewSecurityHeadersMiddleware(isSecure)
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	metricsAuthMw := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)
	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimitRequests, cfg.RateLimitWindow, logger)
	rateLimitMw := middleware.NewRateLimitMiddleware(limiter, logger)

	// Initialize handlers
	pricingHandler := handler.NewPricingHandler(cat, renderer, logger, cfg.BaseURL)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(web.StaticFS())))

	// Exported pages, when exporting to the local filesystem
	if cfg.StorageProvider == storage.ProviderLocal {
		dist := http.FileServer(http.Dir(cfg.LocalStoragePath))
		mux.Handle("GET /dist/", http.StripPrefix("/dist/", dist))
	}

	// Prometheus scrape endpoint
	if !metricsAuthMw.Enabled() {
		logger.Warn("METRICS_USERNAME and METRICS_PASSWORD are not set; /metrics is unprotected")
	}
	mux.Handle("GET /metrics", metricsAuthMw.Handler(promhttp.Handler()))

	// Pricing pages, partials, JSON and health
	pricingHandler.RegisterRoutes(mux, rateLimitMw.Limit)

	app := middleware.Stack(
		middleware.RequestIDMiddleware,
		metrics.Middleware,
		loggingMw.Handler,
		securityMw.Handler,
	)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           app(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env, "variant", cat.Variant())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a failed listener
	select {
	case <-sigChan:
		logger.Info("Shutdown signal received, initiating graceful shutdown...")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
