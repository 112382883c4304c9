// ABOUTME: Main entry point for the Cultural Search API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cultural-search-api/api"
	"cultural-search-api/api/handlers"
	"cultural-search-api/api/middleware"
	"cultural-search-api/internal/app"
	"cultural-search-api/pkg/config"
	"cultural-search-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	flags := featureflags.NewEnvManager("")
	ctx := featureflags.WithManager(context.Background(), flags)

	logger.Info("Starting Cultural Search API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"database":      cfg.Database.Path,
		"hint_provider": cfg.Hint.Provider,
		"cache_type":    cfg.Cache.Type,
		"flags":         flags.GetAllFlags(),
	})

	a, err := app.New(ctx, cfg, logger, flags)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer a.Close()

	apiConfig := api.APIConfig{
		Logger:      logger,
		CORSOrigins: cfg.Server.CORSOrigins,
	}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		defer limiter.Stop()
		if err := limiter.TrustProxies(cfg.RateLimit.TrustedProxies); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}
		apiConfig.RateLimiter = limiter
	}
	humaAPI, router := api.NewAPI(apiConfig)

	handlers.NewSearchHandler(a.Search).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(a.Search).RegisterRoutes(humaAPI)

	if a.Metrics != nil {
		router.Handle("/metrics", a.Metrics.Handler())
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}
