// ABOUTME: Main entry point for the Markdown Preview API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mdpreview-api/api"
	"mdpreview-api/api/handlers"
	"mdpreview-api/api/middleware"
	"mdpreview-api/core/convert"
	"mdpreview-api/core/interfaces"
	"mdpreview-api/core/session"
	"mdpreview-api/core/upload"
	stdhttp "mdpreview-api/infrastructure/http/standard"
	stdlogger "mdpreview-api/infrastructure/logger/standard"
	"mdpreview-api/infrastructure/storage"
	"mdpreview-api/pkg/config"
	"mdpreview-api/pkg/featureflags"
)

const serviceName = "mdpreview-api"

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

	logger := stdlogger.NewStandardLogger(stdlogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	flags := featureflags.NewEnvManager("FEATURE_")
	ctx := context.Background()

	logger.Info("Starting Markdown Preview API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"cache_type":  cfg.Cache.Type,
		"max_upload":  cfg.Conversion.MaxUploadBytes,
		"session_ttl": cfg.Session.TTL.String(),
		"flags":       flags.GetAllFlags(),
	})

	cache, closeCache := newCache(cfg, logger)
	defer closeCache()

	// Outgoing requests carry the incoming request ID
	httpClient := stdhttp.NewStandardHTTPClientWithTransport(cfg.Server.HTTPTimeout, &middleware.LoggingRoundTripper{
		Logger: logger,
	})

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	convertOpts := convert.Options{MaxBytes: cfg.Conversion.MaxUploadBytes}
	if flags.IsEnabled(ctx, featureflags.ConversionCache) {
		convertOpts.CacheTTL = cfg.Conversion.CacheTTL
	}
	if flags.IsEnabled(ctx, featureflags.UpstreamConversion) {
		convertOpts.UpstreamURL = cfg.Conversion.ConverterURL
	}
	converter := convert.NewService(deps, convertOpts)

	apiConfig := api.APIConfig{Logger: logger}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.Limiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
		defer apiConfig.Limiter.Stop()
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	handlers.NewHealthHandler(serviceName, api.Version).RegisterRoutes(humaAPI)
	handlers.NewRenderHandler().RegisterRoutes(humaAPI)
	handlers.NewConvertHandler(converter, converter.MaxBytes(), flags, logger).RegisterRoutes(humaAPI)

	if flags.IsEnabled(ctx, featureflags.SessionsEnabled) {
		uploads := upload.NewService(converter, converter.MaxBytes(), logger)
		sessionStore := storage.NewCacheSessionStorage(cache)
		sessions := session.NewSessionService(sessionStore, uploads, cfg.Session.TTL, logger)
		handlers.NewSessionHandler(sessions, converter.MaxBytes()).RegisterRoutes(humaAPI)
	}

	// Write timeout leaves room for a slow upstream conversion
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Server.HTTPTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

func init() {
	fmt.Println(`
                 _                         _
  _ __ ___   __| |_ __  _ __ _____   _(_) _____      __
 | '_ ' _ \ / _' | '_ \| '__/ _ \ \ / / |/ _ \ \ /\ / /
 | | | | | | (_| | |_) | | |  __/\ V /| |  __/\ V  V /
 |_| |_| |_|\__,_| .__/|_|  \___| \_/ |_|\___| \_/\_/
                 |_|
	`)
}
