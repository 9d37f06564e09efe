package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/devkan/FirstAidVox/config"
	_ "github.com/devkan/FirstAidVox/docs" // Swagger docs
	"github.com/devkan/FirstAidVox/internal/bootstrap"
	"github.com/devkan/FirstAidVox/internal/httpserver"
	"github.com/devkan/FirstAidVox/internal/middleware"
	triageHTTP "github.com/devkan/FirstAidVox/internal/triage/delivery/http"
	"github.com/devkan/FirstAidVox/pkg/imagecheck"
	"github.com/devkan/FirstAidVox/pkg/log"
)

// @title       FirstAidVox API
// @description Conversational first-aid triage with nearby hospital lookup.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting FirstAidVox API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Generation
	generator, providerNames, err := bootstrap.Generator(ctx, cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	// 4. Retrieval (optional)
	knowledge, retrieval := bootstrap.Knowledge(ctx, cfg, logger)
	logger.Infof(ctx, "Retrieval backend: %s", retrieval)

	// 5. Facilities (optional)
	facilities := bootstrap.Facilities(cfg.Places, logger)
	if facilities == nil {
		logger.Warn(ctx, "GOOGLE_MAPS_API_KEY is missing, hospital lookup disabled")
	}

	// 6. Triage
	triageUC := bootstrap.Triage(cfg, generator, knowledge, logger)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		RequestTimeout: cfg.HTTPServer.RequestTimeout,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.Config{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		},
		Components: httpserver.Components{
			Providers: providerNames,
			Retrieval: retrieval,
			Places:    facilities != nil,
		},
		TriageUC:   triageUC,
		FacilityUC: facilities,
		ChatLimits: triageHTTP.Limits{
			MaxTextLength: cfg.Upload.MaxTextLength,
			Image: imagecheck.Limits{
				MaxBytes:     cfg.Upload.MaxImageSizeMB * 1024 * 1024,
				MaxDimension: cfg.Upload.MaxImageDimension,
			},
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
