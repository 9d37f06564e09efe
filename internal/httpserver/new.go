package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devkan/FirstAidVox/internal/facility"
	"github.com/devkan/FirstAidVox/internal/middleware"
	"github.com/devkan/FirstAidVox/internal/triage"
	triageHTTP "github.com/devkan/FirstAidVox/internal/triage/delivery/http"
	"github.com/devkan/FirstAidVox/pkg/log"
)

const (
	EnvironmentProduction = "production"

	defaultRequestTimeout = 30 * time.Second
	shutdownTimeout       = 10 * time.Second
)

// Components reports which backends were wired at startup.
type Components struct {
	Providers []string
	Retrieval string
	Places    bool
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	requestTimeout time.Duration

	middleware middleware.Config
	components Components

	// Domains
	triageUC   triage.UseCase
	facilityUC facility.UseCase
	chatLimits triageHTTP.Limits
}

// Config is the dependency bag passed to New().
type Config struct {
	Port           int
	Mode           string
	Environment    string
	RequestTimeout time.Duration
	TrustedProxies []string

	Middleware middleware.Config
	Components Components

	TriageUC   triage.UseCase
	FacilityUC facility.UseCase // optional
	ChatLimits triageHTTP.Limits
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		requestTimeout: cfg.RequestTimeout,
		middleware:     cfg.Middleware,
		components:     cfg.Components,
		triageUC:       cfg.TriageUC,
		facilityUC:     cfg.FacilityUC,
		chatLimits:     cfg.ChatLimits,
	}
	if srv.requestTimeout <= 0 {
		srv.requestTimeout = defaultRequestTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.triageUC == nil {
		return errors.New("triage use case is required")
	}
	return nil
}
