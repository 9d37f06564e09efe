package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	facilityHTTP "github.com/devkan/FirstAidVox/internal/facility/delivery/http"
	"github.com/devkan/FirstAidVox/internal/middleware"
	triageHTTP "github.com/devkan/FirstAidVox/internal/triage/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.middleware)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes(mw)
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.Recovery(), mw.RequestID(), mw.Logger(), mw.CORS())

	ctx := context.Background()
	if srv.environment == EnvironmentProduction {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.middleware.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	triageHTTP.RegisterRoutes(api, triageHTTP.New(srv.l, srv.triageUC, srv.facilityUC, srv.chatLimits), mw)
	srv.l.Infof(ctx, "Triage route registered at POST /api/v1/chat")

	if srv.facilityUC != nil {
		facilityHTTP.RegisterRoutes(api, facilityHTTP.New(srv.l, srv.facilityUC), mw)
		srv.l.Infof(ctx, "Facility route registered at GET /api/v1/facilities")
	} else {
		srv.l.Warnf(ctx, "Places API key not configured, skipping facility routes")
	}

	return nil
}
