package httpserver

import (
	"github.com/gin-gonic/gin"

	pkgErrors "github.com/devkan/FirstAidVox/pkg/errors"
	"github.com/devkan/FirstAidVox/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "firstaidvox-api"
)

type componentsResp struct {
	Providers []string `json:"llm_providers"`
	Retrieval string   `json:"retrieval"`
	Places    bool     `json:"places"`
}

type healthResp struct {
	Status     string          `json:"status"`
	Version    string          `json:"version"`
	Service    string          `json:"service"`
	Components *componentsResp `json:"components,omitempty"`
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Reports service identity and which backends are wired
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	providers := srv.components.Providers
	if providers == nil {
		providers = []string{}
	}
	response.OK(c, healthResp{
		Status:  "healthy",
		Version: HealthVersion,
		Service: ServiceName,
		Components: &componentsResp{
			Providers: providers,
			Retrieval: srv.components.Retrieval,
			Places:    srv.components.Places,
		},
	})
}

// readyCheck handles readiness check. Ready once a generation provider is wired.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is ready"
// @Failure 503 {object} response.ErrorResp "No generation provider"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if len(srv.components.Providers) == 0 {
		response.Error(c, pkgErrors.ErrServiceNotReady)
		return
	}
	response.OK(c, healthResp{Status: "ready", Version: HealthVersion, Service: ServiceName})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthResp{Status: "alive", Version: HealthVersion, Service: ServiceName})
}
