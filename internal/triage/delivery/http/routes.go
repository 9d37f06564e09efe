package http

import (
	"github.com/gin-gonic/gin"

	"github.com/devkan/FirstAidVox/internal/middleware"
)

// RegisterRoutes maps the triage endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
}
