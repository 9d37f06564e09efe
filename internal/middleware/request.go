package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgErrors "github.com/devkan/FirstAidVox/pkg/errors"
	"github.com/devkan/FirstAidVox/pkg/log"
	"github.com/devkan/FirstAidVox/pkg/response"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLength = 64

// RequestID reuses a sane incoming X-Request-ID or generates one, and stores it
// in the gin context and in the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(response.RequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

// Logger logs one line per request once it has been served.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		path := c.Request.URL.Path

		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, path, status, latency)
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, path, status, latency)
		default:
			m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, path, status, latency)
		}
	}
}

// Recovery turns panics into the internal error envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		response.Abort(c, pkgErrors.ErrInternalServer)
	})
}
