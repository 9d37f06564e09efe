package middleware

import (
	"github.com/devkan/FirstAidVox/pkg/log"
)

// Config holds the settings of the HTTP middleware chain.
type Config struct {
	AllowedOrigins []string
	RequestsPerMin int // 0 disables rate limiting
}

type Middleware struct {
	l              log.Logger
	allowedOrigins []string
	limiter        *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		allowedOrigins: cfg.AllowedOrigins,
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
