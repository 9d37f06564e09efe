package http

import (
	"github.com/devkan/FirstAidVox/internal/facility"
	"github.com/devkan/FirstAidVox/internal/triage"
	"github.com/devkan/FirstAidVox/pkg/imagecheck"
	"github.com/devkan/FirstAidVox/pkg/log"
)

// Limits bounds what a chat request may carry.
type Limits struct {
	MaxTextLength int
	MaxHistory    int
	Image         imagecheck.Limits
}

const (
	defaultMaxTextLength = 2000
	defaultMaxHistory    = 50
)

type handler struct {
	l          log.Logger
	uc         triage.UseCase
	facilities facility.UseCase
	limits     Limits
}

// New creates a new HTTP handler for the triage domain. facilities may be nil,
// in which case triggered lookups are reported but not executed.
func New(l log.Logger, uc triage.UseCase, facilities facility.UseCase, limits Limits) *handler {
	if limits.MaxTextLength <= 0 {
		limits.MaxTextLength = defaultMaxTextLength
	}
	if limits.MaxHistory <= 0 {
		limits.MaxHistory = defaultMaxHistory
	}
	return &handler{
		l:          l,
		uc:         uc,
		facilities: facilities,
		limits:     limits,
	}
}
