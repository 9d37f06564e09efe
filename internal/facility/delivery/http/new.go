package http

import (
	"github.com/devkan/FirstAidVox/internal/facility"
	"github.com/devkan/FirstAidVox/pkg/log"
)

type handler struct {
	l  log.Logger
	uc facility.UseCase
}

// New creates a new HTTP handler for the facility domain.
func New(l log.Logger, uc facility.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
