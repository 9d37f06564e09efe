package usecase

import (
	"github.com/devkan/FirstAidVox/internal/facility"
	"github.com/devkan/FirstAidVox/internal/facility/repository"
	pkgLog "github.com/devkan/FirstAidVox/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	places repository.PlacesRepository
}

// New creates a new facility UseCase instance.
func New(l pkgLog.Logger, places repository.PlacesRepository) facility.UseCase {
	return &implUseCase{
		l:      l,
		places: places,
	}
}
