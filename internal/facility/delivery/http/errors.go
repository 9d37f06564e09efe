package http

import (
	"errors"
	"net/http"

	"github.com/devkan/FirstAidVox/internal/facility"
	pkgErrors "github.com/devkan/FirstAidVox/pkg/errors"
)

var (
	errInvalidLocation = pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_LOCATION", "Latitude must be within [-90, 90] and longitude within [-180, 180]")
	errInvalidRadius   = pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_RADIUS", "radius_km must be greater than 0 and at most 50")
	errPlacesService   = pkgErrors.NewHTTPError(http.StatusBadGateway, "PLACES_SERVICE_ERROR", "Facility search is temporarily unavailable")
)

// mapError translates facility errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, facility.ErrInvalidCoordinate):
		return errInvalidLocation
	case errors.Is(err, facility.ErrInvalidRadius):
		return errInvalidRadius
	case errors.Is(err, facility.ErrUpstreamService):
		return errPlacesService
	default:
		return pkgErrors.ErrInternalServer
	}
}
