package http

import (
	"errors"
	"net/http"

	"github.com/devkan/FirstAidVox/internal/triage"
	pkgErrors "github.com/devkan/FirstAidVox/pkg/errors"
	"github.com/devkan/FirstAidVox/pkg/imagecheck"
)

var (
	errEmptyText       = pkgErrors.NewHTTPError(http.StatusBadRequest, "EMPTY_TEXT", "Text cannot be empty")
	errTextTooLong     = pkgErrors.NewHTTPError(http.StatusBadRequest, "TEXT_TOO_LONG", "Text is too long")
	errUnsafeText      = pkgErrors.NewHTTPError(http.StatusBadRequest, "UNSAFE_TEXT_CONTENT", "Text contains disallowed content")
	errInvalidLocation = pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_LOCATION", "Latitude and longitude must be provided together and be within range")
	errInvalidHistory  = pkgErrors.NewHTTPError(http.StatusBadRequest, "VALIDATION_ERROR", "history must be a JSON array of {role, content} with role user or assistant")

	errImageTooLarge        = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "Image is too large")
	errUnsupportedFormat    = pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, "UNSUPPORTED_FORMAT", "Only JPEG, PNG and WebP images are supported")
	errCorruptedImage       = pkgErrors.NewHTTPError(http.StatusBadRequest, "CORRUPTED_IMAGE", "Image could not be decoded")
	errDimensionsTooLarge   = pkgErrors.NewHTTPError(http.StatusBadRequest, "DIMENSIONS_TOO_LARGE", "Image dimensions are too large")
	errAIServiceTimeout     = pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "AI_SERVICE_TIMEOUT", "The AI service took too long to respond")
	errAIServiceUnavailable = pkgErrors.NewHTTPError(http.StatusBadGateway, "AI_SERVICE_ERROR", "The AI service is temporarily unavailable")
)

// mapImageError translates image validation errors into HTTP errors.
func mapImageError(err error) error {
	switch {
	case errors.Is(err, imagecheck.ErrTooLarge):
		return errImageTooLarge
	case errors.Is(err, imagecheck.ErrUnsupportedFormat):
		return errUnsupportedFormat
	case errors.Is(err, imagecheck.ErrDimensionsTooLarge):
		return errDimensionsTooLarge
	default:
		return errCorruptedImage
	}
}

// mapError translates triage errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, triage.ErrInvalidInput):
		return errEmptyText
	case errors.Is(err, triage.ErrInvalidLocation):
		return errInvalidLocation
	case errors.Is(err, triage.ErrUpstreamTimeout):
		return errAIServiceTimeout
	case errors.Is(err, triage.ErrUpstreamService):
		return errAIServiceUnavailable
	default:
		return pkgErrors.ErrInternalServer
	}
}
