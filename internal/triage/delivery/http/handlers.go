package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/devkan/FirstAidVox/internal/facility"
	facilityHTTP "github.com/devkan/FirstAidVox/internal/facility/delivery/http"
	"github.com/devkan/FirstAidVox/internal/triage"
	"github.com/devkan/FirstAidVox/pkg/response"
)

// Chat godoc
// @Summary     Send a triage message
// @Description Runs one turn of the first-aid triage dialogue. Accepts multipart/form-data
// @Description (text, history as a JSON string, latitude, longitude, image file) or JSON
// @Description (text, history, latitude, longitude, base64 image). When the reply reaches the
// @Description final stage and a location was supplied, nearby hospitals are attached.
// @Tags        Triage
// @Accept      json,mpfd
// @Produce     json
// @Param       text      formData string false "User message"
// @Param       history   formData string false "JSON array of {role, content}"
// @Param       latitude  formData number false "Latitude (-90..90)"
// @Param       longitude formData number false "Longitude (-180..180)"
// @Param       image     formData file   false "JPEG, PNG or WebP image"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.ErrorResp "Invalid text, history, location or image"
// @Failure     413 {object} response.ErrorResp "Image too large"
// @Failure     415 {object} response.ErrorResp "Unsupported image format"
// @Failure     429 {object} response.ErrorResp "Rate limited"
// @Failure     502 {object} response.ErrorResp "AI service error"
// @Failure     504 {object} response.ErrorResp "AI service timeout"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Run(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	hospitals := h.lookupFacilities(ctx, output.FunctionCalls)
	response.OK(c, h.newChatResp(output, hospitals, c.GetString(response.RequestIDKey)))
}

// lookupFacilities executes the triggered lookups. Failures are logged and
// produce an empty list so the triage reply still reaches the user.
func (h *handler) lookupFacilities(ctx context.Context, calls []triage.FacilityLookupRequest) []facilityHTTP.FacilityResp {
	if h.facilities == nil || len(calls) == 0 {
		return nil
	}

	var out []facilityHTTP.FacilityResp
	for _, call := range calls {
		res, err := h.facilities.Search(ctx, facility.SearchInput{
			Latitude:  call.Latitude,
			Longitude: call.Longitude,
			RadiusKM:  call.RadiusKM,
		})
		if err != nil {
			h.l.Warnf(ctx, "facilities.Search: %v", err)
			continue
		}
		out = append(out, facilityHTTP.NewFacilityResps(res.Facilities)...)
	}
	return out
}
