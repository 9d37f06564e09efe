package http

import (
	"github.com/gin-gonic/gin"

	"github.com/devkan/FirstAidVox/pkg/response"
)

// Search godoc
// @Summary     Search nearby facilities
// @Description Returns up to 10 hospitals and pharmacies around a point, nearest first.
// @Tags        Facilities
// @Produce     json
// @Param       latitude  query number true  "Latitude (-90..90)"
// @Param       longitude query number true  "Longitude (-180..180)"
// @Param       radius_km query number false "Search radius in km (0..50], default 10"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.ErrorResp "Invalid location or radius"
// @Failure     429 {object} response.ErrorResp "Rate limited"
// @Failure     502 {object} response.ErrorResp "Places service error"
// @Router      /api/v1/facilities [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}
