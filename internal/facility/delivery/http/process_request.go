package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "github.com/devkan/FirstAidVox/pkg/errors"
)

// processSearchReq binds the facility search query parameters.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.ErrValidation.WithDetails(map[string]any{"reason": err.Error()})
	}
	return req, nil
}
