package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "github.com/devkan/FirstAidVox/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends the error envelope. *pkgErrors.HTTPError values keep their own
// status and code; anything else is rendered as an internal error.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = pkgErrors.ErrInternalServer
	}
	c.JSON(httpErr.StatusCode, NewErrorResp(c, httpErr))
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	Error(c, pkgErrors.ErrInternalServer)
}

// Abort sends the error envelope and stops the middleware chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// NewErrorResp builds the envelope for httpErr, picking up the request id set by middleware.
func NewErrorResp(c *gin.Context, httpErr *pkgErrors.HTTPError) ErrorResp {
	return ErrorResp{
		Error: ErrorBody{
			Code:    httpErr.Code,
			Message: httpErr.Message,
			Details: httpErr.Details,
		},
		Timestamp: DateTime(time.Now()),
		RequestID: c.GetString(RequestIDKey),
	}
}
