package apperrors

import (
	"lawlink_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape of every error reply.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err to the client as an ErrorResponse. Non-AppError
// values are wrapped as 500s with the underlying detail hidden from the
// response body.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.Error("server error", "error", appErr.Error(), "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError unwraps err into an *AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
