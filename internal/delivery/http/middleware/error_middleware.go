package middleware

import (
	"errors"
	"net/http"

	"ats-backend/internal/delivery/http/response"
	"ats-backend/pkg/apperror"
	"ats-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the gin context into the envelope
// response. Unexpected errors are logged server-side and replaced with a
// generic message so internals never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		logger.Log.Error("unhandled error", "error", err, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
