package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chasethilleman/application-tracker-api/internal/delivery/http/response"
	"github.com/chasethilleman/application-tracker-api/pkg/apperror"
	"github.com/chasethilleman/application-tracker-api/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				// Storage failures carry the underlying error; log it
				// server-side, the client only sees the generic message.
				if appErr.Err != nil && logger.Log != nil {
					logger.Log.Error("Request failed", "path", c.FullPath(), "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				if logger.Log != nil {
					logger.Log.Error("Unhandled error", "path", c.FullPath(), "error", err)
				}
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
			}
		}
	}
}
