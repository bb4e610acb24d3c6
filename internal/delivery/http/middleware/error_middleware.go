package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-pixelco-site/internal/delivery/http/response"
	"go-pixelco-site/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed with c.Error.
// Causes are logged, only AppError messages reach the client.
func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString(RequestIDKey)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				log.ErrorContext(c.Request.Context(), "request failed",
					"status", appErr.Code,
					"path", c.FullPath(),
					"request_id", requestID,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		log.ErrorContext(c.Request.Context(), "internal server error",
			"path", c.FullPath(),
			"request_id", requestID,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
