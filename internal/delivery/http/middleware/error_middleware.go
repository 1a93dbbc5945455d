package middleware

import (
	"errors"
	"net/http"

	"go-agency-backend/internal/delivery/http/response"
	"go-agency-backend/internal/domain"
	"go-agency-backend/pkg/apperror"
	"go-agency-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors attached to the gin context onto JSON responses.
// Validation failures keep their field map; AppErrors keep their status and
// message; anything else becomes a generic 500. Underlying causes are logged
// server-side and never serialized.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var valErr *domain.ValidationError
		if errors.As(err, &valErr) {
			response.FieldErrors(c, http.StatusBadRequest, "Please correct the highlighted fields.", valErr.Fields)
			return
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"path", c.FullPath(),
					"error", appErr.Err.Error(),
				)
			}
			if appErr.Fields != nil {
				response.FieldErrors(c, appErr.Code, appErr.Message, appErr.Fields)
				return
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err.Error())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
