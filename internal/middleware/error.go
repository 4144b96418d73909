package middleware

import (
	"errors"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/logger"
)

// ErrorHandler renders the last error attached to the context with c.Error
// when the handler did not write a response itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		WriteError(c, c.Errors.Last().Err)
	}
}

// WriteError writes err as {"error": {"code", "message", "request_id"}}.
// AppErrors keep their status and code; anything else is logged and
// reported as INTERNAL_ERROR.
func WriteError(c *gin.Context, err error) {
	reqID := requestid.Get(c)

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", reqID,
		)
		appErr = apperrors.ErrInternalServer
	} else if appErr.Internal != nil {
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
			"request_id", reqID,
		)
	}

	body := gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if reqID != "" {
		body["request_id"] = reqID
	}
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{"error": body})
}
