package middleware

import (
	"log/slog"
	"net/http"

	"campo-agenda/internal/handler/httperr"
	"campo-agenda/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			resp, ok := ginErr.Meta.(httperr.Response)
			if !ok {
				continue
			}
			if resp.Status >= http.StatusInternalServerError {
				logger.Error("request failed",
					slog.String("request_id", GetRequestID(c)),
					slog.Int("status", resp.Status),
					slog.Any("stack", errs.ExtractStackLines(ginErr.Err, 12)),
				)
			}
			if !c.Writer.Written() {
				c.JSON(resp.Status, resp)
			}
			return
		}

		if c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
