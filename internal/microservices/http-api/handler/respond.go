package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mangacatalog/internal/microservices/http-api/apperr"
	"mangacatalog/internal/microservices/http-api/middleware"
)

// fail writes err as {"error": true, "msg": ...}. Server errors are logged
// with their cause; the client only sees the generic message.
func fail(c *gin.Context, logger *slog.Logger, err error) {
	appErr := apperr.From(err)
	if appErr.Status >= http.StatusInternalServerError {
		logger.Error("request_failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", middleware.GetRequestID(c),
			"error", err.Error(),
		)
	}
	c.JSON(appErr.Status, appErr.Body())
}

// pathID parses an integer path parameter. Ids with no stored row, zero and
// negatives included, are left for the service to report as not found.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
