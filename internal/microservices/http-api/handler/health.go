package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is anything that can report database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CheckConn handles GET /check-conn.
func CheckConn(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	}
}
