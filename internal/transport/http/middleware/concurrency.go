package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "loyalty-club-backend/internal/transport/http/response"
)

// ConcurrencyLimit caps in-flight requests so a burst cannot exhaust the
// database pool. Acquire respects the request context, so a caller that
// gives up stops waiting for a slot.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	slots := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := slots.Acquire(c.Request.Context(), 1); err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeTooMany, "server busy"))
			return
		}
		defer slots.Release(1)
		c.Next()
	}
}
