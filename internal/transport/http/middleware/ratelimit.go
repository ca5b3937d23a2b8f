package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	resp "loyalty-club-backend/internal/transport/http/response"
)

// RateLimit applies a single token bucket across all callers. Enough for a
// loyalty backend behind one ingress; per-IP buckets would go here if ever
// exposed directly.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	bucket := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if !bucket.Allow() {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeTooMany, ""))
			return
		}
		c.Next()
	}
}
