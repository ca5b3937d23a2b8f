package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "loyalty-club-backend/internal/transport/http/response"
)

// MaxBodyBytes caps request bodies. Registration payloads are small; anything
// near the limit is abuse, not a real profile.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "request body too large"))
		}
	}
}
