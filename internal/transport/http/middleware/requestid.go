package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyRequestID is both the header and the gin context key for the id.
const KeyRequestID = "X-Request-ID"

// RequestID tags every request with a correlation id, honoring one supplied
// by the caller so ids survive proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(KeyRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(KeyRequestID, id)
		c.Writer.Header().Set(KeyRequestID, id)
		c.Next()
	}
}
