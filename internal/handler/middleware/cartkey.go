package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CartKeyHeader identifies the caller's cart across requests. Clients
	// without one get a fresh key minted and echoed back, so the very first
	// request already lands in a stable cart.
	CartKeyHeader = "X-Cart-Key"

	ctxCartKey = "cart_key"
)

func CartKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(CartKeyHeader)
		if key == "" {
			key = uuid.NewString()
		}

		c.Set(ctxCartKey, key)
		c.Header(CartKeyHeader, key)
		c.Next()
	}
}

func GetCartKey(c *gin.Context) string {
	if key, exists := c.Get(ctxCartKey); exists {
		if s, ok := key.(string); ok {
			return s
		}
	}
	return ""
}
