package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"rokto.app/bloodlink/internal/service"
	"rokto.app/bloodlink/pkg/response"
)

// Idempotency rejects replays of mutating requests that carry an
// Idempotency-Key header. Requests without the header pass through; the
// guard is opt-in for clients that retry on flaky networks.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" || rdb == nil {
			c.Next()
			return
		}

		userID, err := response.GetUserID(c)
		if err != nil {
			response.ResponseError(c, err)
			c.Abort()
			return
		}

		fresh, err := service.ClaimIdempotencyKey(c.Request.Context(), rdb, userID, key, ttl)
		if err != nil {
			response.ResponseError(c, err)
			c.Abort()
			return
		}

		if !fresh {
			c.JSON(http.StatusConflict, gin.H{"error": "duplicate request"})
			c.Abort()
			return
		}

		c.Next()
	}
}
