package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
)

const rateLimitWindow = time.Minute

// RateLimit allows limit requests per client IP and route per minute,
// counted in Redis. A nil client disables limiting, and Redis failures
// let the request through.
func RateLimit(rdb *redis.Client, limit int, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		window := time.Now().Unix() / int64(rateLimitWindow.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%s:%d", c.FullPath(), c.ClientIP(), window)

		ctx := c.Request.Context()
		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.WithError(err).Warn("rate limiter unavailable")
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, rateLimitWindow)
		}

		if count > int64(limit) {
			c.Header("Retry-After", fmt.Sprint(int(rateLimitWindow.Seconds())))
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Too many requests. Please slow down.")
			return
		}

		c.Next()
	}
}
