package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
)

// RateLimit is a fixed-window limiter over Redis INCR/EXPIRE keyed by client
// IP. It fails open: a Redis error never blocks the request.
func RateLimit(client *redis.Client, maxRequests int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if client == nil {
				return next(c)
			}

			key := fmt.Sprintf("rl:%d:%s", int64(window.Seconds()), c.RealIP())
			ctx := c.Request().Context()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warnf("Rate limiter unavailable, allowing request: %v", err)
				return next(c)
			}
			if count == 1 {
				if err := client.Expire(ctx, key, window); err != nil {
					log.Warnf("Failed to set rate limit window on %s: %v", key, err)
				}
			}

			if count > int64(maxRequests) {
				return c.JSON(http.StatusTooManyRequests,
					map[string]string{"error": msg.GetMessage("app.rate-limited")})
			}
			return next(c)
		}
	}
}
