package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/abdelrhmanQ/shc2/core"
)

// rateLimitMiddleware enforces a fixed per-IP request budget per minute,
// counted in redis so the limit holds across instances. It also serves as
// the duplicate-submission guard for rapid re-posts from the same client.
// When redis is unreachable the request is let through; availability wins
// over throttling here.
func rateLimitMiddleware(rdb *redis.Client, perMinute int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ip := ctx.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			key := "rl:" + ip + ":" + time.Now().Format("200601021504")

			rctx := ctx.Request().Context()
			n, err := rdb.Incr(rctx, key).Result()
			if err != nil {
				return next(ctx)
			}
			if n == 1 {
				rdb.Expire(rctx, key, time.Minute)
			}
			if n > int64(perMinute) {
				return ctx.JSON(http.StatusTooManyRequests, core.Notification{
					Message: "too many requests, slow down",
					Type:    core.NotifyError,
				})
			}
			return next(ctx)
		}
	}
}
