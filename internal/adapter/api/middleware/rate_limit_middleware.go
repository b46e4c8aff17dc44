package middleware

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"motionstock/internal/infrastructure/ratelimit"
	"motionstock/pkg/errors"
	"motionstock/pkg/logger"
	"motionstock/pkg/response"
)

// RateLimit rejects requests from a client IP once its bucket for this route
// group is empty. Buckets are keyed by IP and scope.
func RateLimit(limiter *ratelimit.RateLimiter, scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, wait := limiter.Allow(scope + ":" + ip)
			if !allowed {
				logger.Warn("RATE LIMIT: Blocked %s request from IP %s (retry in %v)", scope, ip, wait)
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded"))
			}

			return next(c)
		}
	}
}
