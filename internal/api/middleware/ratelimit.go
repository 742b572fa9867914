package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelancehub/time-tracking-api/internal/api/metrics"
	"github.com/freelancehub/time-tracking-api/internal/infrastructure/db/redis"
)

// RateLimit rejects callers that exceed the per-IP request budget with 429.
// A Redis failure fails open: availability over strictness for a limiter
// that exists to blunt abuse, not enforce quotas.
func RateLimit(limiter *redis.RateLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, admitting request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, try again later")
			}
			return next(c)
		}
	}
}
