package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wildquiz/wildquiz-api/internal/api/metrics"
	"github.com/wildquiz/wildquiz-api/internal/ratelimit"
)

// RateLimit gates a route class behind the injected limiter, keyed by client
// address. Every response carries the quota headers; a rejected request gets
// 429 with a Retry-After hint. Limiter failures fail open: the request
// proceeds and the error is logged, so a Redis outage degrades limiting
// rather than taking down login.
func RateLimit(limiter ratelimit.Limiter, class string, policy ratelimit.Policy, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := class + ":" + c.RealIP()

			res, err := limiter.Allow(c.Request().Context(), key, policy)
			if err != nil {
				log.Error().Err(err).Str("class", class).Msg("rate limiter unavailable")
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed {
				retryAfter := int(res.RetryAfter(time.Now()).Seconds()) + 1
				h.Set("Retry-After", strconv.Itoa(retryAfter))
				metrics.RateLimitedTotal.WithLabelValues(class).Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "too many requests",
				})
			}

			return next(c)
		}
	}
}
