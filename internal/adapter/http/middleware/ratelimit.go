package middleware

import (
	"strconv"
	"time"

	"coin-launch-gateway/internal/core/ports"
	"coin-launch-gateway/pkg/apperror"
	"coin-launch-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a fixed-window limit.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// RateLimiter limits requests per client IP. If the store fails the request
// is let through and a warning is logged.
func RateLimiter(store ports.RateLimitStore, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		result, err := store.Allow(c.Request.Context(), ip, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("client_ip", ip).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		// Always set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			log.Warn().Str("client_ip", ip).Int64("limit", result.Limit).Msg("launch rate limit exceeded")
			response.AbortWithError(c, apperror.ErrRateLimitExceeded())
			return
		}

		c.Next()
	}
}
