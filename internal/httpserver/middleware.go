package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todoapp/internal/metrics"
	"todoapp/internal/ratelimit"
	"todoapp/internal/util"
)

// AuthMiddleware rejects requests without a valid bearer token and stores
// the verified user id on the context for handlers.
func AuthMiddleware(tokens *util.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := util.ExtractToken(c.Request)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			c.Abort()
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, util.ErrTokenExpired) {
				msg = "token expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"message": msg})
			c.Abort()
			return
		}

		c.Set("user_id", userID)

		c.Next()
	}
}

// RateLimitMiddleware caps attempts per client IP on the credential
// endpoints. A nil limiter disables limiting.
func RateLimitMiddleware(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := c.FullPath() + ":" + c.ClientIP()
		if !limiter.Allow(c.Request.Context(), key) {
			metrics.RateLimitedTotal.Inc()
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "too many attempts, try again later"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// MetricsMiddleware records a counter and latency histogram per request.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			statusLabel(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			route,
		).Observe(float64(time.Since(start).Milliseconds()))
	}
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
