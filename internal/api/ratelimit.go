package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jonesrussell/repurposer/internal/logging"
)

const defaultRPS = 100

// RateLimitMiddleware applies a process-wide token bucket to incoming
// requests and rejects the overflow with 429.
func RateLimitMiddleware(rps, burst int, logger logging.Logger) gin.HandlerFunc {
	if rps <= 0 {
		rps = defaultRPS
	}
	if burst <= 0 {
		burst = rps
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			logger.Warn("Request rate limited",
				logging.String("path", c.Request.URL.Path),
				logging.String("client_ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "Too many requests",
				Code:  "RATE_LIMITED",
			})
			return
		}
		c.Next()
	}
}
