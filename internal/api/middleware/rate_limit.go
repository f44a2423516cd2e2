package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/courtside-dev/roster-sim/pkg/utils"
)

// RateLimit applies a global token-bucket limit across all clients. League
// simulation endpoints are cheap to spam and expensive to run.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			utils.SendError(c, http.StatusTooManyRequests,
				utils.NewAppError(utils.ErrCodeRateLimited, "Rate limit exceeded"))
			c.Abort()
			return
		}
		c.Next()
	}
}
