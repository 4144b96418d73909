package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nestegg/internal/logger"
)

// JobKeyIndexKey is the context key holding which configured job key matched.
const JobKeyIndexKey = "job_key_index"

// JobsAuthMiddleware guards the scheduler endpoints with the X-API-Key
// header. Several keys may be configured at once so a key can be rotated
// without downtime; blank entries are ignored.
func JobsAuthMiddleware(keys []string) gin.HandlerFunc {
	configured := make([][]byte, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			configured = append(configured, []byte(k))
		}
	}

	return func(c *gin.Context) {
		if len(configured) == 0 {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				gin.H{"error": gin.H{"code": "JOBS_NOT_CONFIGURED", "message": "Job endpoints are not configured"}})
			return
		}

		presented := []byte(c.GetHeader("X-API-Key"))
		matched := -1
		for i, key := range configured {
			// No early exit: every configured key is compared.
			if subtle.ConstantTimeCompare(presented, key) == 1 && matched < 0 {
				matched = i
			}
		}
		if matched < 0 {
			logger.Get().Warnw("rejected job request", "path", c.Request.URL.Path, "ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": gin.H{"code": "INVALID_API_KEY", "message": "Invalid or missing API key"}})
			return
		}

		c.Set(JobKeyIndexKey, matched)
		c.Next()
	}
}
