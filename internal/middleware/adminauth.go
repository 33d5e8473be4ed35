package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminTokenHeader carries the administrative credential on admin requests.
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth returns a middleware that authorizes administrative mutations
// server-side by comparing the X-Admin-Token header against the configured
// token. Comparison is constant-time.
func AdminAuth(token string, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(AdminTokenHeader)

		if token == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			logger.Warnw("admin authorization rejected",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"client_ip", c.ClientIP(),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "admin token required",
				},
			})
			return
		}

		c.Next()
	}
}
