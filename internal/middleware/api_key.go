package middleware

import (
	"crypto/subtle"
	"net/http"

	"aguanueva/internal/apierror"

	"github.com/gin-gonic/gin"
)

// APIKey checks the static x-api-key header the frontend sends. When no key
// is configured the check is disabled, so existing deployments that never
// validated the header keep working unchanged.
func APIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		sent := c.GetHeader("x-api-key")
		if subtle.ConstantTimeCompare([]byte(sent), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Clave de API invalida"))
			return
		}
		c.Next()
	}
}
