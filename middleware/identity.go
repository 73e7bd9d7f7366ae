package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhaven/config"
)

const guestIDKey = "guestID"

// GuestIdentityMiddleware requires an X-Guest-ID header on guest endpoints
// and stashes it in the request context. Identity is taken on trust from the
// frontend session layer; this service does not authenticate.
func GuestIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.GetHeader("X-Guest-ID")
		if guestID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-Guest-ID header is required"})
			return
		}
		c.Set(guestIDKey, guestID)
		c.Next()
	}
}

// GuestID returns the guest identity set by GuestIdentityMiddleware.
func GuestID(c *gin.Context) string {
	return c.GetString(guestIDKey)
}

// AdminIdentityMiddleware gates the owner endpoints behind a shared admin
// key. The platform is single-owner, so a static key from config suffices.
func AdminIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")
		if key == "" || key != config.AppConfig.AdminAPIKey {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access denied"})
			return
		}
		c.Next()
	}
}
