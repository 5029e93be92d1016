package middleware

import (
	"log"
	"net/http"
	"strings"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts the token from the Authorization header or the
// token cookie, verifies it and stores the user id in the gin context.
// Rejections carry a generic message; the underlying error is only logged.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := TokenFromRequest(c)
		if tokenString == "" {
			utils.TrackAuthAttempt("failure", "missing_token")
			c.JSON(http.StatusForbidden, gin.H{"message": "You are not signed in"})
			c.Abort()
			return
		}

		if services.IsTokenBlacklisted(tokenString) {
			utils.TrackAuthAttempt("failure", "blacklisted_token")
			c.JSON(http.StatusForbidden, gin.H{"message": "You are not signed in"})
			c.Abort()
			return
		}

		userID, err := services.ValidateToken(tokenString)
		if err != nil {
			log.Printf("Rejected token on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			utils.TrackAuthAttempt("failure", "invalid_token")
			c.JSON(http.StatusForbidden, gin.H{"message": "You are not signed in"})
			c.Abort()
			return
		}

		utils.TrackAuthAttempt("success", "verify")
		c.Set("user_id", userID)
		c.Next()
	}
}

// TokenFromRequest tries the Authorization header first, then the cookie,
// so both deployment variants keep working whatever the canonical transport.
func TokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}

	return ""
}

// CurrentUserID returns the authenticated user id set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}
