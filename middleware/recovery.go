package middleware

import (
	"log"
	"net/http"

	"main/utils"

	"github.com/gin-gonic/gin"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic in %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
				utils.TrackError("server", "panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"message": "Internal server error"})
			}
		}()
		c.Next()
	}
}
