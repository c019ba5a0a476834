package middleware

import (
	"log"
	"net/http"

	"mindconnect/internal/domain"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the standard 500 error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[panic] %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
			"code":  domain.CodeServerError,
		})
	})
}
