package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheControl sets caching headers on successful GET responses. Content
// documents change rarely so short-lived edge caching is safe.
func CacheControl(maxAge time.Duration) gin.HandlerFunc {
	value := "public, max-age=" + strconv.Itoa(int(maxAge.Seconds()))
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet && c.Writer.Status() == http.StatusOK {
			c.Header("Cache-Control", value)
		}
	}
}

// NoStore disables caching, used on auth and user endpoints.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
