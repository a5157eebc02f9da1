package middleware

import "github.com/gin-gonic/gin"

// NoStore keeps proxies from serving a stale snapshot after an invalidation.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
	}
}
