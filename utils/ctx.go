package utils

import "github.com/gin-gonic/gin"

// CurrentEmail returns the verified identity set by the auth middleware,
// or "" when the request never passed it.
func CurrentEmail(c *gin.Context) string {
	if v, ok := c.Get("email"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentName(c *gin.Context) string {
	if v, ok := c.Get("name"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
