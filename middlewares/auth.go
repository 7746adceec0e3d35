package middlewares

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ABuBakar7447/foodvillage-server/entity"
	"github.com/ABuBakar7447/foodvillage-server/pkg/resp"
	"github.com/ABuBakar7447/foodvillage-server/utils"
)

// RequireAuth checks the bearer token and puts the verified identity into
// the request context. Every protected route starts with this gate.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.AbortUnauthorized(c)
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			// expired and malformed both read as unauthenticated
			resp.AbortUnauthorized(c)
			return
		}

		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Next()
	}
}

// RequireAdmin loads the caller's user record and rejects non-admins.
// Must be registered after RequireAuth; without a verified identity in the
// context it answers 401, never 403.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := utils.CurrentEmail(c)
		if email == "" {
			resp.AbortUnauthorized(c)
			return
		}

		var user entity.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				resp.AbortForbidden(c)
				return
			}
			resp.AbortServerError(c)
			return
		}
		if user.Role != "admin" {
			resp.AbortForbidden(c)
			return
		}

		c.Next()
	}
}
