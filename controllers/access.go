package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ABuBakar7447/foodvillage-server/repository"
	"github.com/ABuBakar7447/foodvillage-server/utils"
)

// canAccess enforces the self-access rule for handlers that take an explicit
// email parameter: the caller must be that user, or an admin.
func canAccess(c *gin.Context, users *repository.UserRepository, email string) bool {
	cur := utils.CurrentEmail(c)
	if cur != "" && cur == email {
		return true
	}
	admin, err := users.IsAdmin(cur)
	return err == nil && admin
}
