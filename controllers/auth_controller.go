package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ABuBakar7447/foodvillage-server/pkg/resp"
	"github.com/ABuBakar7447/foodvillage-server/utils"
)

type AuthController struct {
	Secret string
	TTL    time.Duration
}

func NewAuthController(secret string, ttl time.Duration) *AuthController {
	return &AuthController{Secret: secret, TTL: ttl}
}

type tokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// POST /jwt
// Sign-in itself happens in the external identity provider; this endpoint
// just signs the submitted identity claim for one hour.
func (a *AuthController) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, err := utils.GenerateToken(strings.ToLower(req.Email), req.Name, a.Secret, a.TTL)
	if err != nil {
		resp.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
