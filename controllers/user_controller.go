package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ABuBakar7447/foodvillage-server/entity"
	"github.com/ABuBakar7447/foodvillage-server/pkg/resp"
	"github.com/ABuBakar7447/foodvillage-server/repository"
)

type UserController struct {
	Users *repository.UserRepository
}

func NewUserController(users *repository.UserRepository) *UserController {
	return &UserController{Users: users}
}

type upsertUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// POST /user — idempotent upsert-by-email, called on first sign-in.
func (u *UserController) Upsert(c *gin.Context) {
	var req upsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, created, err := u.Users.UpsertByEmail(&entity.User{Email: req.Email, Name: req.Name, Role: "guest"})
	if err != nil {
		resp.ServerError(c)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "the user already exists in the database"})
		return
	}
	resp.OK(c, user)
}

// GET /user (auth+admin)
func (u *UserController) List(c *gin.Context) {
	users, err := u.Users.ListAll()
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, users)
}

// GET /user/admin/:email (auth, self or admin)
func (u *UserController) IsAdmin(c *gin.Context) {
	email := c.Param("email")
	if !canAccess(c, u.Users, email) {
		resp.Forbidden(c)
		return
	}

	admin, err := u.Users.IsAdmin(email)
	if err != nil {
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// PATCH /user/admin/:id (auth+admin)
func (u *UserController) GrantAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	modified, err := u.Users.GrantAdminByID(uint(id))
	if err != nil {
		resp.ServerError(c)
		return
	}
	if modified == 0 {
		resp.NotFound(c, "user not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}
