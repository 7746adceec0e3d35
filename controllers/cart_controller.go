package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ABuBakar7447/foodvillage-server/entity"
	"github.com/ABuBakar7447/foodvillage-server/pkg/resp"
	"github.com/ABuBakar7447/foodvillage-server/repository"
	"github.com/ABuBakar7447/foodvillage-server/utils"
)

type CartController struct {
	Carts *repository.CartRepository
	Users *repository.UserRepository
}

func NewCartController(carts *repository.CartRepository, users *repository.UserRepository) *CartController {
	return &CartController{Carts: carts, Users: users}
}

type addCartEntryRequest struct {
	Email      string   `json:"email" binding:"required,email"`
	MenuItemID uint     `json:"menuItemId" binding:"required"`
	Name       string   `json:"name"`
	Image      string   `json:"image"`
	Price      *float64 `json:"price" binding:"required,gte=0"`
}

// POST /carts (public)
func (ct *CartController) Add(c *gin.Context) {
	var req addCartEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	entry := entity.CartEntry{
		OwnerEmail: req.Email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      *req.Price,
	}
	if err := ct.Carts.Create(&entry); err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, entry)
}

// GET /carts?email= (auth, self or admin)
func (ct *CartController) ListForOwner(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		resp.OK(c, []entity.CartEntry{})
		return
	}
	if !canAccess(c, ct.Users, email) {
		resp.Forbidden(c)
		return
	}

	entries, err := ct.Carts.ListByOwner(email)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, entries)
}

// DELETE /carts/:id (auth, owner or admin)
func (ct *CartController) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cart entry id")
		return
	}

	entry, err := ct.Carts.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cart entry not found")
			return
		}
		resp.ServerError(c)
		return
	}

	if entry.OwnerEmail != utils.CurrentEmail(c) {
		admin, err := ct.Users.IsAdmin(utils.CurrentEmail(c))
		if err != nil {
			resp.ServerError(c)
			return
		}
		if !admin {
			resp.Forbidden(c)
			return
		}
	}

	deleted, err := ct.Carts.DeleteByID(uint(id))
	if err != nil {
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
