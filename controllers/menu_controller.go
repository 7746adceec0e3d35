package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ABuBakar7447/foodvillage-server/entity"
	"github.com/ABuBakar7447/foodvillage-server/pkg/resp"
	"github.com/ABuBakar7447/foodvillage-server/repository"
)

type MenuController struct {
	Menu *repository.MenuRepository
}

func NewMenuController(menu *repository.MenuRepository) *MenuController {
	return &MenuController{Menu: menu}
}

type createMenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

// GET /menuitems (public)
func (m *MenuController) List(c *gin.Context) {
	items, err := m.Menu.List()
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, items)
}

// POST /menuitems (auth+admin)
func (m *MenuController) Create(c *gin.Context) {
	var req createMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       *req.Price,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := m.Menu.Create(&item); err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, item)
}

// DELETE /menuitems/:id (auth+admin)
func (m *MenuController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	deleted, err := m.Menu.DeleteByID(uint(id))
	if err != nil {
		resp.ServerError(c)
		return
	}
	if deleted == 0 {
		resp.NotFound(c, "menu item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
