package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ABuBakar7447/foodvillage-server/entity"
	"github.com/ABuBakar7447/foodvillage-server/pkg/resp"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

type createReviewRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"omitempty,email"`
	Rating  float64 `json:"rating" binding:"gte=0,lte=5"`
	Details string  `json:"details"`
}

// GET /reviews (public)
func (r *ReviewController) List(c *gin.Context) {
	var reviews []entity.Review
	if err := r.DB.Find(&reviews).Error; err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, reviews)
}

// POST /reviews (public)
func (r *ReviewController) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review := entity.Review{Name: req.Name, Email: req.Email, Rating: req.Rating, Details: req.Details}
	if err := r.DB.Create(&review).Error; err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, review)
}
