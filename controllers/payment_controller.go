package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ABuBakar7447/foodvillage-server/pkg/resp"
	"github.com/ABuBakar7447/foodvillage-server/repository"
	"github.com/ABuBakar7447/foodvillage-server/services"
	"github.com/ABuBakar7447/foodvillage-server/utils"
)

type PaymentController struct {
	Settlement *services.SettlementService
	Payments   *repository.PaymentRepository
	Users      *repository.UserRepository
}

func NewPaymentController(settlement *services.SettlementService, payments *repository.PaymentRepository, users *repository.UserRepository) *PaymentController {
	return &PaymentController{Settlement: settlement, Payments: payments, Users: users}
}

type createIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// POST /create-payment-intent (public) — Phase A of checkout.
func (p *PaymentController) CreateIntent(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	clientSecret, err := p.Settlement.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPrice) {
			resp.BadRequest(c, "invalid price")
			return
		}
		resp.GatewayError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

type settleRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CartItemIDs []uint  `json:"cartItemId" binding:"required,min=1"`
	MenuItemIDs []uint  `json:"menuItemId"`
}

// POST /payment (auth) — Phase B, called once the client confirms the
// charge. The payer must be the authenticated identity.
func (p *PaymentController) Settle(c *gin.Context) {
	var req settleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Email != utils.CurrentEmail(c) {
		resp.Forbidden(c)
		return
	}

	insert, del, err := p.Settlement.Settle(&services.SettleInput{
		PayerEmail:   req.Email,
		Price:        req.Price,
		CartEntryIDs: req.CartItemIDs,
		MenuItemIDs:  req.MenuItemIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadySettled):
			resp.Conflict(c, "cart entries already settled")
		case errors.Is(err, services.ErrInvalidPrice), errors.Is(err, services.ErrNoCartEntries):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertResult": insert, "result": del})
}

// GET /payment-history?email= (auth, self or admin)
func (p *PaymentController) History(c *gin.Context) {
	email := c.Query("email")
	if !canAccess(c, p.Users, email) {
		resp.Forbidden(c)
		return
	}

	payments, err := p.Payments.ListByPayer(email)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, payments)
}
