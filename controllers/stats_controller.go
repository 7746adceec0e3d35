package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ABuBakar7447/foodvillage-server/pkg/resp"
	"github.com/ABuBakar7447/foodvillage-server/repository"
	"github.com/ABuBakar7447/foodvillage-server/services"
)

type StatsController struct {
	Stats *services.StatsService
	Users *repository.UserRepository
}

func NewStatsController(stats *services.StatsService, users *repository.UserRepository) *StatsController {
	return &StatsController{Stats: stats, Users: users}
}

// GET /admin-dashboard-stats (auth+admin)
func (s *StatsController) AdminDashboard(c *gin.Context) {
	dashboard, err := s.Stats.AdminDashboard()
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, dashboard)
}

// GET /order-states (auth+admin)
func (s *StatsController) OrderStates(c *gin.Context) {
	states, err := s.Stats.OrderStates()
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, states)
}

// GET /user-dashboard-stats?email= (auth, self or admin)
// Returns [cartEntries, payments], the shape the dashboard expects.
func (s *StatsController) UserDashboard(c *gin.Context) {
	email := c.Query("email")
	if !canAccess(c, s.Users, email) {
		resp.Forbidden(c)
		return
	}

	carts, payments, err := s.Stats.UserDashboard(email)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, []any{carts, payments})
}
