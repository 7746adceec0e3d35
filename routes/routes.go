package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ABuBakar7447/foodvillage-server/configs"
	"github.com/ABuBakar7447/foodvillage-server/controllers"
	"github.com/ABuBakar7447/foodvillage-server/middlewares"
	"github.com/ABuBakar7447/foodvillage-server/repository"
	"github.com/ABuBakar7447/foodvillage-server/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, gateway services.PaymentGateway) {
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "FoodVillage Server Is Running") })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	payRepo := repository.NewPaymentRepository(db)

	// Services
	settlement := services.NewSettlementService(db, gateway, cartRepo, payRepo)
	stats := services.NewStatsService(userRepo, menuRepo, cartRepo, payRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(cfg.JWTSecret, cfg.JWTTTL)
	userCtrl := controllers.NewUserController(userRepo)
	menuCtrl := controllers.NewMenuController(menuRepo)
	reviewCtrl := controllers.NewReviewController(db)
	cartCtrl := controllers.NewCartController(cartRepo, userRepo)
	payCtrl := controllers.NewPaymentController(settlement, payRepo, userRepo)
	statsCtrl := controllers.NewStatsController(stats, userRepo)

	// Gates; admin always layers after auth, never alone.
	auth := middlewares.RequireAuth(cfg.JWTSecret)
	admin := middlewares.RequireAdmin(db)

	r.POST("/jwt", authCtrl.IssueToken)

	r.POST("/user", userCtrl.Upsert)
	r.GET("/user", auth, admin, userCtrl.List)
	r.GET("/user/admin/:email", auth, userCtrl.IsAdmin)
	r.PATCH("/user/admin/:id", auth, admin, userCtrl.GrantAdmin)

	r.GET("/menuitems", menuCtrl.List)
	r.POST("/menuitems", auth, admin, menuCtrl.Create)
	r.DELETE("/menuitems/:id", auth, admin, menuCtrl.Delete)

	r.GET("/reviews", reviewCtrl.List)
	r.POST("/reviews", reviewCtrl.Create)

	r.POST("/carts", cartCtrl.Add)
	r.GET("/carts", auth, cartCtrl.ListForOwner)
	r.DELETE("/carts/:id", auth, cartCtrl.Remove)

	r.POST("/create-payment-intent", payCtrl.CreateIntent)
	r.POST("/payment", auth, payCtrl.Settle)
	r.GET("/payment-history", auth, payCtrl.History)

	r.GET("/user-dashboard-stats", auth, statsCtrl.UserDashboard)
	r.GET("/admin-dashboard-stats", auth, admin, statsCtrl.AdminDashboard)
	r.GET("/order-states", auth, admin, statsCtrl.OrderStates)
}
