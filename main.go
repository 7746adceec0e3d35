package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ABuBakar7447/foodvillage-server/configs"
	"github.com/ABuBakar7447/foodvillage-server/middlewares"
	"github.com/ABuBakar7447/foodvillage-server/routes"
	"github.com/ABuBakar7447/foodvillage-server/services"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	if err := configs.SeedAdmin(cfg.AdminEmail); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, configs.DB(), cfg, services.NewStripeGateway(cfg.StripeSecretKey))

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Println("FoodVillage server running at", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("server shutdown:", err)
	}
	if err := configs.CloseDB(); err != nil {
		log.Println("close database:", err)
	}
}
