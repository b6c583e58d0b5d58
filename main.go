package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/trevin-livele/doll-wigs/checkout"
	"github.com/trevin-livele/doll-wigs/config"
	orderControllers "github.com/trevin-livele/doll-wigs/controllers/order"
	"github.com/trevin-livele/doll-wigs/models"
	"github.com/trevin-livele/doll-wigs/repository"
	"github.com/trevin-livele/doll-wigs/routes"
	"github.com/trevin-livele/doll-wigs/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db := initDatabase(cfg, logger)

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Product{},
		&models.Category{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		logger.Fatal("automigrate failed", zap.Error(err))
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	carts := repository.NewCartStore(db)
	wishlists := repository.NewWishlistStore(db)
	orders := repository.NewOrderStore(db)
	products := repository.NewProductStore(db)
	categories := repository.NewCategoryStore(db)
	profiles := repository.NewProfileStore(db)

	hub := orderControllers.NewHub(logger)
	orderService := services.NewOrderService(carts, orders, hub, logger)
	lifecycle := services.NewLifecycleService(orders, hub, logger)

	routes.SetupRoutes(r, routes.Deps{
		JWTSecret:     cfg.JWTSecret,
		AdminAPIKey:   cfg.AdminAPIKey,
		Carts:         carts,
		Wishlists:     wishlists,
		Orders:        orders,
		Products:      products,
		Categories:    categories,
		Profiles:      profiles,
		OrderService:  orderService,
		Lifecycle:     lifecycle,
		Hub:           hub,
		CheckoutGuard: checkout.NewGuard(),
	})

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// initDatabase sets up the GORM DB connection.
func initDatabase(cfg config.Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("db connection failed", zap.Error(err))
	}
	return db
}
