package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/hpowerco/pedidos-app/config"
	"github.com/hpowerco/pedidos-app/database"
	"github.com/hpowerco/pedidos-app/models"
	"github.com/hpowerco/pedidos-app/router"
	"github.com/hpowerco/pedidos-app/services"
	"github.com/hpowerco/pedidos-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	// Keep the connection reachable for the health check handler.
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	redisClient := config.InitRedis()
	menuCache := services.NewMenuCache(redisClient, config.MenuCacheTTL())

	r := router.SetupRouter(db, menuCache)
	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Restaurant{},
		&models.MenuItem{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	if err := database.EnsureIndexes(db); err != nil {
		utils.ErrorLogger.Printf("Error setting up indexes: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
