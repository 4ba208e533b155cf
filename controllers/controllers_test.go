package controllers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hpowerco/pedidos-app/models"
	"github.com/hpowerco/pedidos-app/services"
	"github.com/hpowerco/pedidos-app/utils"
)

// setupTestDB opens the shared in-memory SQLite database and migrates the
// schema. Tests create their own rows and assert on the ids they get back.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Restaurant{},
		&models.MenuItem{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// setupTestRouter registers every API route the way router.SetupRouter does,
// without the middleware stack. No redis in tests: the nil cache passes
// everything through to the database.
func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	restaurantCtrl := NewRestaurantController(db, nil)
	menuItemCtrl := NewMenuItemController(db, nil)
	userCtrl := NewUserController(db)
	orderCtrl := NewOrderController(services.NewOrderService(db))

	api := r.Group("/api")
	{
		api.GET("/restaurantes", restaurantCtrl.GetAllRestaurants)
		api.GET("/restaurantes/:id/menu", restaurantCtrl.GetRestaurantMenu)
		api.POST("/restaurantes", restaurantCtrl.CreateRestaurant)
		api.PUT("/restaurantes/:id", restaurantCtrl.UpdateRestaurant)
		api.DELETE("/restaurantes/:id", restaurantCtrl.DeleteRestaurant)

		api.POST("/menu-items", menuItemCtrl.CreateMenuItem)
		api.PUT("/menu-items/:id", menuItemCtrl.UpdateMenuItem)
		api.DELETE("/menu-items/:id", menuItemCtrl.DeleteMenuItem)

		api.GET("/usuarios", userCtrl.GetAllUsers)
		api.POST("/usuarios", userCtrl.CreateUser)
		api.PUT("/usuarios/:id", userCtrl.UpdateUser)
		api.DELETE("/usuarios/:id", userCtrl.DeleteUser)

		api.GET("/pedidos", orderCtrl.GetAllOrders)
		api.GET("/pedidos/:id", orderCtrl.GetOrderByID)
		api.POST("/pedidos", orderCtrl.CreateOrder)
		api.PUT("/pedidos/:id", orderCtrl.UpdateOrder)
	}

	return r
}
