package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hpowerco/pedidos-app/controllers"
	"github.com/hpowerco/pedidos-app/middlewares"
	"github.com/hpowerco/pedidos-app/services"
	"github.com/hpowerco/pedidos-app/utils"
)

func SetupRouter(db *gorm.DB, menuCache *services.MenuCache) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP, burst of 50.
	rateLimiter := middlewares.NewRateLimiter(50, 50)
	r.Use(rateLimiter.RateLimit())

	restaurantCtrl := controllers.NewRestaurantController(db, menuCache)
	menuItemCtrl := controllers.NewMenuItemController(db, menuCache)
	userCtrl := controllers.NewUserController(db)
	orderCtrl := controllers.NewOrderController(services.NewOrderService(db))

	// Health check: verifies the DB connection is alive.
	r.GET("/ping", func(c *gin.Context) {
		conn := utils.GetDB()
		if conn == nil {
			utils.RespondError(c, http.StatusInternalServerError, "base de datos no inicializada")
			return
		}
		sqlDB, err := conn.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "base de datos no disponible")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

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
