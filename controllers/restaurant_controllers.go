package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hpowerco/pedidos-app/models"
	"github.com/hpowerco/pedidos-app/services"
	"github.com/hpowerco/pedidos-app/utils"
)

type RestaurantController struct {
	DB    *gorm.DB
	Cache *services.MenuCache
}

func NewRestaurantController(db *gorm.DB, cache *services.MenuCache) *RestaurantController {
	return &RestaurantController{DB: db, Cache: cache}
}

// GetAllRestaurants -> GET /api/restaurantes, ordered by name
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	restaurants := make([]models.Restaurant, 0)
	if err := rc.DB.Order("nombre").Find(&restaurants).Error; err != nil {
		utils.ErrorLogger.Printf("Error listing restaurants: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error obteniendo restaurantes")
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurantMenu -> GET /api/restaurantes/:id/menu, ordered by price then
// name. Cache-aside against redis; on a miss the database result is cached.
func (rc *RestaurantController) GetRestaurantMenu(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	if items, ok := rc.Cache.Get(c.Request.Context(), id); ok {
		c.JSON(http.StatusOK, items)
		return
	}

	items := make([]models.MenuItem, 0)
	if err := rc.DB.Where("restaurante_id = ?", id).
		Order("precio, nombre").
		Find(&items).Error; err != nil {
		utils.ErrorLogger.Printf("Error listing menu for restaurant %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, "Error obteniendo menú")
		return
	}

	rc.Cache.Set(c.Request.Context(), id, items)
	c.JSON(http.StatusOK, items)
}

// CreateRestaurant -> POST /api/restaurantes
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req struct {
		Name    string `json:"nombre" binding:"required"`
		Phone   string `json:"telefono"`
		Address string `json:"direccion"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "El nombre es obligatorio")
		return
	}

	restaurant := models.Restaurant{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.ErrorLogger.Printf("Error creating restaurant: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error creando restaurante")
		return
	}

	utils.InfoLogger.Printf("Restaurant created: %s (id=%d)", restaurant.Name, restaurant.ID)
	c.JSON(http.StatusOK, restaurant)
}

// UpdateRestaurant -> PUT /api/restaurantes/:id
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var req struct {
		Name    string `json:"nombre" binding:"required"`
		Phone   string `json:"telefono"`
		Address string `json:"direccion"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "El nombre es obligatorio")
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Restaurante no encontrado")
		return
	}

	restaurant.Name = req.Name
	restaurant.Phone = req.Phone
	restaurant.Address = req.Address
	if err := rc.DB.Save(&restaurant).Error; err != nil {
		utils.ErrorLogger.Printf("Error updating restaurant %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, "Error actualizando restaurante")
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// DeleteRestaurant -> DELETE /api/restaurantes/:id. Menu items go with the
// restaurant, so its cached menu is invalidated too.
func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Restaurante no encontrado")
		return
	}

	if err := rc.DB.Select("MenuItems").Delete(&restaurant).Error; err != nil {
		utils.ErrorLogger.Printf("Error deleting restaurant %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, "Error eliminando restaurante")
		return
	}

	rc.Cache.Invalidate(c.Request.Context(), id)
	utils.InfoLogger.Printf("Restaurant deleted: %s (id=%d)", restaurant.Name, id)
	utils.RespondMessage(c, http.StatusOK, "Restaurante eliminado exitosamente")
}

// parseID converts a path parameter into a record id.
func parseID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
