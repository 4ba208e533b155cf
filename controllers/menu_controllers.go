package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hpowerco/pedidos-app/models"
	"github.com/hpowerco/pedidos-app/services"
	"github.com/hpowerco/pedidos-app/utils"
)

type MenuItemController struct {
	DB    *gorm.DB
	Cache *services.MenuCache
}

func NewMenuItemController(db *gorm.DB, cache *services.MenuCache) *MenuItemController {
	return &MenuItemController{DB: db, Cache: cache}
}

// CreateMenuItem -> POST /api/menu-items
func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	var req struct {
		Name         string `json:"nombre" binding:"required"`
		Price        int64  `json:"precio"`
		RestaurantID uint   `json:"restaurante_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Nombre y restaurante son obligatorios")
		return
	}
	if req.Price < 0 {
		utils.RespondError(c, http.StatusBadRequest, "El precio no puede ser negativo")
		return
	}

	item := models.MenuItem{
		Name:         req.Name,
		Price:        req.Price,
		RestaurantID: req.RestaurantID,
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		utils.ErrorLogger.Printf("Error creating menu item: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error creando item del menú")
		return
	}

	mc.Cache.Invalidate(c.Request.Context(), item.RestaurantID)
	c.JSON(http.StatusOK, item)
}

// UpdateMenuItem -> PUT /api/menu-items/:id. Only name and price change;
// items never move between restaurants.
func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var req struct {
		Name  string `json:"nombre" binding:"required"`
		Price int64  `json:"precio"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "El nombre es obligatorio")
		return
	}
	if req.Price < 0 {
		utils.RespondError(c, http.StatusBadRequest, "El precio no puede ser negativo")
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Item del menú no encontrado")
		return
	}

	item.Name = req.Name
	item.Price = req.Price
	if err := mc.DB.Save(&item).Error; err != nil {
		utils.ErrorLogger.Printf("Error updating menu item %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, "Error actualizando item del menú")
		return
	}

	mc.Cache.Invalidate(c.Request.Context(), item.RestaurantID)
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem -> DELETE /api/menu-items/:id
func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Item del menú no encontrado")
		return
	}

	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.ErrorLogger.Printf("Error deleting menu item %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, "Error eliminando item del menú")
		return
	}

	mc.Cache.Invalidate(c.Request.Context(), item.RestaurantID)
	utils.RespondMessage(c, http.StatusOK, "Item del menú eliminado exitosamente")
}
