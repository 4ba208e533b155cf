package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hpowerco/pedidos-app/services"
	"github.com/hpowerco/pedidos-app/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// GetAllOrders -> GET /api/pedidos, joined with restaurant and responsible
// names, newest first.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Service.ListOrders()
	if err != nil {
		utils.ErrorLogger.Printf("Error listing orders: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error obteniendo pedidos")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderByID -> GET /api/pedidos/:id, full view with breakdown
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	view, err := oc.Service.GetOrderComplete(id)
	if err != nil {
		utils.ErrorLogger.Printf("Error loading order %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, "Error obteniendo pedido")
		return
	}
	if view == nil {
		utils.RespondError(c, http.StatusNotFound, "Pedido no encontrado")
		return
	}

	c.JSON(http.StatusOK, view)
}

// CreateOrder -> POST /api/pedidos. An empty cart is rejected up front; the
// allocation step requires at least one participant.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input services.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos del pedido inválidos")
		return
	}

	view, err := oc.Service.CreateOrder(input)
	if err != nil {
		if services.IsValidationError(err) {
			utils.RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorLogger.Printf("Error creating order: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error creando pedido")
		return
	}

	utils.InfoLogger.Printf("Order %d created: %s food + %s delivery",
		view.ID, utils.FormatCurrency(view.Total), utils.FormatCurrency(view.DeliveryFee))
	c.JSON(http.StatusOK, view)
}

// UpdateOrder -> PUT /api/pedidos/:id. Replaces the header fields and the
// whole item set atomically.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var input services.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos del pedido inválidos")
		return
	}

	view, err := oc.Service.ReplaceOrder(id, input)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Pedido no encontrado")
			return
		}
		if services.IsValidationError(err) {
			utils.RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorLogger.Printf("Error updating order %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, "Error actualizando pedido")
		return
	}

	utils.InfoLogger.Printf("Order %d updated: %s food + %s delivery",
		view.ID, utils.FormatCurrency(view.Total), utils.FormatCurrency(view.DeliveryFee))
	c.JSON(http.StatusOK, view)
}
