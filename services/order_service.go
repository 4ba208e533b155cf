package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hpowerco/pedidos-app/models"
)

// Sentinel errors for order validation and lookup.
var (
	ErrOrderNotFound    = errors.New("pedido no encontrado")
	ErrEmptyItems       = errors.New("el pedido debe tener al menos un item")
	ErrInvalidQuantity  = errors.New("la cantidad debe ser mayor a cero")
	ErrNegativeDelivery = errors.New("el valor del domicilio no puede ser negativo")
	ErrNegativeSubtotal = errors.New("el subtotal no puede ser negativo")
)

// OrderItemInput is one line item of a create/replace request. The subtotal
// comes from the caller; see foodSubtotal.
type OrderItemInput struct {
	UserID     uint  `json:"usuario_id" binding:"required"`
	MenuItemID uint  `json:"menu_item_id" binding:"required"`
	Quantity   int   `json:"cantidad" binding:"required"`
	Subtotal   int64 `json:"subtotal"`
}

// OrderInput is the body of POST /pedidos and PUT /pedidos/:id.
type OrderInput struct {
	RestaurantID  uint             `json:"restaurante_id" binding:"required"`
	ResponsibleID uint             `json:"usuario_responsable_id" binding:"required"`
	DeliveryFee   int64            `json:"valor_domicilio"`
	Items         []OrderItemInput `json:"items"`
}

// OrderService owns the transactional order write path and the denormalized
// order reads. Writes run inside a single gorm transaction so an order header
// and its items are only ever visible together.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

const orderSummaryQuery = `
	SELECT p.id, p.restaurante_id, p.usuario_responsable_id, p.valor_domicilio,
	       p.total_pedido, p.estado, p.fecha_pedido,
	       r.nombre AS restaurante_nombre, u.nombre AS responsable_nombre
	FROM pedidos p
	JOIN restaurantes r ON p.restaurante_id = r.id
	JOIN usuarios u ON p.usuario_responsable_id = u.id`

const orderItemsQuery = `
	SELECT pi.id, pi.pedido_id, pi.usuario_id, pi.menu_item_id, pi.cantidad, pi.subtotal,
	       u.nombre AS usuario_nombre, mi.nombre AS item_nombre, mi.precio AS precio_unitario
	FROM pedido_items pi
	JOIN usuarios u ON pi.usuario_id = u.id
	JOIN menu_items mi ON pi.menu_item_id = mi.id
	WHERE pi.pedido_id = ?
	ORDER BY u.nombre, mi.nombre`

// ListOrders returns all order headers joined with restaurant and
// responsible names, newest first.
func (s *OrderService) ListOrders() ([]models.OrderSummary, error) {
	summaries := make([]models.OrderSummary, 0)
	err := s.DB.Raw(orderSummaryQuery + " ORDER BY p.fecha_pedido DESC").Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetOrderComplete loads one order with its items and the per-participant
// cost breakdown. Returns (nil, nil) when the order does not exist, so
// callers can distinguish absence from a store failure.
func (s *OrderService) GetOrderComplete(orderID uint) (*models.OrderView, error) {
	var summary models.OrderSummary
	res := s.DB.Raw(orderSummaryQuery+" WHERE p.id = ?", orderID).Scan(&summary)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	items := make([]models.OrderItemDetail, 0)
	if err := s.DB.Raw(orderItemsQuery, orderID).Scan(&items).Error; err != nil {
		return nil, err
	}

	return &models.OrderView{
		OrderSummary: summary,
		Items:        items,
		UserCosts:    SplitCosts(items, summary.DeliveryFee),
	}, nil
}

// CreateOrder atomically persists a new order header plus its items and
// returns the complete view. No partial order is ever visible: any failure
// inside the transaction rolls everything back.
func (s *OrderService) CreateOrder(in OrderInput) (*models.OrderView, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	order := models.Order{
		RestaurantID:  in.RestaurantID,
		ResponsibleID: in.ResponsibleID,
		DeliveryFee:   in.DeliveryFee,
		Total:         foodSubtotal(in.Items),
		Status:        "activo",
		OrderedAt:     time.Now(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return insertItems(tx, order.ID, in.Items)
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrderComplete(order.ID)
}

// ReplaceOrder updates the order header and swaps the whole item set in one
// transaction: the old items are deleted and the new ones inserted, or
// nothing changes. Returns ErrOrderNotFound when the id does not exist.
// Concurrent replaces on the same id are not serialized; last commit wins.
func (s *OrderService) ReplaceOrder(orderID uint, in OrderInput) (*models.OrderView, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Order
		if err := tx.First(&existing, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"restaurante_id":         in.RestaurantID,
			"usuario_responsable_id": in.ResponsibleID,
			"valor_domicilio":        in.DeliveryFee,
			"total_pedido":           foodSubtotal(in.Items),
		}
		if err := tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("pedido_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return insertItems(tx, orderID, in.Items)
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrderComplete(orderID)
}

func insertItems(tx *gorm.DB, orderID uint, items []OrderItemInput) error {
	for _, in := range items {
		item := models.OrderItem{
			OrderID:    orderID,
			UserID:     in.UserID,
			MenuItemID: in.MenuItemID,
			Quantity:   in.Quantity,
			Subtotal:   in.Subtotal,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}

// foodSubtotal sums the caller-supplied item subtotals into the persisted
// order total. The API trusts these values instead of recomputing
// precio * cantidad server-side; that trust lives only here, so a hardening
// pass only has to change this function.
func foodSubtotal(items []OrderItemInput) int64 {
	var total int64
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}

func validateInput(in OrderInput) error {
	if len(in.Items) == 0 {
		return ErrEmptyItems
	}
	if in.DeliveryFee < 0 {
		return ErrNegativeDelivery
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if item.Subtotal < 0 {
			return ErrNegativeSubtotal
		}
	}
	return nil
}

// IsValidationError reports whether err is one of the pre-store validation
// errors, which surface as 400 responses instead of generic 500s.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyItems) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrNegativeDelivery) ||
		errors.Is(err, ErrNegativeSubtotal)
}
