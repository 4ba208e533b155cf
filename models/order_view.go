package models

import (
	"time"
)

// OrderSummary is an order header joined with the restaurant name and the
// responsible participant name, as returned by the order listing.
type OrderSummary struct {
	ID              uint      `gorm:"column:id" json:"id"`
	RestaurantID    uint      `gorm:"column:restaurante_id" json:"restaurante_id"`
	ResponsibleID   uint      `gorm:"column:usuario_responsable_id" json:"usuario_responsable_id"`
	DeliveryFee     int64     `gorm:"column:valor_domicilio" json:"valor_domicilio"`
	Total           int64     `gorm:"column:total_pedido" json:"total_pedido"`
	Status          string    `gorm:"column:estado" json:"estado"`
	OrderedAt       time.Time `gorm:"column:fecha_pedido" json:"fecha_pedido"`
	RestaurantName  string    `gorm:"column:restaurante_nombre" json:"restaurante_nombre"`
	ResponsibleName string    `gorm:"column:responsable_nombre" json:"responsable_nombre"`
}

// OrderItemDetail is an order item joined with the participant name, the
// menu item name, and the unit price captured on the menu row.
type OrderItemDetail struct {
	ID         uint   `gorm:"column:id" json:"id"`
	OrderID    uint   `gorm:"column:pedido_id" json:"pedido_id"`
	UserID     uint   `gorm:"column:usuario_id" json:"usuario_id"`
	MenuItemID uint   `gorm:"column:menu_item_id" json:"menu_item_id"`
	Quantity   int    `gorm:"column:cantidad" json:"cantidad"`
	Subtotal   int64  `gorm:"column:subtotal" json:"subtotal"`
	UserName   string `gorm:"column:usuario_nombre" json:"usuario_nombre"`
	ItemName   string `gorm:"column:item_nombre" json:"item_nombre"`
	UnitPrice  int64  `gorm:"column:precio_unitario" json:"precio_unitario"`
}

// UserCost is the derived cost summary for one participant of an order:
// their items, food subtotal, delivery share, and total owed. Never persisted.
type UserCost struct {
	UserID       uint              `json:"usuario_id"`
	UserName     string            `json:"usuario_nombre"`
	Items        []OrderItemDetail `json:"items"`
	Subtotal     int64             `json:"subtotal"`
	DeliveryCost int64             `json:"costo_domicilio"`
	Total        int64             `json:"total"`
}

// OrderView is the fully denormalized view of one order: header, items, and
// the per-participant cost breakdown.
type OrderView struct {
	OrderSummary
	Items     []OrderItemDetail `json:"items"`
	UserCosts []UserCost        `json:"costos_por_usuario"`
}
