package models

import (
	"time"
)

// Order is a single group purchase from one restaurant with one delivery
// fee split among the participants of its items. Total is the sum of the
// item subtotals captured at write time, delivery fee excluded.
type Order struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	RestaurantID  uint       `gorm:"column:restaurante_id;not null" json:"restaurante_id"`
	Restaurant    Restaurant `gorm:"foreignKey:RestaurantID;references:ID" json:"-"`
	ResponsibleID uint       `gorm:"column:usuario_responsable_id;not null" json:"usuario_responsable_id"`
	Responsible   User       `gorm:"foreignKey:ResponsibleID;references:ID" json:"-"`
	DeliveryFee   int64      `gorm:"column:valor_domicilio;not null;default:0" json:"valor_domicilio"`
	Total         int64      `gorm:"column:total_pedido;not null;default:0" json:"total_pedido"`
	Status        string     `gorm:"column:estado;type:varchar(20);not null;default:'activo'" json:"estado"`
	OrderedAt     time.Time  `gorm:"column:fecha_pedido;not null" json:"fecha_pedido"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"-"`
}

func (Order) TableName() string {
	return "pedidos"
}
