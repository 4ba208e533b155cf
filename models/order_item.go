package models

// OrderItem attributes one menu item (with quantity) to one participant
// inside an order. Subtotal is fixed when the item is written and is never
// re-derived from the live menu price.
type OrderItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	OrderID    uint     `gorm:"column:pedido_id;not null" json:"pedido_id"`
	Order      Order    `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	UserID     uint     `gorm:"column:usuario_id;not null" json:"usuario_id"`
	User       User     `gorm:"foreignKey:UserID;references:ID" json:"-"`
	MenuItemID uint     `gorm:"column:menu_item_id;not null" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID;references:ID" json:"-"`
	Quantity   int      `gorm:"column:cantidad;not null;check:cantidad > 0" json:"cantidad"`
	Subtotal   int64    `gorm:"column:subtotal;not null" json:"subtotal"`
}

func (OrderItem) TableName() string {
	return "pedido_items"
}
