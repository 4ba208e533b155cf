package models

type MenuItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"column:nombre;type:varchar(255);not null" json:"nombre"`
	Price        int64      `gorm:"column:precio;not null" json:"precio"`
	RestaurantID uint       `gorm:"column:restaurante_id;not null" json:"restaurante_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
