package models

type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"column:nombre;type:varchar(255);not null" json:"nombre"`
	Phone   string `gorm:"column:telefono;type:varchar(50)" json:"telefono"`
	Address string `gorm:"column:direccion;type:varchar(255)" json:"direccion"`

	MenuItems []MenuItem `gorm:"foreignKey:RestaurantID" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurantes"
}
