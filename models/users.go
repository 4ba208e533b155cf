package models

// User is a participant in group orders. Participants are global,
// not scoped to any restaurant.
type User struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:nombre;type:varchar(255);not null" json:"nombre"`
}

func (User) TableName() string {
	return "usuarios"
}
