package database

import (
	"gorm.io/gorm"

	"github.com/hpowerco/pedidos-app/utils"
)

// indexStatements cover the hot query paths: item lookup per order, menu
// listing per restaurant, and the newest-first order listing. IF NOT EXISTS
// is understood by both postgres and sqlite.
var indexStatements = []string{
	"CREATE INDEX IF NOT EXISTS idx_pedido_items_pedido_id ON pedido_items (pedido_id)",
	"CREATE INDEX IF NOT EXISTS idx_menu_items_restaurante_id ON menu_items (restaurante_id)",
	"CREATE INDEX IF NOT EXISTS idx_pedidos_fecha_pedido ON pedidos (fecha_pedido)",
}

// EnsureIndexes creates the supporting indexes after AutoMigrate. Failures
// are logged and skipped; the schema itself is already in place.
func EnsureIndexes(db *gorm.DB) error {
	for _, stmt := range indexStatements {
		if err := db.Exec(stmt).Error; err != nil {
			utils.ErrorLogger.Printf("Error creating index: %v\nStatement: %s", err, stmt)
			continue
		}
	}
	return nil
}
