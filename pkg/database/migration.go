package database

import (
	"github.com/autoservis/orders-api/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.OrderStatus{},
		&model.VehicleCategory{},
		&model.Order{},
	)
}
