package database

import (
	"github.com/autoservis/orders-api/internal/model"
	"gorm.io/gorm"
)

// DefaultStatuses returns the fixed set of order statuses created on first run.
func DefaultStatuses() []model.OrderStatus {
	return []model.OrderStatus{
		{Status: "Nová"},
		{Status: "Spracováva sa"},
		{Status: "Dokončená"},
		{Status: "Zrušená"},
	}
}

// DefaultCategories returns the fixed set of vehicle categories created on first run.
func DefaultCategories() []model.VehicleCategory {
	return []model.VehicleCategory{
		{Name: "Osobné auto"},
		{Name: "Nákladné auto"},
		{Name: "Motocykel"},
		{Name: "Autobus"},
	}
}

// Seed creates initial data for the database
func Seed(db *gorm.DB) error {
	if err := SeedStatuses(db); err != nil {
		return err
	}
	return SeedCategories(db)
}

// SeedStatuses inserts the default statuses if the table is empty
func SeedStatuses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.OrderStatus{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	statuses := DefaultStatuses()
	return db.Create(&statuses).Error
}

// SeedCategories inserts the default vehicle categories if the table is empty
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.VehicleCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := DefaultCategories()
	return db.Create(&categories).Error
}
