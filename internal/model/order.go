package model

import (
	"time"
)

// Order is a vehicle-service order. The price check mirrors the store-level
// constraint so buggy callers cannot bypass the validation layer.
type Order struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Brand             string    `gorm:"column:brand;size:255;not null" json:"brand"`
	Price             float64   `gorm:"column:price;not null;check:chk_orders_price_positive,price > 0" json:"price"`
	VehicleCategoryID *uint     `gorm:"column:vehicle_category_id" json:"vehicle_category_id"`
	StatusID          uint      `gorm:"column:status_id;not null" json:"status_id"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`

	VehicleCategory *VehicleCategory `gorm:"foreignKey:VehicleCategoryID" json:"-"`
	Status          *OrderStatus     `gorm:"foreignKey:StatusID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}
