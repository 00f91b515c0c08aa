package dto

import "time"

// OrderRequest is the mutation payload for both create and update. Updates
// replace all mutable fields, so the same strict shape applies.
type OrderRequest struct {
	Brand             string  `json:"brand" binding:"required,max=255"`
	Price             float64 `json:"price" binding:"required,gt=0"`
	VehicleCategoryID *uint   `json:"vehicle_category_id"`
	StatusID          *uint   `json:"status_id"`
}

type OrderResponse struct {
	ID                uint      `json:"id"`
	Brand             string    `json:"brand"`
	Price             float64   `json:"price"`
	VehicleCategoryID *uint     `json:"vehicle_category_id"`
	StatusID          uint      `json:"status_id"`
	CreatedAt         time.Time `json:"created_at"`
}
