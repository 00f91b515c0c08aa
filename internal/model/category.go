package model

// VehicleCategory is a named classification an order may belong to.
type VehicleCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name;size:50;unique;not null" json:"name"`
}

func (VehicleCategory) TableName() string {
	return "vehicle_categories"
}
