package model

// OrderStatus is a workflow state. Every order references exactly one.
type OrderStatus struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Status string `gorm:"column:status;size:50;unique;not null" json:"status"`
}

func (OrderStatus) TableName() string {
	return "order_statuses"
}
