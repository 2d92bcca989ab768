package domain

import (
	"time"

	"gorm.io/datatypes"
)

const OrderStatusPending = "pending"

// Order is a denormalized order record. Items holds a snapshot of the
// purchased line items as submitted by the client and is never
// re-validated against live product rows.
type Order struct {
	ID              int64          `gorm:"primaryKey" json:"id,string"`
	CustomerName    string         `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone   string         `gorm:"size:20;not null" json:"customer_phone"`
	CustomerAddress string         `gorm:"type:text;not null" json:"customer_address"`
	Note            string         `gorm:"type:text" json:"note"`
	Items           datatypes.JSON `gorm:"type:jsonb;not null" json:"items"`
	Total           int64          `gorm:"not null" json:"total"`
	OrderDate       time.Time      `gorm:"not null" json:"order_date"`
	Status          string         `gorm:"size:20;default:pending" json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
}

// TableName Specify table name
func (Order) TableName() string {
	return "orders"
}
