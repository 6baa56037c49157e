package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Line items live in their own table
// and are always loaded together with the order.
type OrderModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key"`
	VendorID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	VendorName  string           `gorm:"type:varchar(100);not null"`
	TotalAmount decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Status      string           `gorm:"type:varchar(16);not null;index"`
	ActedBy     string           `gorm:"type:varchar(100)"`
	ActedAt     *time.Time       `gorm:""`
	CreatedAt   time.Time        `gorm:"index"`
	Items       []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Name and price are the
// snapshot taken at order time, not a live reference into the catalog.
type OrderItemModel struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ResourceID uuid.UUID       `gorm:"type:uuid;not null"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
