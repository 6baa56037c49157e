package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel mirrors the 'payments' table. The unique index on order_id
// enforces the one-payment-per-order invariant at the database level.
type PaymentModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID      uuid.UUID       `gorm:"type:uuid;unique;not null"`
	VendorName   string          `gorm:"type:varchar(100);not null"`
	SupplierName string          `gorm:"type:varchar(100);not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       string          `gorm:"type:varchar(16);not null;index"`
	CreatedAt    time.Time       `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
