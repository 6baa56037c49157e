package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ResourceModel mirrors the 'resources' table. Prices use numeric(12,2) to
// keep decimal arithmetic exact on the database side as well.
type ResourceModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	Name        string          `gorm:"type:varchar(100);not null;index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Category    string          `gorm:"type:varchar(32);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResourceModel) TableName() string {
	return "resources"
}
