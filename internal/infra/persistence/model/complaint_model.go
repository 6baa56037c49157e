package model

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintModel mirrors the 'complaints' table.
type ComplaintModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	PartyID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	PartyName  string     `gorm:"type:varchar(100);not null"`
	Category   string     `gorm:"type:varchar(64);not null"`
	Message    string     `gorm:"type:text;not null"`
	Status     string     `gorm:"type:varchar(16);not null;index"`
	CreatedAt  time.Time  `gorm:"index"`
	ResolvedAt *time.Time `gorm:""`
}

// TableName explicitly sets the table name for GORM.
func (ComplaintModel) TableName() string {
	return "complaints"
}
