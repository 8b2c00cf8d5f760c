package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryLog records every stock change on a product. Rows are append-only:
// no Update or Delete paths exist, and deleting a product leaves its history
// in place (ProductID intentionally carries no foreign key).
type InventoryLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	OldStock  int       `gorm:"not null"`
	NewStock  int       `gorm:"not null"`
	ChangedBy string    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName overrides GORM's default pluralization (inventory_logs, not inventory_log).
func (InventoryLog) TableName() string { return "inventory_logs" }
