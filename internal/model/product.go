package model

import (
	"time"

	"github.com/google/uuid"
)

// Status values derived from Stock. Status is never written independently:
// every code path that changes Stock must go through StatusForStock.
const (
	StatusInStock    = "In Stock"
	StatusOutOfStock = "Out of Stock"
)

// Product is a single inventory record. Name is intended unique under
// case-insensitive comparison; the LOWER(name) unique index is created by a
// schema patch (see infra.NewDatabase) since GORM tags cannot express it.
type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"index;not null"`
	Unit      string    `gorm:"not null;default:'pcs'"`
	Category  string    `gorm:"not null;default:'Uncategorized'"`
	Brand     string    `gorm:"not null;default:'Unknown'"`
	Stock     int       `gorm:"not null;default:0;check:stock >= 0"`
	Status    string    `gorm:"not null"`
	Image     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusForStock derives the display status: "In Stock" iff stock > 0.
func StatusForStock(stock int) string {
	if stock > 0 {
		return StatusInStock
	}
	return StatusOutOfStock
}
