package repository

import (
	"context"

	"github.com/Swati-d16/Product-Inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryLogRepository is append-only by design: history rows are never
// updated or deleted, even when the referenced product goes away.
type InventoryLogRepository interface {
	Create(ctx context.Context, l *model.InventoryLog) error
	CreateTx(tx *gorm.DB, l *model.InventoryLog) error
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.InventoryLog, error)
}

type inventoryLogRepo struct{ db *gorm.DB }

func NewInventoryLogRepository(db *gorm.DB) InventoryLogRepository {
	return &inventoryLogRepo{db: db}
}

func (r *inventoryLogRepo) Create(ctx context.Context, l *model.InventoryLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *inventoryLogRepo) CreateTx(tx *gorm.DB, l *model.InventoryLog) error {
	return tx.Create(l).Error
}

func (r *inventoryLogRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.InventoryLog, error) {
	var logs []model.InventoryLog
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
