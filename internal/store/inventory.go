package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hotel-frontoffice-backend/internal/model"
)

func (s *gormStore) CreateItem(ctx context.Context, item *model.InventoryItem) error {
	if item.Quantity < 0 {
		return ErrInsufficientStock
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.InventoryItem{}).Where("sku = ?", item.SKU).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to check sku %q: %w", item.SKU, err)
		}
		if n > 0 {
			return fmt.Errorf("%w: sku %q already exists", ErrConflict, item.SKU)
		}
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create item %q: %w", item.SKU, conflict(err))
		}
		return nil
	})
}

func (s *gormStore) ListItems(ctx context.Context, lowStockOnly bool) ([]model.InventoryItem, error) {
	q := s.db.WithContext(ctx).Model(&model.InventoryItem{})
	if lowStockOnly {
		q = q.Where("quantity <= reorder_level")
	}
	var items []model.InventoryItem
	if err := q.Order("category, name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// RecordMovement appends to the stock ledger and applies the change to the item.
// A movement that would take the quantity below zero is rejected.
func (s *gormStore) RecordMovement(ctx context.Context, m *model.StockMovement) (model.InventoryItem, error) {
	var item model.InventoryItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, m.ItemID).Error; err != nil {
			return notFound(err)
		}

		var delta float64
		switch m.Kind {
		case model.MovementIn:
			delta = m.Quantity
		case model.MovementOut:
			delta = -m.Quantity
		case model.MovementAdjust:
			delta = m.Quantity
		default:
			return fmt.Errorf("unknown movement kind %q", m.Kind)
		}

		newQty := item.Quantity + delta
		if newQty < 0 {
			return fmt.Errorf("%w: %s has %.2f, movement needs %.2f", ErrInsufficientStock, item.SKU, item.Quantity, -delta)
		}

		if err := tx.Model(&item).Update("quantity", newQty).Error; err != nil {
			return fmt.Errorf("failed to update quantity of %s: %w", item.SKU, err)
		}
		if err := tx.Omit("Item").Create(m).Error; err != nil {
			return fmt.Errorf("failed to record movement for %s: %w", item.SKU, err)
		}
		item.Quantity = newQty
		return nil
	})
	if err != nil {
		return model.InventoryItem{}, err
	}
	return item, nil
}

func (s *gormStore) ListMovements(ctx context.Context, itemID uint) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	if err := s.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC, id DESC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}
