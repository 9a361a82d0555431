package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hotel-frontoffice-backend/internal/model"
	"hotel-frontoffice-backend/internal/tax"
)

func (s *gormStore) CreateMenuItem(ctx context.Context, item *model.MenuItem) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item %q: %w", item.Name, err)
	}
	return nil
}

func (s *gormStore) ListMenuItems(ctx context.Context, availableOnly bool) ([]model.MenuItem, error) {
	q := s.db.WithContext(ctx).Model(&model.MenuItem{})
	if availableOnly {
		q = q.Where("available = ?", true)
	}
	var items []model.MenuItem
	if err := q.Order("category, name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *gormStore) UpdateMenuItem(ctx context.Context, item *model.MenuItem) error {
	var existing model.MenuItem
	if err := s.db.WithContext(ctx).First(&existing, item.ID).Error; err != nil {
		return notFound(err)
	}
	item.CreatedAt = existing.CreatedAt
	return s.db.WithContext(ctx).Save(item).Error
}

// CreateFoodOrder prices the requested items from the menu and stores the ticket.
// Orders charged to a booking require the guest to be checked in.
func (s *gormStore) CreateFoodOrder(ctx context.Context, order *model.FoodOrder, items []OrderItem, taxRate float64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.BookingID != nil {
			var b model.Booking
			if err := tx.First(&b, *order.BookingID).Error; err != nil {
				return notFound(err)
			}
			if b.Status != model.BookingCheckedIn {
				return fmt.Errorf("%w: booking %s is %s", ErrInvalidTransition, b.Reference, b.Status)
			}
		}

		lines := make([]model.OrderLine, 0, len(items))
		var subtotal float64
		for _, it := range items {
			var menuItem model.MenuItem
			if err := tx.First(&menuItem, it.MenuItemID).Error; err != nil {
				return notFound(err)
			}
			if !menuItem.Available {
				return fmt.Errorf("%w: %s", ErrMenuItemUnavailable, menuItem.Name)
			}
			lines = append(lines, model.OrderLine{
				MenuItemID: menuItem.ID,
				Name:       menuItem.Name,
				Quantity:   it.Quantity,
				UnitPrice:  menuItem.Price,
			})
			subtotal += float64(it.Quantity) * menuItem.Price
		}

		b := tax.Compute(subtotal, taxRate)
		order.SetOrderLines(lines)
		order.Subtotal = b.Taxable
		order.Tax = b.Tax
		order.Total = b.Total
		order.Status = model.OrderOpen

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create food order: %w", err)
		}
		return nil
	})
}

func (s *gormStore) ListFoodOrders(ctx context.Context, f OrderFilter) ([]model.FoodOrder, error) {
	q := s.db.WithContext(ctx).Model(&model.FoodOrder{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.BookingID != 0 {
		q = q.Where("booking_id = ?", f.BookingID)
	}
	var orders []model.FoodOrder
	if err := q.Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// SetFoodOrderStatus settles or voids an open order.
func (s *gormStore) SetFoodOrderStatus(ctx context.Context, id uint, status string) (model.FoodOrder, error) {
	var order model.FoodOrder
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			return notFound(err)
		}
		if order.Status != model.OrderOpen || (status != model.OrderPaid && status != model.OrderCancelled) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
		}
		if err := tx.Model(&order).Update("status", status).Error; err != nil {
			return err
		}
		order.Status = status
		return nil
	})
	if err != nil {
		return model.FoodOrder{}, err
	}
	return order, nil
}
