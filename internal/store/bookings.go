package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-frontoffice-backend/internal/model"
	"hotel-frontoffice-backend/internal/tax"
)

// newReference returns a short human-friendly booking reference.
func newReference() string {
	return "BK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

func (s *gormStore) CreateBooking(ctx context.Context, b *model.Booking) error {
	if !b.CheckOut.After(b.CheckIn) {
		return ErrInvalidRange
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.First(&room, b.RoomID).Error; err != nil {
			return notFound(err)
		}
		if room.Status == model.RoomMaintenance {
			return ErrRoomUnavailable
		}

		var overlapping int64
		if err := tx.Model(&model.Booking{}).
			Where("room_id = ? AND status <> ? AND check_in <= ? AND check_out >= ?",
				b.RoomID, model.BookingCancelled, b.CheckOut, b.CheckIn).
			Count(&overlapping).Error; err != nil {
			return fmt.Errorf("failed to check overlapping bookings: %w", err)
		}
		if overlapping > 0 {
			return ErrRoomUnavailable
		}

		if b.Reference == "" {
			b.Reference = newReference()
		}
		if b.NightlyRate <= 0 {
			b.NightlyRate = room.Rate
		}
		if b.Adults <= 0 {
			b.Adults = 1
		}
		b.Status = model.BookingConfirmed

		if err := tx.Omit("Room").Create(b).Error; err != nil {
			return fmt.Errorf("failed to create booking for room %d: %w", b.RoomID, err)
		}
		b.Room = room
		return nil
	})
}

func (s *gormStore) GetBooking(ctx context.Context, id uint) (model.Booking, error) {
	var b model.Booking
	if err := s.db.WithContext(ctx).Preload("Room").First(&b, id).Error; err != nil {
		return model.Booking{}, notFound(err)
	}
	return b, nil
}

func (s *gormStore) ListBookings(ctx context.Context, f BookingFilter) ([]model.Booking, error) {
	q := s.db.WithContext(ctx).Model(&model.Booking{}).Preload("Room")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RoomID != 0 {
		q = q.Where("room_id = ?", f.RoomID)
	}
	if f.GuestEmail != "" {
		q = q.Where("guest_email = ?", f.GuestEmail)
	}
	if !f.From.IsZero() {
		q = q.Where("check_out >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("check_in <= ?", f.To)
	}

	var bookings []model.Booking
	if err := q.Order("check_in, id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *gormStore) UpdateBooking(ctx context.Context, id uint, u BookingUpdate) (model.Booking, error) {
	updates := map[string]any{}
	if u.GuestName != nil {
		updates["guest_name"] = *u.GuestName
	}
	if u.GuestEmail != nil {
		updates["guest_email"] = *u.GuestEmail
	}
	if u.GuestPhone != nil {
		updates["guest_phone"] = *u.GuestPhone
	}
	if u.Adults != nil {
		updates["adults"] = *u.Adults
	}
	if u.Children != nil {
		updates["children"] = *u.Children
	}
	if u.Notes != nil {
		updates["notes"] = *u.Notes
	}

	if _, err := s.GetBooking(ctx, id); err != nil {
		return model.Booking{}, err
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&model.Booking{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return model.Booking{}, fmt.Errorf("failed to update booking %d: %w", id, err)
		}
	}
	return s.GetBooking(ctx, id)
}

// transition moves a booking from one status to another inside tx.
func transition(tx *gorm.DB, id uint, from []string, to string, extra map[string]any) (model.Booking, error) {
	var b model.Booking
	if err := tx.First(&b, id).Error; err != nil {
		return model.Booking{}, notFound(err)
	}

	allowed := false
	for _, st := range from {
		if b.Status == st {
			allowed = true
			break
		}
	}
	if !allowed {
		return model.Booking{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, to)
	}

	updates := map[string]any{"status": to}
	for k, v := range extra {
		updates[k] = v
	}
	if err := tx.Model(&b).Updates(updates).Error; err != nil {
		return model.Booking{}, fmt.Errorf("failed to update booking %d: %w", id, err)
	}
	return b, nil
}

func (s *gormStore) CancelBooking(ctx context.Context, id uint) (model.Booking, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := transition(tx, id, []string{model.BookingConfirmed}, model.BookingCancelled, nil)
		return err
	})
	if err != nil {
		return model.Booking{}, err
	}
	return s.GetBooking(ctx, id)
}

func (s *gormStore) CheckIn(ctx context.Context, id uint, now time.Time) (model.Booking, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := transition(tx, id, []string{model.BookingConfirmed}, model.BookingCheckedIn,
			map[string]any{"checked_in_at": now})
		if err != nil {
			return err
		}
		return tx.Model(&model.Room{}).Where("id = ?", b.RoomID).Update("status", model.RoomOccupied).Error
	})
	if err != nil {
		return model.Booking{}, err
	}
	return s.GetBooking(ctx, id)
}

// CheckOut closes the stay in one transaction: the booking is checked out, the room marked for
// cleaning, room-charged food orders settled, the invoice total posted as income and a cleaning
// task opened. Nothing is written when any step fails.
func (s *gormStore) CheckOut(ctx context.Context, id uint, now time.Time, calc *tax.Calculator) (Checkout, error) {
	var out Checkout
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := transition(tx, id, []string{model.BookingCheckedIn}, model.BookingCheckedOut,
			map[string]any{"checked_out_at": now})
		if err != nil {
			return err
		}
		if err := tx.First(&b.Room, b.RoomID).Error; err != nil {
			return notFound(err)
		}

		orders, err := chargedOrders(tx, b.ID)
		if err != nil {
			return err
		}
		out.Invoice = buildInvoice(calc, b, orders)

		if err := tx.Model(&model.FoodOrder{}).
			Where("booking_id = ? AND status = ?", b.ID, model.OrderOpen).
			Update("status", model.OrderPaid).Error; err != nil {
			return fmt.Errorf("failed to settle food orders for booking %s: %w", b.Reference, err)
		}

		out.Entry = model.AccountEntry{
			Date:      now,
			Kind:      model.EntryIncome,
			Category:  "rooms",
			Amount:    out.Invoice.Total,
			Reference: out.Invoice.Number,
			Memo:      fmt.Sprintf("Checkout %s, room %s", b.Reference, b.Room.Number),
		}
		if err := tx.Create(&out.Entry).Error; err != nil {
			return fmt.Errorf("failed to post income for booking %s: %w", b.Reference, err)
		}

		if err := tx.Model(&model.Room{}).Where("id = ?", b.RoomID).Update("status", model.RoomCleaning).Error; err != nil {
			return fmt.Errorf("failed to mark room %d for cleaning: %w", b.RoomID, err)
		}

		out.Task = model.HousekeepingTask{
			RoomID:   b.RoomID,
			Kind:     model.TaskCleaning,
			Priority: 1,
			Status:   model.TaskPending,
			Notes:    "Checkout " + b.Reference,
		}
		if err := tx.Omit("Room").Create(&out.Task).Error; err != nil {
			return fmt.Errorf("failed to create cleaning task for room %d: %w", b.RoomID, err)
		}
		return nil
	})
	if err != nil {
		return Checkout{}, err
	}

	out.Booking, err = s.GetBooking(ctx, id)
	if err != nil {
		return Checkout{}, err
	}
	out.Task.Room = out.Booking.Room
	return out, nil
}

// BookingInvoice totals a booking as it stands: room nights plus every food order not cancelled.
func (s *gormStore) BookingInvoice(ctx context.Context, id uint, calc *tax.Calculator) (tax.Invoice, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return tax.Invoice{}, err
	}
	orders, err := chargedOrders(s.db.WithContext(ctx), b.ID)
	if err != nil {
		return tax.Invoice{}, err
	}
	return buildInvoice(calc, b, orders), nil
}

func chargedOrders(tx *gorm.DB, bookingID uint) ([]model.FoodOrder, error) {
	var orders []model.FoodOrder
	if err := tx.Where("booking_id = ? AND status <> ?", bookingID, model.OrderCancelled).
		Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to load food orders for booking %d: %w", bookingID, err)
	}
	return orders, nil
}

// buildInvoice numbers the invoice after the booking reference. b.Room must be loaded.
func buildInvoice(calc *tax.Calculator, b model.Booking, orders []model.FoodOrder) tax.Invoice {
	inv := tax.Invoice{Number: "INV-" + strings.TrimPrefix(b.Reference, "BK-")}
	calc.AddRoomNights(&inv, fmt.Sprintf("Room %s", b.Room.Number), b.Nights(), b.NightlyRate)
	for _, o := range orders {
		calc.AddFood(&inv, fmt.Sprintf("Food order #%d", o.ID), o.Subtotal)
	}
	return inv
}
