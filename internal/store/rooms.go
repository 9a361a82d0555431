package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-frontoffice-backend/internal/model"
)

func (s *gormStore) CreateRoom(ctx context.Context, room *model.Room) error {
	if room.Status == "" {
		room.Status = model.RoomAvailable
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := numberFree(tx, room.Number, 0); err != nil {
			return err
		}
		if err := tx.Create(room).Error; err != nil {
			return fmt.Errorf("failed to create room %q: %w", room.Number, conflict(err))
		}
		return nil
	})
}

// numberFree fails with ErrConflict when another room already uses number.
func numberFree(tx *gorm.DB, number string, exceptID uint) error {
	var n int64
	if err := tx.Model(&model.Room{}).Where("number = ? AND id <> ?", number, exceptID).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check room number %q: %w", number, err)
	}
	if n > 0 {
		return fmt.Errorf("%w: room %q already exists", ErrConflict, number)
	}
	return nil
}

func (s *gormStore) GetRoom(ctx context.Context, id uint) (model.Room, error) {
	var room model.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return model.Room{}, notFound(err)
	}
	return room, nil
}

func (s *gormStore) ListRooms(ctx context.Context, f RoomFilter) ([]model.Room, error) {
	q := s.db.WithContext(ctx).Model(&model.Room{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Floor != nil {
		q = q.Where("floor = ?", *f.Floor)
	}

	var rooms []model.Room
	if err := q.Order("number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *gormStore) UpdateRoom(ctx context.Context, room *model.Room) error {
	if _, err := s.GetRoom(ctx, room.ID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := numberFree(tx, room.Number, room.ID); err != nil {
			return err
		}
		if err := tx.Save(room).Error; err != nil {
			return fmt.Errorf("failed to update room %d: %w", room.ID, conflict(err))
		}
		return nil
	})
}

// DeleteRoom removes a room and its housekeeping tasks. Rooms referenced by any booking,
// cancelled ones included, are kept for the booking history and fail with ErrRoomInUse.
func (s *gormStore) DeleteRoom(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.First(&room, id).Error; err != nil {
			return notFound(err)
		}

		var bookings int64
		if err := tx.Model(&model.Booking{}).Where("room_id = ?", id).Count(&bookings).Error; err != nil {
			return fmt.Errorf("failed to count bookings for room %d: %w", id, err)
		}
		if bookings > 0 {
			return fmt.Errorf("%w: room %s is referenced by %d bookings", ErrRoomInUse, room.Number, bookings)
		}

		if err := tx.Where("room_id = ?", id).Delete(&model.HousekeepingTask{}).Error; err != nil {
			return fmt.Errorf("failed to delete tasks for room %d: %w", id, err)
		}
		if err := tx.Delete(&room).Error; err != nil {
			return fmt.Errorf("failed to delete room %d: %w", id, conflict(err))
		}
		return nil
	})
}

func (s *gormStore) SetRoomStatus(ctx context.Context, id uint, status string) error {
	res := s.db.WithContext(ctx).Model(&model.Room{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to set status of room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AvailableRooms returns the rooms with no live booking overlapping [checkIn, checkOut].
// A booking overlaps when it starts on or before checkOut and ends on or after checkIn.
// Rooms under maintenance are never offered.
func (s *gormStore) AvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]model.Room, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidRange
	}

	busy := s.db.Model(&model.Booking{}).
		Select("room_id").
		Where("status <> ? AND check_in <= ? AND check_out >= ?", model.BookingCancelled, checkOut, checkIn)

	var rooms []model.Room
	if err := s.db.WithContext(ctx).
		Where("status <> ?", model.RoomMaintenance).
		Where("id NOT IN (?)", busy).
		Order("number").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to query available rooms: %w", err)
	}
	return rooms, nil
}
