package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"hotel-frontoffice-backend/internal/model"
)

// MaxReportDays bounds occupancy reports.
const MaxReportDays = 366

// Occupancy counts, for each night in [from, to], the rooms with a live booking covering that night.
func (s *gormStore) Occupancy(ctx context.Context, from, to time.Time) ([]OccupancyDay, error) {
	from, to = truncateDay(from), truncateDay(to)
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days > MaxReportDays {
		return nil, fmt.Errorf("%w: report spans %d days, max %d", ErrInvalidRange, days, MaxReportDays)
	}

	var rooms int64
	if err := s.db.WithContext(ctx).Model(&model.Room{}).Count(&rooms).Error; err != nil {
		return nil, err
	}

	var bookings []model.Booking
	if err := s.db.WithContext(ctx).
		Where("status <> ? AND check_in <= ? AND check_out > ?", model.BookingCancelled, to, from).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings for occupancy: %w", err)
	}

	out := make([]OccupancyDay, 0, days)
	for i := 0; i < days; i++ {
		night := from.AddDate(0, 0, i)
		var booked int64
		for _, b := range bookings {
			if !truncateDay(b.CheckIn).After(night) && truncateDay(b.CheckOut).After(night) {
				booked++
			}
		}
		day := OccupancyDay{Date: night, Rooms: rooms, Booked: booked}
		if rooms > 0 {
			day.Percentage = math.Round(float64(booked)/float64(rooms)*10000) / 100
		}
		out = append(out, day)
	}
	return out, nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
