package model

import "time"

// Booking statuses.
const (
	BookingConfirmed  = "confirmed"
	BookingCheckedIn  = "checked_in"
	BookingCheckedOut = "checked_out"
	BookingCancelled  = "cancelled"
)

// Booking is a reservation of one room for a date range.
type Booking struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Reference    string     `gorm:"uniqueIndex;size:32;not null" json:"reference"`
	RoomID       uint       `gorm:"index;not null" json:"room_id"`
	GuestName    string     `gorm:"size:128;not null" json:"guest_name"`
	GuestEmail   string     `gorm:"size:256;index" json:"guest_email"`
	GuestPhone   string     `gorm:"size:32" json:"guest_phone"`
	CheckIn      time.Time  `gorm:"not null;index" json:"check_in"`
	CheckOut     time.Time  `gorm:"not null;index" json:"check_out"`
	Adults       int        `gorm:"not null;default:1" json:"adults"`
	Children     int        `gorm:"not null;default:0" json:"children"`
	Status       string     `gorm:"size:16;not null;index" json:"status"`
	NightlyRate  float64    `gorm:"not null" json:"nightly_rate"`
	Notes        string     `gorm:"type:text" json:"notes"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Associations
	Room Room `gorm:"constraint:OnDelete:RESTRICT" json:"room,omitempty"`
}

// Nights returns the number of nights in the stay, at least one.
func (b Booking) Nights() int {
	n := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}
