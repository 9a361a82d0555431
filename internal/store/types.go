package store

import (
	"time"

	"hotel-frontoffice-backend/internal/model"
	"hotel-frontoffice-backend/internal/tax"
)

// RoomFilter narrows ListRooms. Zero values are ignored.
type RoomFilter struct {
	Status string
	Type   string
	Floor  *int
}

// BookingFilter narrows ListBookings. From/To select bookings overlapping the range.
type BookingFilter struct {
	Status     string
	RoomID     uint
	GuestEmail string
	From       time.Time
	To         time.Time
}

// BookingUpdate holds the editable guest fields of a booking. Nil fields are left unchanged.
type BookingUpdate struct {
	GuestName  *string
	GuestEmail *string
	GuestPhone *string
	Adults     *int
	Children   *int
	Notes      *string
}

// TaskFilter narrows ListTasks.
type TaskFilter struct {
	Status   string
	Assignee string
	RoomID   uint
}

// TaskUpdate changes a housekeeping task. Nil fields are left unchanged.
type TaskUpdate struct {
	Status   *string
	Assignee *string
	Priority *int
	Notes    *string
}

// OrderItem is one requested line of a food order.
type OrderItem struct {
	MenuItemID uint
	Quantity   int
}

// OrderFilter narrows ListFoodOrders.
type OrderFilter struct {
	Status    string
	BookingID uint
}

// EntryFilter narrows ledger queries. From and To are inclusive dates.
type EntryFilter struct {
	Kind string
	From time.Time
	To   time.Time
}

// AccountSummary totals the ledger.
type AccountSummary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// OccupancyDay is the occupancy for one night.
type OccupancyDay struct {
	Date       time.Time `json:"date"`
	Rooms      int64     `json:"rooms"`
	Booked     int64     `json:"booked"`
	Percentage float64   `json:"percentage"`
}

// Checkout is everything written when a stay is closed.
type Checkout struct {
	Booking model.Booking          `json:"booking"`
	Task    model.HousekeepingTask `json:"task"`
	Invoice tax.Invoice            `json:"invoice"`
	Entry   model.AccountEntry     `json:"entry"`
}
