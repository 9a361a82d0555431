package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-frontoffice-backend/internal/model"
	"hotel-frontoffice-backend/internal/tax"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidRange        = errors.New("check-out must be after check-in")
	ErrRoomUnavailable     = errors.New("room is not available for the requested dates")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
	ErrConflict            = errors.New("conflicts with an existing record")
	ErrRoomInUse           = errors.New("room has bookings")
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	CreateRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, id uint) (model.Room, error)
	ListRooms(ctx context.Context, f RoomFilter) ([]model.Room, error)
	UpdateRoom(ctx context.Context, room *model.Room) error
	DeleteRoom(ctx context.Context, id uint) error
	SetRoomStatus(ctx context.Context, id uint, status string) error
	AvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]model.Room, error)

	CreateBooking(ctx context.Context, b *model.Booking) error
	GetBooking(ctx context.Context, id uint) (model.Booking, error)
	ListBookings(ctx context.Context, f BookingFilter) ([]model.Booking, error)
	UpdateBooking(ctx context.Context, id uint, u BookingUpdate) (model.Booking, error)
	CancelBooking(ctx context.Context, id uint) (model.Booking, error)
	CheckIn(ctx context.Context, id uint, now time.Time) (model.Booking, error)
	CheckOut(ctx context.Context, id uint, now time.Time, calc *tax.Calculator) (Checkout, error)
	BookingInvoice(ctx context.Context, id uint, calc *tax.Calculator) (tax.Invoice, error)

	UpsertGuestPreference(ctx context.Context, p *model.GuestPreference) error
	GetGuestPreference(ctx context.Context, email string) (model.GuestPreference, error)

	CreateTask(ctx context.Context, t *model.HousekeepingTask) error
	ListTasks(ctx context.Context, f TaskFilter) ([]model.HousekeepingTask, error)
	UpdateTask(ctx context.Context, id uint, u TaskUpdate, now time.Time) (model.HousekeepingTask, error)

	CreateItem(ctx context.Context, item *model.InventoryItem) error
	ListItems(ctx context.Context, lowStockOnly bool) ([]model.InventoryItem, error)
	RecordMovement(ctx context.Context, m *model.StockMovement) (model.InventoryItem, error)
	ListMovements(ctx context.Context, itemID uint) ([]model.StockMovement, error)

	CreateMenuItem(ctx context.Context, item *model.MenuItem) error
	ListMenuItems(ctx context.Context, availableOnly bool) ([]model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *model.MenuItem) error
	CreateFoodOrder(ctx context.Context, order *model.FoodOrder, items []OrderItem, taxRate float64) error
	ListFoodOrders(ctx context.Context, f OrderFilter) ([]model.FoodOrder, error)
	SetFoodOrderStatus(ctx context.Context, id uint, status string) (model.FoodOrder, error)

	CreateEntry(ctx context.Context, e *model.AccountEntry) error
	ListEntries(ctx context.Context, f EntryFilter) ([]model.AccountEntry, error)
	Summary(ctx context.Context, f EntryFilter) (AccountSummary, error)

	Occupancy(ctx context.Context, from, to time.Time) ([]OccupancyDay, error)

	UpsertSubscription(ctx context.Context, sub *model.PushSubscription) error
	GetSubscription(ctx context.Context, endpoint string) (model.PushSubscription, error)
	DeleteSubscription(ctx context.Context, endpoint string) error
	SubscriptionsForFloor(ctx context.Context, floor int) ([]model.PushSubscription, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying connection for health checks and tests.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// conflict maps translated unique and foreign key violations onto ErrConflict.
func conflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

// notFound maps gorm's missing-row error onto ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
