package store

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-frontoffice-backend/config"
	"hotel-frontoffice-backend/internal/db"
	"hotel-frontoffice-backend/internal/model"
	"hotel-frontoffice-backend/internal/tax"
)

var testCalc = tax.NewCalculator(config.TaxConfig{FoodRate: 5})

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

// newSQLiteStore returns a store over a private in-memory database with every table migrated.
func newSQLiteStore(t *testing.T) Store {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(db.Models()...))

	sqlDB, _ := gormDB.DB()
	t.Cleanup(func() { sqlDB.Close() })
	return NewGormStore(gormDB)
}

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func mustRoom(t *testing.T, s Store, number string, floor int) model.Room {
	t.Helper()
	room := model.Room{Number: number, Type: "Deluxe", Floor: floor, BedType: "King", Rate: 4000}
	require.NoError(t, s.CreateRoom(context.Background(), &room))
	return room
}

func mustBook(t *testing.T, s Store, roomID uint, in, out time.Time) model.Booking {
	t.Helper()
	b := model.Booking{RoomID: roomID, GuestName: "Asha Rao", GuestEmail: "asha@example.com", CheckIn: in, CheckOut: out}
	require.NoError(t, s.CreateBooking(context.Background(), &b))
	return b
}

func TestAvailableRooms_InvalidRange(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	_, err := s.AvailableRooms(context.Background(), day(5), day(5))
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = s.AvailableRooms(context.Background(), day(5), day(4))
	assert.ErrorIs(t, err, ErrInvalidRange)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailableRooms_Query(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rooms" WHERE status <> $1 AND id NOT IN (SELECT room_id FROM "bookings" WHERE status <> $2 AND check_in <= $3 AND check_out >= $4) ORDER BY number`)).
		WithArgs(model.RoomMaintenance, model.BookingCancelled, day(12), day(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "floor", "bed_type", "status"}).
			AddRow(1, "101", 1, "King", model.RoomAvailable).
			AddRow(2, "102", 1, "Queen", model.RoomCleaning))

	rooms, err := s.AvailableRooms(context.Background(), day(10), day(12))
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].Number)
	assert.Equal(t, "102", rooms[1].Number)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_OverlapRollsBack(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rooms" WHERE "rooms"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "rate", "status"}).
			AddRow(3, "103", 4500, model.RoomAvailable))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "bookings"`)).
		WithArgs(3, model.BookingCancelled, Any{}, Any{}).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	b := model.Booking{RoomID: 3, GuestName: "Ravi", CheckIn: day(1), CheckOut: day(3)}
	err := s.CreateBooking(context.Background(), &b)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Empty(t, b.Reference)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailableRooms_InclusiveOverlap(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	r101 := mustRoom(t, s, "101", 1)
	r102 := mustRoom(t, s, "102", 1)
	mustRoom(t, s, "103", 1)
	r104 := mustRoom(t, s, "104", 1)
	require.NoError(t, s.SetRoomStatus(ctx, r104.ID, model.RoomMaintenance))

	mustBook(t, s, r101.ID, day(1), day(5))
	cancelled := mustBook(t, s, r102.ID, day(10), day(12))
	_, err := s.CancelBooking(ctx, cancelled.ID)
	require.NoError(t, err)

	numbers := func(rooms []model.Room) []string {
		out := []string{}
		for _, r := range rooms {
			out = append(out, r.Number)
		}
		return out
	}

	testCases := []struct {
		name     string
		in, out  time.Time
		expected []string
	}{
		{"inside the stay", day(2), day(3), []string{"102", "103"}},
		{"starts on the checkout day", day(5), day(7), []string{"102", "103"}},
		{"ends on the check-in day", day(0), day(1), []string{"102", "103"}},
		{"after the stay", day(6), day(8), []string{"101", "102", "103"}},
		{"cancelled booking ignored", day(10), day(12), []string{"101", "102", "103"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rooms, err := s.AvailableRooms(ctx, tc.in, tc.out)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, numbers(rooms))
		})
	}
}

func TestCreateBooking_Rules(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	room := mustRoom(t, s, "201", 2)

	b := mustBook(t, s, room.ID, day(1), day(4))
	assert.Regexp(t, `^BK-[0-9A-F]{10}$`, b.Reference)
	assert.Equal(t, model.BookingConfirmed, b.Status)
	assert.Equal(t, 4000.0, b.NightlyRate)
	assert.Equal(t, 1, b.Adults)

	clash := model.Booking{RoomID: room.ID, GuestName: "X", CheckIn: day(4), CheckOut: day(6)}
	assert.ErrorIs(t, s.CreateBooking(ctx, &clash), ErrRoomUnavailable)

	bad := model.Booking{RoomID: room.ID, GuestName: "X", CheckIn: day(8), CheckOut: day(8)}
	assert.ErrorIs(t, s.CreateBooking(ctx, &bad), ErrInvalidRange)

	missing := model.Booking{RoomID: 999, GuestName: "X", CheckIn: day(8), CheckOut: day(9)}
	assert.ErrorIs(t, s.CreateBooking(ctx, &missing), ErrNotFound)

	require.NoError(t, s.SetRoomStatus(ctx, room.ID, model.RoomMaintenance))
	later := model.Booking{RoomID: room.ID, GuestName: "X", CheckIn: day(20), CheckOut: day(22)}
	assert.ErrorIs(t, s.CreateBooking(ctx, &later), ErrRoomUnavailable)
}

func TestBookingLifecycle(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	room := mustRoom(t, s, "301", 3)
	b := mustBook(t, s, room.ID, day(1), day(3))

	_, err := s.CheckOut(ctx, b.ID, day(1), testCalc)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	checkedIn, err := s.CheckIn(ctx, b.ID, day(1))
	require.NoError(t, err)
	assert.Equal(t, model.BookingCheckedIn, checkedIn.Status)
	require.NotNil(t, checkedIn.CheckedInAt)
	assert.Equal(t, model.RoomOccupied, checkedIn.Room.Status)

	_, err = s.CancelBooking(ctx, b.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	out, err := s.CheckOut(ctx, b.ID, day(3), testCalc)
	require.NoError(t, err)
	checkedOut, task := out.Booking, out.Task
	assert.Equal(t, model.BookingCheckedOut, checkedOut.Status)
	assert.Equal(t, model.RoomCleaning, checkedOut.Room.Status)
	assert.Equal(t, model.TaskCleaning, task.Kind)
	assert.Equal(t, model.TaskPending, task.Status)
	assert.Equal(t, room.ID, task.RoomID)
	assert.Equal(t, 3, task.Room.Floor)

	done := model.TaskDone
	finished, err := s.UpdateTask(ctx, task.ID, TaskUpdate{Status: &done}, day(3))
	require.NoError(t, err)
	assert.Equal(t, model.TaskDone, finished.Status)
	require.NotNil(t, finished.CompletedAt)
	assert.Equal(t, model.RoomAvailable, finished.Room.Status)

	_, err = s.UpdateTask(ctx, task.ID, TaskUpdate{Status: &done}, day(3))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateBooking(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	room := mustRoom(t, s, "302", 3)
	b := mustBook(t, s, room.ID, day(1), day(2))

	name, adults := "Asha R.", 2
	updated, err := s.UpdateBooking(ctx, b.ID, BookingUpdate{GuestName: &name, Adults: &adults})
	require.NoError(t, err)
	assert.Equal(t, "Asha R.", updated.GuestName)
	assert.Equal(t, 2, updated.Adults)
	assert.Equal(t, "asha@example.com", updated.GuestEmail)

	_, err = s.UpdateBooking(ctx, 999, BookingUpdate{GuestName: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := s.ListBookings(ctx, BookingFilter{GuestEmail: "asha@example.com"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCheckOut_PostsInvoiceAndSettlesOrders(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	room := mustRoom(t, s, "305", 3)
	b := mustBook(t, s, room.ID, day(1), day(3))
	_, err := s.CheckIn(ctx, b.ID, day(1))
	require.NoError(t, err)

	tea := model.MenuItem{Name: "Masala Chai", Price: 60, Available: true}
	require.NoError(t, s.CreateMenuItem(ctx, &tea))
	order := model.FoodOrder{BookingID: &b.ID}
	require.NoError(t, s.CreateFoodOrder(ctx, &order, []OrderItem{{MenuItemID: tea.ID, Quantity: 2}}, 5))
	voided := model.FoodOrder{BookingID: &b.ID}
	require.NoError(t, s.CreateFoodOrder(ctx, &voided, []OrderItem{{MenuItemID: tea.ID, Quantity: 5}}, 5))
	_, err = s.SetFoodOrderStatus(ctx, voided.ID, model.OrderCancelled)
	require.NoError(t, err)

	out, err := s.CheckOut(ctx, b.ID, day(3), testCalc)
	require.NoError(t, err)
	assert.Equal(t, 8120.0, out.Invoice.Subtotal)
	assert.Equal(t, 9086.0, out.Invoice.Total)
	assert.Len(t, out.Invoice.Lines, 2)

	entries, err := s.ListEntries(ctx, EntryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.EntryIncome, entries[0].Kind)
	assert.Equal(t, "rooms", entries[0].Category)
	assert.Equal(t, 9086.0, entries[0].Amount)
	assert.Equal(t, out.Invoice.Number, entries[0].Reference)
	assert.Equal(t, out.Entry.ID, entries[0].ID)

	// Room charges are settled by the checkout and can no longer change the posted total.
	orders, err := s.ListFoodOrders(ctx, OrderFilter{BookingID: b.ID})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, model.OrderPaid, orders[0].Status)
	assert.Equal(t, model.OrderCancelled, orders[1].Status)
	_, err = s.SetFoodOrderStatus(ctx, order.ID, model.OrderCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	inv, err := s.BookingInvoice(ctx, b.ID, testCalc)
	require.NoError(t, err)
	assert.Equal(t, out.Invoice, inv)
}

func TestCheckOut_RollsBackWhenInvoiceFails(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	room := mustRoom(t, s, "306", 3)
	b := mustBook(t, s, room.ID, day(1), day(3))
	_, err := s.CheckIn(ctx, b.ID, day(1))
	require.NoError(t, err)

	require.NoError(t, s.DB().Migrator().DropTable(&model.FoodOrder{}))

	_, err = s.CheckOut(ctx, b.ID, day(3), testCalc)
	require.Error(t, err)

	got, err := s.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingCheckedIn, got.Status)
	assert.Nil(t, got.CheckedOutAt)
	assert.Equal(t, model.RoomOccupied, got.Room.Status)

	entries, err := s.ListEntries(ctx, EntryFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
	tasks, err := s.ListTasks(ctx, TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// Once the failure is gone the same checkout goes through.
	require.NoError(t, s.DB().AutoMigrate(&model.FoodOrder{}))
	out, err := s.CheckOut(ctx, b.ID, day(3), testCalc)
	require.NoError(t, err)
	assert.Equal(t, model.BookingCheckedOut, out.Booking.Status)
}

func TestRooms_Conflicts(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	r101 := mustRoom(t, s, "101", 1)
	r102 := mustRoom(t, s, "102", 1)

	dup := model.Room{Number: "101", Type: "Deluxe", Floor: 1, Rate: 4000}
	assert.ErrorIs(t, s.CreateRoom(ctx, &dup), ErrConflict)

	r102.Number = "101"
	assert.ErrorIs(t, s.UpdateRoom(ctx, &r102), ErrConflict)
	r101.Rate = 4500
	require.NoError(t, s.UpdateRoom(ctx, &r101))

	item := model.InventoryItem{SKU: "SOAP-01", Name: "Soap", Quantity: 10}
	require.NoError(t, s.CreateItem(ctx, &item))
	again := model.InventoryItem{SKU: "SOAP-01", Name: "Soap again"}
	assert.ErrorIs(t, s.CreateItem(ctx, &again), ErrConflict)
}

func TestDeleteRoom(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	booked := mustRoom(t, s, "201", 2)
	b := mustBook(t, s, booked.ID, day(1), day(2))
	assert.ErrorIs(t, s.DeleteRoom(ctx, booked.ID), ErrRoomInUse)

	// Cancelled bookings still belong to the room's history.
	_, err := s.CancelBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, s.DeleteRoom(ctx, booked.ID), ErrRoomInUse)
	_, err = s.GetRoom(ctx, booked.ID)
	require.NoError(t, err)

	spare := mustRoom(t, s, "202", 2)
	task := model.HousekeepingTask{RoomID: spare.ID, Kind: model.TaskInspection}
	require.NoError(t, s.CreateTask(ctx, &task))
	require.NoError(t, s.DeleteRoom(ctx, spare.ID))

	_, err = s.GetRoom(ctx, spare.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	tasks, err := s.ListTasks(ctx, TaskFilter{RoomID: spare.ID})
	require.NoError(t, err)
	assert.Empty(t, tasks)

	assert.ErrorIs(t, s.DeleteRoom(ctx, 999), ErrNotFound)
}

func TestMaintenanceTaskBlocksRoom(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	room := mustRoom(t, s, "401", 4)

	task := model.HousekeepingTask{RoomID: room.ID, Kind: model.TaskMaintenance, Notes: "AC leak"}
	require.NoError(t, s.CreateTask(ctx, &task))
	assert.Equal(t, model.TaskPending, task.Status)

	got, err := s.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoomMaintenance, got.Status)

	assignee := "Meena"
	task, err = s.UpdateTask(ctx, task.ID, TaskUpdate{Assignee: &assignee}, day(1))
	require.NoError(t, err)
	assert.Equal(t, "Meena", task.Assignee)

	tasks, err := s.ListTasks(ctx, TaskFilter{Assignee: "Meena"})
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	done := model.TaskDone
	_, err = s.UpdateTask(ctx, task.ID, TaskUpdate{Status: &done}, day(1))
	require.NoError(t, err)
	got, err = s.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoomAvailable, got.Status)

	bad := model.HousekeepingTask{RoomID: 999, Kind: model.TaskCleaning}
	assert.ErrorIs(t, s.CreateTask(ctx, &bad), ErrNotFound)
}

func TestRecordMovement(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	item := model.InventoryItem{SKU: "TOW-01", Name: "Bath towel", Quantity: 10, ReorderLevel: 5}
	require.NoError(t, s.CreateItem(ctx, &item))

	testCases := []struct {
		name     string
		kind     string
		qty      float64
		expected float64
		err      error
	}{
		{"receive", model.MovementIn, 5, 15, nil},
		{"issue", model.MovementOut, 12, 3, nil},
		{"overdraw rejected", model.MovementOut, 4, 3, ErrInsufficientStock},
		{"negative adjust", model.MovementAdjust, -1, 2, nil},
		{"adjust below zero rejected", model.MovementAdjust, -3, 2, ErrInsufficientStock},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.RecordMovement(ctx, &model.StockMovement{ItemID: item.ID, Kind: tc.kind, Quantity: tc.qty})
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, got.Quantity)
			}
		})
	}

	movements, err := s.ListMovements(ctx, item.ID)
	require.NoError(t, err)
	assert.Len(t, movements, 3)

	low, err := s.ListItems(ctx, true)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, 2.0, low[0].Quantity)

	_, err = s.RecordMovement(ctx, &model.StockMovement{ItemID: 999, Kind: model.MovementIn, Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateFoodOrder(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	tea := model.MenuItem{Name: "Masala Chai", Price: 60, Available: true}
	thali := model.MenuItem{Name: "Veg Thali", Price: 320, Available: true}
	soup := model.MenuItem{Name: "Soup of the day", Price: 150, Available: false}
	for _, m := range []*model.MenuItem{&tea, &thali, &soup} {
		require.NoError(t, s.CreateMenuItem(ctx, m))
	}

	order := model.FoodOrder{TableLabel: "T4"}
	require.NoError(t, s.CreateFoodOrder(ctx, &order, []OrderItem{
		{MenuItemID: tea.ID, Quantity: 2},
		{MenuItemID: thali.ID, Quantity: 1},
	}, 5))
	assert.Equal(t, 440.0, order.Subtotal)
	assert.Equal(t, 22.0, order.Tax)
	assert.Equal(t, 462.0, order.Total)
	assert.Equal(t, model.OrderOpen, order.Status)
	assert.Len(t, order.OrderLines(), 2)

	unavailable := model.FoodOrder{}
	err := s.CreateFoodOrder(ctx, &unavailable, []OrderItem{{MenuItemID: soup.ID, Quantity: 1}}, 5)
	assert.ErrorIs(t, err, ErrMenuItemUnavailable)

	room := mustRoom(t, s, "101", 1)
	b := mustBook(t, s, room.ID, day(1), day(2))
	charged := model.FoodOrder{BookingID: &b.ID}
	err = s.CreateFoodOrder(ctx, &charged, []OrderItem{{MenuItemID: tea.ID, Quantity: 1}}, 5)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	paid, err := s.SetFoodOrderStatus(ctx, order.ID, model.OrderPaid)
	require.NoError(t, err)
	assert.Equal(t, model.OrderPaid, paid.Status)
	_, err = s.SetFoodOrderStatus(ctx, order.ID, model.OrderCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	menu, err := s.ListMenuItems(ctx, true)
	require.NoError(t, err)
	assert.Len(t, menu, 2)
}

func TestAccountsSummary(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	for _, e := range []model.AccountEntry{
		{Date: day(1), Kind: model.EntryIncome, Category: "rooms", Amount: 8960},
		{Date: day(2), Kind: model.EntryIncome, Category: "food", Amount: 462.5},
		{Date: day(2), Kind: model.EntryExpense, Category: "laundry", Amount: 1200.25},
		{Date: day(9), Kind: model.EntryExpense, Category: "repairs", Amount: 5000},
	} {
		e := e
		require.NoError(t, s.CreateEntry(ctx, &e))
	}

	sum, err := s.Summary(ctx, EntryFilter{From: day(1), To: day(5)})
	require.NoError(t, err)
	assert.Equal(t, AccountSummary{Income: 9422.5, Expense: 1200.25, Net: 8222.25}, sum)

	expenses, err := s.ListEntries(ctx, EntryFilter{Kind: model.EntryExpense})
	require.NoError(t, err)
	assert.Len(t, expenses, 2)

	empty, err := s.Summary(ctx, EntryFilter{From: day(20), To: day(21)})
	require.NoError(t, err)
	assert.Equal(t, AccountSummary{}, empty)
}

func TestOccupancy(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	r1 := mustRoom(t, s, "101", 1)
	r2 := mustRoom(t, s, "102", 1)
	mustRoom(t, s, "103", 1)
	mustRoom(t, s, "104", 1)
	mustBook(t, s, r1.ID, day(1), day(3))
	mustBook(t, s, r2.ID, day(2), day(4))

	days, err := s.Occupancy(ctx, day(1), day(4))
	require.NoError(t, err)
	require.Len(t, days, 4)

	var booked []int64
	for _, d := range days {
		assert.Equal(t, int64(4), d.Rooms)
		booked = append(booked, d.Booked)
	}
	assert.Equal(t, []int64{1, 2, 1, 0}, booked)
	assert.Equal(t, 50.0, days[1].Percentage)

	_, err = s.Occupancy(ctx, day(4), day(1))
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = s.Occupancy(ctx, day(1), day(1).AddDate(2, 0, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestGuestPreferenceUpsert(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	p := model.GuestPreference{GuestEmail: "asha@example.com", BedType: "King", Smoking: "non-smoking", CreatedAt: day(1)}
	require.NoError(t, s.UpsertGuestPreference(ctx, &p))

	p2 := model.GuestPreference{GuestEmail: "asha@example.com", BedType: "Queen", Balcony: true, CreatedAt: day(5)}
	require.NoError(t, s.UpsertGuestPreference(ctx, &p2))
	assert.True(t, p2.CreatedAt.Equal(day(1)), "created_at must survive an update, got %s", p2.CreatedAt)
	assert.Equal(t, "Queen", p2.BedType)

	got, err := s.GetGuestPreference(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Queen", got.BedType)
	assert.True(t, got.Balcony)
	assert.Equal(t, "", got.Smoking)

	_, err = s.GetGuestPreference(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubscriptionsForFloor(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	subs := []model.PushSubscription{
		{Endpoint: "https://push.example/all", P256DH: "k", Auth: "a", Floors: model.IntList(nil)},
		{Endpoint: "https://push.example/f2", P256DH: "k", Auth: "a", Floors: model.IntList([]int{2})},
		{Endpoint: "https://push.example/f3", P256DH: "k", Auth: "a", Floors: model.IntList([]int{3, 4})},
	}
	for i := range subs {
		subs[i].CreatedAt = day(1)
		require.NoError(t, s.UpsertSubscription(ctx, &subs[i]))
	}

	got, err := s.SubscriptionsForFloor(ctx, 3)
	require.NoError(t, err)
	var endpoints []string
	for _, sub := range got {
		endpoints = append(endpoints, sub.Endpoint)
	}
	assert.ElementsMatch(t, []string{"https://push.example/all", "https://push.example/f3"}, endpoints)

	moved := model.PushSubscription{Endpoint: "https://push.example/f2", P256DH: "k2", Auth: "a2", Floors: model.IntList([]int{3}), CreatedAt: day(2)}
	require.NoError(t, s.UpsertSubscription(ctx, &moved))
	got, err = s.SubscriptionsForFloor(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	require.NoError(t, s.DeleteSubscription(ctx, "https://push.example/all"))
	_, err = s.GetSubscription(ctx, "https://push.example/all")
	assert.ErrorIs(t, err, ErrNotFound)
}

// Any is a helper for sqlmock to match any argument.
type Any struct{}

// Match satisfies the sqlmock.Argument interface
func (a Any) Match(v driver.Value) bool {
	return true
}
