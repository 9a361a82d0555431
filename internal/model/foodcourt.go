package model

import (
	"time"

	"gorm.io/datatypes"
)

// Food order statuses.
const (
	OrderOpen      = "open"
	OrderPaid      = "paid"
	OrderCancelled = "cancelled"
)

// MenuItem is something the food court sells.
type MenuItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Category  string    `gorm:"size:64;index" json:"category"`
	Price     float64   `gorm:"not null" json:"price"`
	Available bool      `gorm:"not null" json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderLine is a priced line stored inside FoodOrder.Lines.
type OrderLine struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

// FoodOrder is a POS ticket, optionally charged to a booking.
type FoodOrder struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	BookingID  *uint          `gorm:"index" json:"booking_id,omitempty"`
	TableLabel string         `gorm:"size:32" json:"table_label"`
	Lines      datatypes.JSON `json:"lines"`
	Subtotal   float64        `gorm:"not null" json:"subtotal"`
	Tax        float64        `gorm:"not null" json:"tax"`
	Total      float64        `gorm:"not null" json:"total"`
	Status     string         `gorm:"size:16;not null;index" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// OrderLines decodes the stored lines.
func (o FoodOrder) OrderLines() []OrderLine {
	return decodeList[OrderLine](o.Lines)
}

// SetOrderLines encodes lines into the order.
func (o *FoodOrder) SetOrderLines(lines []OrderLine) {
	if lines == nil {
		lines = []OrderLine{}
	}
	o.Lines = encode(lines)
}
