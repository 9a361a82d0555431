package model

import "time"

// Stock movement kinds.
const (
	MovementIn     = "in"
	MovementOut    = "out"
	MovementAdjust = "adjust"
)

// InventoryItem is a stocked consumable (linen, toiletries, pantry).
type InventoryItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SKU          string    `gorm:"uniqueIndex;size:64;not null" json:"sku"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Category     string    `gorm:"size:64;index" json:"category"`
	Unit         string    `gorm:"size:16" json:"unit"`
	Quantity     float64   `gorm:"not null;default:0" json:"quantity"`
	ReorderLevel float64   `gorm:"not null;default:0" json:"reorder_level"`
	UnitCost     float64   `gorm:"not null;default:0" json:"unit_cost"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StockMovement is one entry in the stock ledger.
// For adjustments Quantity is the signed delta.
type StockMovement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemID    uint      `gorm:"index;not null" json:"item_id"`
	Kind      string    `gorm:"size:16;not null" json:"kind"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
	Reason    string    `gorm:"size:256" json:"reason"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// Associations
	Item InventoryItem `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-"`
}
