package model

import "time"

// Account entry kinds.
const (
	EntryIncome  = "income"
	EntryExpense = "expense"
)

// AccountEntry is one line in the accounts ledger.
type AccountEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Kind      string    `gorm:"size:16;not null;index" json:"kind"`
	Category  string    `gorm:"size:64" json:"category"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Reference string    `gorm:"size:64" json:"reference"`
	Memo      string    `gorm:"size:256" json:"memo"`
	CreatedAt time.Time `json:"created_at"`
}
