package model

import (
	"time"

	"gorm.io/datatypes"
)

// PushSubscription holds the information for a staff device's browser push subscription.
// Floors limits alerts to rooms on those floors; empty means every floor.
type PushSubscription struct {
	Endpoint  string         `gorm:"primaryKey" json:"endpoint"`
	P256DH    string         `gorm:"column:p256dh;not null" json:"p256dh"`
	Auth      string         `gorm:"not null" json:"auth"`
	Floors    datatypes.JSON `json:"floors"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

// Covers reports whether the subscription wants alerts for the given floor.
func (s PushSubscription) Covers(floor int) bool {
	floors := Ints(s.Floors)
	if len(floors) == 0 {
		return true
	}
	for _, f := range floors {
		if f == floor {
			return true
		}
	}
	return false
}
