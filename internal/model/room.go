package model

import (
	"time"

	"gorm.io/datatypes"

	"hotel-frontoffice-backend/internal/recommend"
)

// Room statuses.
const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomCleaning    = "cleaning"
	RoomMaintenance = "maintenance"
)

// Room represents a bookable hotel room.
type Room struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Number         string         `gorm:"uniqueIndex;size:32;not null" json:"number"`
	Type           string         `gorm:"size:64;not null;index" json:"type"`
	Wing           string         `gorm:"size:16" json:"wing"`
	Floor          int            `gorm:"not null;index" json:"floor"`
	BedType        string         `gorm:"size:32" json:"bed_type"`
	ViewType       string         `gorm:"size:32" json:"view_type"`
	SizeSqm        float64        `json:"size_sqm"`
	Rate           float64        `gorm:"not null" json:"rate"`
	Amenities      datatypes.JSON `json:"amenities"`
	Accessible     bool           `gorm:"not null;default:false" json:"is_accessible"`
	SmokingAllowed bool           `gorm:"not null;default:false" json:"is_smoking_allowed"`
	Balcony        bool           `gorm:"not null;default:false" json:"has_balcony"`
	Soundproof     bool           `gorm:"not null;default:false" json:"is_soundproof"`
	AirPurifier    bool           `gorm:"not null;default:false" json:"has_air_purifier"`
	Status         string         `gorm:"size:16;not null;default:available;index" json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Candidate converts the room into scorer input.
func (r Room) Candidate() recommend.Candidate {
	return recommend.Candidate{
		RoomID:         r.ID,
		RoomNumber:     r.Number,
		RoomType:       r.Type,
		Rate:           r.Rate,
		BedType:        r.BedType,
		ViewType:       r.ViewType,
		Floor:          r.Floor,
		SizeSqm:        r.SizeSqm,
		Amenities:      Strings(r.Amenities),
		Accessible:     r.Accessible,
		SmokingAllowed: r.SmokingAllowed,
		Balcony:        r.Balcony,
		Soundproof:     r.Soundproof,
		AirPurifier:    r.AirPurifier,
	}
}

// Candidates converts rooms into scorer input, preserving order.
func Candidates(rooms []Room) []recommend.Candidate {
	out := make([]recommend.Candidate, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.Candidate())
	}
	return out
}
