package model

import (
	"time"

	"gorm.io/datatypes"

	"hotel-frontoffice-backend/internal/recommend"
)

// GuestPreference holds the stored room preferences of a returning guest.
type GuestPreference struct {
	GuestEmail         string         `gorm:"primaryKey;size:256" json:"guest_email"`
	BedType            string         `gorm:"size:32" json:"bed_type"`
	ViewType           string         `gorm:"size:32" json:"view_type"`
	Floor              *int           `json:"floor"`
	AccessibilityNeeds datatypes.JSON `json:"accessibility_needs"`
	Smoking            string         `gorm:"size:16" json:"smoking_preference"`
	Balcony            bool           `json:"balcony"`
	Soundproof         bool           `json:"soundproof"`
	AirPurifier        bool           `json:"air_purifier"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// Preferences converts the stored record into scorer input for the given stay.
func (g GuestPreference) Preferences(checkIn, checkOut time.Time) recommend.Preferences {
	return recommend.Preferences{
		BedType:            g.BedType,
		ViewType:           g.ViewType,
		Floor:              g.Floor,
		AccessibilityNeeds: Strings(g.AccessibilityNeeds),
		Smoking:            recommend.Smoking(g.Smoking),
		WantsBalcony:       g.Balcony,
		WantsSoundproof:    g.Soundproof,
		WantsAirPurifier:   g.AirPurifier,
		CheckIn:            checkIn,
		CheckOut:           checkOut,
	}
}
