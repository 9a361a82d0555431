package recommend

import "time"

// Smoking is a guest's smoking preference.
type Smoking string

const (
	NoPreference Smoking = ""
	SmokingRoom  Smoking = "smoking"
	NonSmoking   Smoking = "non-smoking"
)

// Valid reports whether s is one of the known preferences.
func (s Smoking) Valid() bool {
	switch s {
	case NoPreference, SmokingRoom, NonSmoking:
		return true
	}
	return false
}

// Preferences are the soft preferences a guest states for a stay.
// Zero values mean "no preference" and never contribute to a score.
type Preferences struct {
	BedType            string    `json:"bed_type,omitempty"`
	ViewType           string    `json:"view_type,omitempty"`
	Floor              *int      `json:"floor,omitempty"`
	AccessibilityNeeds []string  `json:"accessibility_needs,omitempty"`
	Smoking            Smoking   `json:"smoking_preference,omitempty"`
	WantsBalcony       bool      `json:"balcony,omitempty"`
	WantsSoundproof    bool      `json:"soundproof,omitempty"`
	WantsAirPurifier   bool      `json:"air_purifier,omitempty"`
	CheckIn            time.Time `json:"check_in"`
	CheckOut           time.Time `json:"check_out"`
}

// Filters exclude rooms outright. Empty fields impose no constraint.
type Filters struct {
	BedTypes          []string `json:"bed_types,omitempty"`
	ViewTypes         []string `json:"view_types,omitempty"`
	RequireAccessible bool     `json:"accessible,omitempty"`
	SmokingAllowed    *bool    `json:"smoking_allowed,omitempty"`
	MinSizeSqm        float64  `json:"min_size_sqm,omitempty"`
	Amenities         []string `json:"amenities,omitempty"`
}

// Candidate is a room already known to be free for the requested stay.
type Candidate struct {
	RoomID         uint     `json:"room_id"`
	RoomNumber     string   `json:"room_number"`
	RoomType       string   `json:"room_type"`
	Rate           float64  `json:"rate"`
	BedType        string   `json:"bed_type"`
	ViewType       string   `json:"view_type"`
	Floor          int      `json:"floor"`
	SizeSqm        float64  `json:"size_sqm"`
	Amenities      []string `json:"amenities"`
	Accessible     bool     `json:"is_accessible"`
	SmokingAllowed bool     `json:"is_smoking_allowed"`
	Balcony        bool     `json:"has_balcony"`
	Soundproof     bool     `json:"is_soundproof"`
	AirPurifier    bool     `json:"has_air_purifier"`
}

// ScoredRoom is a Candidate with its desirability score.
type ScoredRoom struct {
	Candidate
	Score int `json:"score"`
}
