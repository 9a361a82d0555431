package db

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"hotel-frontoffice-backend/internal/model"
)

// Seed creates a demo floor plan and menu when the tables are empty.
func Seed(db *gorm.DB) error {
	var roomCount int64
	if err := db.Model(&model.Room{}).Count(&roomCount).Error; err != nil {
		return err
	}
	if roomCount == 0 {
		rooms := demoRooms()
		if err := db.Create(&rooms).Error; err != nil {
			return fmt.Errorf("seed rooms: %w", err)
		}
		log.Printf("Seeded %d rooms", len(rooms))
	}

	var menuCount int64
	if err := db.Model(&model.MenuItem{}).Count(&menuCount).Error; err != nil {
		return err
	}
	if menuCount == 0 {
		menu := []model.MenuItem{
			{Name: "Masala Chai", Category: "beverages", Price: 60, Available: true},
			{Name: "Filter Coffee", Category: "beverages", Price: 80, Available: true},
			{Name: "Veg Thali", Category: "mains", Price: 320, Available: true},
			{Name: "Paneer Tikka", Category: "starters", Price: 280, Available: true},
		}
		if err := db.Create(&menu).Error; err != nil {
			return fmt.Errorf("seed menu: %w", err)
		}
		log.Printf("Seeded %d menu items", len(menu))
	}
	return nil
}

func demoRooms() []model.Room {
	var rooms []model.Room
	for floor := 1; floor <= 4; floor++ {
		for seq := 1; seq <= 6; seq++ {
			r := model.Room{
				Number:    fmt.Sprintf("%d%02d", floor, seq),
				Floor:     floor,
				Type:      "Standard",
				BedType:   "Queen",
				ViewType:  "City",
				SizeSqm:   24,
				Rate:      2500,
				Amenities: model.StringList([]string{"wifi", "tv"}),
				Status:    model.RoomAvailable,
			}
			if seq%2 == 0 {
				r.BedType = "Twin"
			}
			if floor >= 3 {
				r.Type = "Deluxe"
				r.BedType = "King"
				r.ViewType = "Sea"
				r.SizeSqm = 32
				r.Rate = 5500
				r.Balcony = true
				r.Amenities = model.StringList([]string{"wifi", "tv", "minibar"})
			}
			if floor == 1 && seq == 1 {
				r.Accessible = true
			}
			if floor == 2 && seq == 6 {
				r.SmokingAllowed = true
			}
			if floor == 4 {
				r.Soundproof = true
				r.AirPurifier = true
			}
			rooms = append(rooms, r)
		}
	}
	return rooms
}
