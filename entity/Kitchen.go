package entity

import (
	"gorm.io/gorm"
)

// Kitchen is a preparation station ("Grill", "Bar", ...).
// Stations with ShowOnKitchen=false are hidden from the kitchen display
// but their lines are billed normally.
type Kitchen struct {
	gorm.Model
	Name          string `gorm:"not null" json:"name"`
	Color         string `json:"color"`
	ShowOnKitchen bool   `gorm:"default:true" json:"showOnKitchen"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Products []Product `json:"-"`
}
