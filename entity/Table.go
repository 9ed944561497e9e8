package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Orders []Order `json:"-"`
}
