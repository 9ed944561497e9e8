package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name  string `gorm:"not null" json:"name"`
	Price int64  `json:"price"` // centavos

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	KitchenID uint    `json:"kitchenId"`
	Kitchen   Kitchen `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderLines []OrderLine `json:"-"`
}
