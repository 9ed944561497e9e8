package entity

import (
	"gorm.io/gorm"
)

// Modifier is a product add-on/variation carrying a price delta.
type Modifier struct {
	gorm.Model
	Name       string `gorm:"not null" json:"name"`
	PriceDelta int64  `json:"priceDelta"` // centavos, may be negative

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
