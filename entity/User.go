package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:waiter" json:"role"` // admin | waiter | kitchen

	RestaurantID *uint       `json:"restaurantId,omitempty"`
	Restaurant   *Restaurant `json:"-"`
}
