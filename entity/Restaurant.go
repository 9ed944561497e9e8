package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	// preload only when needed
	Kitchens       []Kitchen       `json:"-"`
	Tables         []Table         `json:"-"`
	Products       []Product       `json:"-"`
	Orders         []Order         `json:"-"`
	PaymentConfigs []PaymentConfig `json:"-"`
}
