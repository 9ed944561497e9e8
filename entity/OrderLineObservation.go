package entity

import (
	"gorm.io/gorm"
)

type OrderLineObservation struct {
	gorm.Model
	Text string `gorm:"not null" json:"text"`

	OrderLineID uint      `json:"orderLineId"`
	OrderLine   OrderLine `json:"-"`
}
