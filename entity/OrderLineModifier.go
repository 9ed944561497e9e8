package entity

import (
	"gorm.io/gorm"
)

// OrderLineModifier is one modifier applied to a line. PriceDelta is
// snapshotted at order time; the application has no lifecycle of its own.
type OrderLineModifier struct {
	gorm.Model
	Quantity   int    `gorm:"not null;default:1" json:"quantity"`
	PriceDelta int64  `json:"priceDelta"` // centavos
	TextValue  string `json:"textValue,omitempty"`

	OrderLineID uint      `json:"orderLineId"`
	OrderLine   OrderLine `json:"-"`

	ModifierID uint     `json:"modifierId"`
	Modifier   Modifier `json:"-"`
}
