package entity

import (
	"gorm.io/gorm"
)

// PaymentConfig holds the merchant-side fee for one payment method/brand.
// Unique per (restaurant, method, brand); brand is empty for PIX/CASH.
type PaymentConfig struct {
	gorm.Model
	Method     string  `gorm:"not null;uniqueIndex:idx_payment_config_key" json:"method"`
	Brand      string  `gorm:"uniqueIndex:idx_payment_config_key" json:"brand"`
	FeePercent float64 `json:"feePercent"`
	FeeFixed   int64   `json:"feeFixed"` // centavos

	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_payment_config_key" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
