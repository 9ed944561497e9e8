package entity

import (
	"gorm.io/gorm"
)

// Order statuses.
const (
	OrderOpen      = "OPEN"
	OrderCompleted = "COMPLETED"
	OrderCanceled  = "CANCELED"
)

// Payment methods. Brand only applies to card methods.
const (
	PaymentCreditCard = "CREDIT_CARD"
	PaymentDebitCard  = "DEBIT_CARD"
	PaymentPix        = "PIX"
	PaymentCash       = "CASH"
)

// Order is one checkout unit on a table. A table may hold several open
// orders at once (split orders); they are all closed together at settlement.
type Order struct {
	gorm.Model
	Status        string `gorm:"not null;default:OPEN" json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	CardBrand     string `json:"cardBrand"`
	ToTake        bool   `json:"toTake"`

	TableID uint  `json:"tableId"`
	Table   Table `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Lines []OrderLine `json:"lines"`

	SettlementID *uint `json:"settlementId,omitempty"`
}

// KnownPaymentMethod reports whether m is one of the supported methods.
func KnownPaymentMethod(m string) bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentPix, PaymentCash:
		return true
	}
	return false
}

// CardMethod reports whether m is a card method (the only ones with brands).
func CardMethod(m string) bool {
	return m == PaymentCreditCard || m == PaymentDebitCard
}
