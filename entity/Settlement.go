package entity

import (
	"gorm.io/gorm"
)

// Settlement is the immutable bill snapshot produced by a conclude call.
// Amounts are recomputed from line state at conclude time and never mutated
// afterwards; the record exists for reprinting and audit.
type Settlement struct {
	gorm.Model
	Identifier      string `gorm:"uniqueIndex;size:36;not null" json:"orderIdentifier"`
	SumIndividually bool   `json:"sumIndividually"`

	AdditionalPercent float64 `json:"additionalPercent"`
	Subtotal          int64   `json:"subtotal"`         // centavos
	AdditionalAmount  int64   `json:"additionalAmount"` // centavos
	TotalAmount       int64   `json:"totalAmount"`      // centavos
	FeePaidValue      int64   `json:"feePaidValue"`     // centavos, informational

	TableID uint  `json:"tableId"`
	Table   Table `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Bills []SettlementBill `json:"bills"`
}

// SettlementBill is the per-order breakdown inside a settlement. With
// sumIndividually=false the top-level figures are the sums over these.
type SettlementBill struct {
	gorm.Model
	SettlementID uint `json:"settlementId"`

	OrderID       uint   `json:"orderId"`
	PaymentMethod string `json:"paymentMethod"`
	CardBrand     string `json:"cardBrand,omitempty"`

	Subtotal         int64   `json:"subtotal"`
	AdditionalAmount int64   `json:"additionalAmount"`
	TotalAmount      int64   `json:"totalAmount"`
	FeePercent       float64 `json:"feePercent"`
	FeeFixed         int64   `json:"feeFixed"`
	FeePaidValue     int64   `json:"feePaidValue"`

	Items []SettlementItem `json:"items"`
}

// SettlementItem is one itemized product total on a bill.
type SettlementItem struct {
	gorm.Model
	SettlementBillID uint `json:"settlementBillId"`

	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`
	KitchenName string `json:"kitchenName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	Total       int64  `json:"total"`
}
