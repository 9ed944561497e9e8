package entity

import (
	"gorm.io/gorm"
)

// OrderLine statuses, in kitchen-workflow order.
const (
	LinePending         = "PENDING"
	LineWorkInProgress  = "WORK_IN_PROGRESS"
	LineWaitingDelivery = "WAITING_DELIVERY"
	LineDelivered       = "DELIVERED"
	LineCanceled        = "CANCELED"
)

// OrderLine is the unit of kitchen workflow (one ticket).
// UnitPrice is snapshotted from the product at order time.
type OrderLine struct {
	gorm.Model
	Quantity  int    `gorm:"not null" json:"quantity"`
	UnitPrice int64  `json:"unitPrice"` // centavos
	Status    string `gorm:"not null;default:PENDING" json:"status"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"product"`

	KitchenID uint    `json:"kitchenId"`
	Kitchen   Kitchen `json:"kitchen"`

	Observations []OrderLineObservation `json:"observations"`
	Modifiers    []OrderLineModifier    `json:"modifiers"`
}
