package repository

import (
	"github.com/Orbe-ERP/pos-backend/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderFull loads an order with lines, products, kitchens, observations
// and modifier applications — the payload shape the clients consume.
func (r *OrderRepository) GetOrderFull(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Lines", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_lines.id") }).
		Preload("Lines.Product").
		Preload("Lines.Kitchen").
		Preload("Lines.Observations").
		Preload("Lines.Modifiers").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders?restaurantId=&status=
func (r *OrderRepository) ListForRestaurant(restID uint, status string) ([]entity.Order, error) {
	q := r.DB.
		Preload("Lines", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_lines.id") }).
		Preload("Lines.Product").
		Preload("Lines.Kitchen").
		Preload("Lines.Observations").
		Preload("Lines.Modifiers").
		Where("restaurant_id = ?", restID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []entity.Order
	err := q.Order("id").Find(&orders).Error
	return orders, err
}

// GET /orders/table/:tableId — the table's open session.
func (r *OrderRepository) OpenOrdersForTable(tableID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Lines", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_lines.id") }).
		Preload("Lines.Product").
		Preload("Lines.Kitchen").
		Preload("Lines.Observations").
		Preload("Lines.Modifiers").
		Where("table_id = ? AND status = ?", tableID, entity.OrderOpen).
		Order("id").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdatePaymentMethod(orderID uint, method, brand string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.OrderOpen).
		Updates(map[string]any{"payment_method": method, "card_brand": brand})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) MarkOrdersCompleted(tx *gorm.DB, orderIDs []uint, settlementID uint) error {
	return tx.Model(&entity.Order{}).
		Where("id IN ? AND status = ?", orderIDs, entity.OrderOpen).
		Updates(map[string]any{"status": entity.OrderCompleted, "settlement_id": settlementID}).Error
}

// ---------------- Order lines ----------------

func (r *OrderRepository) CreateLine(tx *gorm.DB, l *entity.OrderLine) error {
	return tx.Create(l).Error
}

func (r *OrderRepository) GetLine(lineID uint) (*entity.OrderLine, error) {
	var l entity.OrderLine
	if err := r.DB.Preload("Order").First(&l, lineID).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *OrderRepository) GetLines(lineIDs []uint) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.DB.Preload("Order").Where("id IN ?", lineIDs).Find(&lines).Error
	return lines, err
}

// UpdateLineStatusGuard flips a line's status only if it still holds the
// expected one; the rows-affected count tells callers whether they lost a race.
func (r *OrderRepository) UpdateLineStatusGuard(tx *gorm.DB, lineID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.OrderLine{}).
		Where("id = ? AND status = ?", lineID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// UpdateLineQuantityGuard mutates quantity only while the line has not
// entered preparation.
func (r *OrderRepository) UpdateLineQuantityGuard(lineID uint, qty int) (int64, error) {
	res := r.DB.Model(&entity.OrderLine{}).
		Where("id = ? AND status = ?", lineID, entity.LinePending).
		Update("quantity", qty)
	return res.RowsAffected, res.Error
}

// CancelUnfinishedLines moves a set of orders' PENDING/WORK_IN_PROGRESS lines
// to CANCELED. Used at settlement time.
func (r *OrderRepository) CancelUnfinishedLines(tx *gorm.DB, orderIDs []uint) error {
	return tx.Model(&entity.OrderLine{}).
		Where("order_id IN ? AND status IN ?", orderIDs,
			[]string{entity.LinePending, entity.LineWorkInProgress}).
		Update("status", entity.LineCanceled).Error
}

// ActiveLinesForRestaurant is the kitchen-display read: lines of open orders
// still in the active queue, in insertion order.
func (r *OrderRepository) ActiveLinesForRestaurant(restID uint) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.DB.
		Preload("Product").
		Preload("Kitchen").
		Preload("Observations").
		Preload("Modifiers").
		Joins("JOIN orders o ON o.id = order_lines.order_id").
		Where("o.restaurant_id = ? AND o.status = ?", restID, entity.OrderOpen).
		Where("order_lines.status NOT IN ?", []string{entity.LineDelivered, entity.LineCanceled}).
		Order("order_lines.id").
		Find(&lines).Error
	return lines, err
}

// KitchenInUseCount counts non-terminal lines on open orders that still
// reference a station. Guards station deletion: lines on settled orders no
// longer hold the kitchen, whatever state they were left in.
func (r *OrderRepository) KitchenInUseCount(kitchenID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.OrderLine{}).
		Joins("JOIN orders o ON o.id = order_lines.order_id").
		Where("o.status = ?", entity.OrderOpen).
		Where("order_lines.kitchen_id = ? AND order_lines.status NOT IN ?", kitchenID,
			[]string{entity.LineDelivered, entity.LineCanceled}).
		Count(&count).Error
	return count, err
}
