package services

import (
	"errors"

	"github.com/Orbe-ERP/pos-backend/entity"
	"github.com/Orbe-ERP/pos-backend/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB     *gorm.DB
	Repo   *repository.OrderRepository
	Events EventPublisher
	Locks  *TableLocks
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, events EventPublisher, locks *TableLocks) *OrderService {
	if events == nil {
		events = NoopPublisher{}
	}
	if locks == nil {
		locks = NewTableLocks()
	}
	return &OrderService{DB: db, Repo: repo, Events: events, Locks: locks}
}

// ----- DTOs from Controller -----

type LineModifierIn struct {
	ModifierID uint   `json:"modifierId" binding:"required"`
	Quantity   int    `json:"quantity"`
	TextValue  string `json:"textValue"`
}

type OrderLineIn struct {
	ProductID    uint             `json:"productId" binding:"required"`
	Quantity     int              `json:"quantity" binding:"required,min=1"`
	Observations []string         `json:"observations"`
	Modifiers    []LineModifierIn `json:"modifiers"`
}

type CreateOrderReq struct {
	RestaurantID  uint          `json:"restaurantId" binding:"required"`
	TableID       uint          `json:"tableId" binding:"required"`
	ToTake        bool          `json:"toTake"`
	PaymentMethod string        `json:"paymentMethod"`
	Items         []OrderLineIn `json:"items" binding:"required,min=1"`
}

// ----- Create -----

// Create opens a new order on a table and routes each line to its product's
// station. Prices and modifier deltas are snapshotted at this point.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	var table entity.Table
	if err := s.DB.First(&table, req.TableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if table.RestaurantID != req.RestaurantID {
		return nil, validationf("table not in this restaurant")
	}
	if req.PaymentMethod != "" && !entity.KnownPaymentMethod(req.PaymentMethod) {
		return nil, validationf("unknown payment method %q", req.PaymentMethod)
	}

	type lineTmp struct {
		product entity.Product
		in      OrderLineIn
		mods    []entity.OrderLineModifier
	}
	tmp := make([]lineTmp, 0, len(req.Items))
	for _, it := range req.Items {
		var p entity.Product
		if err := s.DB.First(&p, it.ProductID).Error; err != nil {
			return nil, validationf("product %d not found", it.ProductID)
		}
		if p.RestaurantID != req.RestaurantID {
			return nil, validationf("product not in this restaurant")
		}

		mods := make([]entity.OrderLineModifier, 0, len(it.Modifiers))
		for _, m := range it.Modifiers {
			var mod entity.Modifier
			if err := s.DB.First(&mod, m.ModifierID).Error; err != nil {
				return nil, validationf("modifier %d not found", m.ModifierID)
			}
			qty := m.Quantity
			if qty <= 0 {
				qty = 1
			}
			mods = append(mods, entity.OrderLineModifier{
				ModifierID: mod.ID,
				Quantity:   qty,
				PriceDelta: mod.PriceDelta,
				TextValue:  m.TextValue,
			})
		}
		tmp = append(tmp, lineTmp{product: p, in: it, mods: mods})
	}

	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Status:        entity.OrderOpen,
			PaymentMethod: req.PaymentMethod,
			ToTake:        req.ToTake,
			TableID:       req.TableID,
			RestaurantID:  req.RestaurantID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, t := range tmp {
			line := entity.OrderLine{
				OrderID:   order.ID,
				ProductID: t.product.ID,
				KitchenID: t.product.KitchenID,
				Quantity:  t.in.Quantity,
				UnitPrice: t.product.Price,
				Status:    entity.LinePending,
				Modifiers: t.mods,
			}
			for _, obs := range t.in.Observations {
				line.Observations = append(line.Observations, entity.OrderLineObservation{Text: obs})
			}
			if err := s.Repo.CreateLine(tx, &line); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// publish after commit, full payload
	full, err := s.Repo.GetOrderFull(orderID)
	if err != nil {
		return nil, err
	}
	s.Events.Publish(req.RestaurantID, EventOrderCreated, full)
	return full, nil
}

// AppendLines adds items to an already open order.
func (s *OrderService) AppendLines(orderID uint, items []OrderLineIn) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	lock := s.Locks.For(o.TableID)
	lock.Lock()
	defer lock.Unlock()

	// re-read under the lock: a conclude may have closed the session while
	// we were waiting, and lines added past that point are never billed
	o, err = s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.OrderOpen {
		return nil, ErrConflict
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			var p entity.Product
			if err := tx.First(&p, it.ProductID).Error; err != nil {
				return validationf("product %d not found", it.ProductID)
			}
			if p.RestaurantID != o.RestaurantID {
				return validationf("product not in this restaurant")
			}
			line := entity.OrderLine{
				OrderID:   o.ID,
				ProductID: p.ID,
				KitchenID: p.KitchenID,
				Quantity:  it.Quantity,
				UnitPrice: p.Price,
				Status:    entity.LinePending,
			}
			for _, obs := range it.Observations {
				line.Observations = append(line.Observations, entity.OrderLineObservation{Text: obs})
			}
			for _, m := range it.Modifiers {
				var mod entity.Modifier
				if err := tx.First(&mod, m.ModifierID).Error; err != nil {
					return validationf("modifier %d not found", m.ModifierID)
				}
				qty := m.Quantity
				if qty <= 0 {
					qty = 1
				}
				line.Modifiers = append(line.Modifiers, entity.OrderLineModifier{
					ModifierID: mod.ID,
					Quantity:   qty,
					PriceDelta: mod.PriceDelta,
					TextValue:  m.TextValue,
				})
			}
			if err := s.Repo.CreateLine(tx, &line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.GetOrderFull(o.ID)
}

// ----- Reads -----

func (s *OrderService) ListForRestaurant(restID uint, status string) ([]entity.Order, error) {
	if status != "" && status != entity.OrderOpen && status != entity.OrderCompleted && status != entity.OrderCanceled {
		return nil, validationf("unknown order status %q", status)
	}
	return s.Repo.ListForRestaurant(restID, status)
}

func (s *OrderService) OpenOrdersForTable(tableID uint) ([]entity.Order, error) {
	return s.Repo.OpenOrdersForTable(tableID)
}

// KitchenQueue is the display read: active lines grouped by station, with
// hidden stations filtered out.
func (s *OrderService) KitchenQueue(restID uint) (map[string][]entity.OrderLine, error) {
	lines, err := s.Repo.ActiveLinesForRestaurant(restID)
	if err != nil {
		return nil, err
	}
	visible := lines[:0:0]
	for _, l := range lines {
		if l.KitchenID != 0 && !l.Kitchen.ShowOnKitchen {
			continue
		}
		visible = append(visible, l)
	}
	return GroupByKitchen(visible), nil
}

// ----- Mutations -----

func (s *OrderService) SetPaymentMethod(orderID uint, method, brand string) (*entity.Order, error) {
	if !entity.KnownPaymentMethod(method) {
		return nil, validationf("unknown payment method %q", method)
	}
	if brand != "" && !entity.CardMethod(method) {
		return nil, validationf("brand only applies to card methods")
	}
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// serialized with conclude: a method change must not land between the
	// settlement's pricing read and its commit
	lock := s.Locks.For(order.TableID)
	lock.Lock()
	defer lock.Unlock()

	affected, err := s.Repo.UpdatePaymentMethod(orderID, method, brand)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// the order exists but is no longer open
		return nil, ErrConflict
	}
	return s.Repo.GetOrderFull(orderID)
}

// UpdateLineQuantity mutates quantity while the line is still PENDING.
func (s *OrderService) UpdateLineQuantity(lineID uint, qty int) (*entity.OrderLine, error) {
	if qty < 1 {
		return nil, validationf("quantity must be positive")
	}
	line, err := s.Repo.GetLine(lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	lock := s.Locks.For(line.Order.TableID)
	lock.Lock()
	defer lock.Unlock()

	affected, err := s.Repo.UpdateLineQuantityGuard(lineID, qty)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, &TransitionError{LineID: lineID, From: line.Status, To: line.Status}
	}
	return s.Repo.GetLine(lineID)
}
