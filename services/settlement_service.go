package services

import (
	"errors"
	"math"

	"github.com/Orbe-ERP/pos-backend/entity"
	"github.com/Orbe-ERP/pos-backend/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettlementService closes a table's open orders into one priced bill.
type SettlementService struct {
	DB          *gorm.DB
	Orders      *repository.OrderRepository
	Settlements *repository.SettlementRepository
	Fees        *PaymentConfigService
	Locks       *TableLocks
}

func NewSettlementService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	settlements *repository.SettlementRepository,
	fees *PaymentConfigService,
	locks *TableLocks,
) *SettlementService {
	if locks == nil {
		locks = NewTableLocks()
	}
	return &SettlementService{DB: db, Orders: orders, Settlements: settlements, Fees: fees, Locks: locks}
}

type ConcludeReq struct {
	RestaurantID      uint    `json:"restaurantId" binding:"required"`
	TableID           uint    `json:"tableId" binding:"required"`
	SumIndividually   bool    `json:"sumIndividually"`
	AdditionalPercent float64 `json:"additional"`
}

func percentOf(amount int64, p float64) int64 {
	return int64(math.Round(float64(amount) * p / 100.0))
}

// billable reports whether a line counts toward totals at conclude time.
// PENDING/WORK_IN_PROGRESS lines are canceled by the settlement itself.
func billable(status string) bool {
	return status == entity.LineWaitingDelivery || status == entity.LineDelivered
}

// Conclude settles the table's open session. The whole operation is one
// atomic unit under the table's lock: either every included order is marked
// COMPLETED and the snapshot is persisted, or nothing changes. A retry for a
// table with no remaining open orders returns the already-produced snapshot.
func (s *SettlementService) Conclude(req *ConcludeReq) (*entity.Settlement, error) {
	if req.AdditionalPercent < 0 || req.AdditionalPercent > 100 {
		return nil, validationf("additional percent out of range")
	}

	lock := s.Locks.For(req.TableID)
	lock.Lock()
	defer lock.Unlock()

	open, err := s.Orders.OpenOrdersForTable(req.TableID)
	if err != nil {
		return nil, err
	}

	if len(open) == 0 {
		// idempotent retry: hand back the settlement this session produced
		last, err := s.Settlements.LatestForTable(req.TableID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNothingToSettle
			}
			return nil, err
		}
		return last, nil
	}

	for _, o := range open {
		if o.RestaurantID != req.RestaurantID {
			return nil, validationf("table not in this restaurant")
		}
	}

	// Price everything, fees included, before touching any state: a fee
	// resolver failure must leave the orders untouched.
	settlement := entity.Settlement{
		Identifier:        uuid.NewString(),
		SumIndividually:   req.SumIndividually,
		AdditionalPercent: req.AdditionalPercent,
		TableID:           req.TableID,
		RestaurantID:      req.RestaurantID,
	}
	orderIDs := make([]uint, 0, len(open))

	for _, o := range open {
		orderIDs = append(orderIDs, o.ID)

		bill := entity.SettlementBill{
			OrderID:       o.ID,
			PaymentMethod: o.PaymentMethod,
			CardBrand:     o.CardBrand,
		}

		// itemize per product, in first-seen order
		idx := make(map[uint]int)
		for _, l := range o.Lines {
			if !billable(l.Status) {
				continue
			}
			lineTotal := l.UnitPrice * int64(l.Quantity)
			for _, m := range l.Modifiers {
				lineTotal += m.PriceDelta * int64(m.Quantity)
			}
			bill.Subtotal += lineTotal

			if i, ok := idx[l.ProductID]; ok {
				bill.Items[i].Quantity += l.Quantity
				bill.Items[i].Total += lineTotal
			} else {
				idx[l.ProductID] = len(bill.Items)
				bill.Items = append(bill.Items, entity.SettlementItem{
					ProductID:   l.ProductID,
					ProductName: l.Product.Name,
					KitchenName: l.Kitchen.Name,
					Quantity:    l.Quantity,
					UnitPrice:   l.UnitPrice,
					Total:       lineTotal,
				})
			}
		}

		// service charge first, then the fee on the charged total
		bill.AdditionalAmount = percentOf(bill.Subtotal, req.AdditionalPercent)
		bill.TotalAmount = bill.Subtotal + bill.AdditionalAmount

		fee, err := s.Fees.Resolve(req.RestaurantID, o.PaymentMethod, o.CardBrand)
		if err != nil {
			return nil, err
		}
		bill.FeePercent = fee.FeePercent
		bill.FeeFixed = fee.FeeFixed
		// informational for the merchant; never netted into TotalAmount
		bill.FeePaidValue = percentOf(bill.TotalAmount, fee.FeePercent) + fee.FeeFixed

		settlement.Subtotal += bill.Subtotal
		settlement.AdditionalAmount += bill.AdditionalAmount
		settlement.TotalAmount += bill.TotalAmount
		settlement.FeePaidValue += bill.FeePaidValue

		settlement.Bills = append(settlement.Bills, bill)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// unfinished lines are canceled at settlement time (kept for audit,
		// excluded from totals)
		if err := s.Orders.CancelUnfinishedLines(tx, orderIDs); err != nil {
			return err
		}
		if err := s.Settlements.Create(tx, &settlement); err != nil {
			return err
		}
		return s.Orders.MarkOrdersCompleted(tx, orderIDs, settlement.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.Settlements.ByIdentifier(settlement.Identifier)
}

// Summary fetches a persisted settlement for (re)printing.
func (s *SettlementService) Summary(identifier string) (*entity.Settlement, error) {
	sett, err := s.Settlements.ByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sett, nil
}
