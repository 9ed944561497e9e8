package services

import (
	"errors"
	"testing"

	"github.com/Orbe-ERP/pos-backend/entity"
)

func TestConcludeArithmetic(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	orders := newOrderService(db)
	settle := newSettlementService(db, orders)

	// R$50.00 steak, credit card fee 3% + 0 fixed
	if _, err := settle.Fees.Upsert(f.Restaurant.ID, entity.PaymentCreditCard, "", 3, 0); err != nil {
		t.Fatalf("upsert fee: %v", err)
	}

	order := createOrder(t, orders, f, f.Steak.ID)
	if _, err := orders.SetPaymentMethod(order.ID, entity.PaymentCreditCard, ""); err != nil {
		t.Fatalf("set payment method: %v", err)
	}
	if _, err := orders.AdvanceLines([]uint{order.Lines[0].ID}, entity.LineDelivered); err != nil {
		t.Fatalf("deliver line: %v", err)
	}

	s, err := settle.Conclude(&ConcludeReq{
		RestaurantID:      f.Restaurant.ID,
		TableID:           f.Table.ID,
		AdditionalPercent: 10,
	})
	if err != nil {
		t.Fatalf("conclude: %v", err)
	}

	if s.Subtotal != 5000 {
		t.Errorf("subtotal = %d, want 5000", s.Subtotal)
	}
	if s.AdditionalAmount != 500 {
		t.Errorf("additionalAmount = %d, want 500", s.AdditionalAmount)
	}
	if s.TotalAmount != 5500 {
		t.Errorf("totalAmount = %d, want 5500", s.TotalAmount)
	}
	// fee is reported, not netted: 5500 * 3% = 165
	if s.FeePaidValue != 165 {
		t.Errorf("feePaidValue = %d, want 165", s.FeePaidValue)
	}

	var o entity.Order
	db.First(&o, order.ID)
	if o.Status != entity.OrderCompleted {
		t.Errorf("order status = %q, want %q", o.Status, entity.OrderCompleted)
	}
}

func TestConcludeIsIdempotentPerTableSession(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	orders := newOrderService(db)
	settle := newSettlementService(db, orders)

	order := createOrder(t, orders, f, f.Steak.ID)
	if _, err := orders.AdvanceLines([]uint{order.Lines[0].ID}, entity.LineDelivered); err != nil {
		t.Fatalf("deliver line: %v", err)
	}

	req := &ConcludeReq{RestaurantID: f.Restaurant.ID, TableID: f.Table.ID, AdditionalPercent: 10}
	first, err := settle.Conclude(req)
	if err != nil {
		t.Fatalf("first conclude: %v", err)
	}

	// retry with no remaining open orders returns the same snapshot
	second, err := settle.Conclude(req)
	if err != nil {
		t.Fatalf("second conclude: %v", err)
	}
	if first.Identifier != second.Identifier {
		t.Errorf("retry produced a new settlement: %q vs %q", first.Identifier, second.Identifier)
	}
	if second.TotalAmount != first.TotalAmount {
		t.Errorf("retry total = %d, want %d", second.TotalAmount, first.TotalAmount)
	}

	var count int64
	db.Model(&entity.Settlement{}).Count(&count)
	if count != 1 {
		t.Errorf("settlement count = %d, want 1", count)
	}
}

func TestConcludeNothingToSettle(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	orders := newOrderService(db)
	settle := newSettlementService(db, orders)

	_, err := settle.Conclude(&ConcludeReq{RestaurantID: f.Restaurant.ID, TableID: f.Table.ID})
	if !errors.Is(err, ErrNothingToSettle) {
		t.Errorf("expected ErrNothingToSettle, got %v", err)
	}
}

func TestConcludeExcludesCanceledLinesButKeepsThemForAudit(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	orders := newOrderService(db)
	settle := newSettlementService(db, orders)

	order := createOrder(t, orders, f, f.Steak.ID, f.Drink.ID)
	steakLine, drinkLine := order.Lines[0].ID, order.Lines[1].ID

	if _, err := orders.AdvanceLines([]uint{steakLine}, entity.LineDelivered); err != nil {
		t.Fatalf("deliver steak: %v", err)
	}
	if _, err := orders.AdvanceLines([]uint{drinkLine}, entity.LineCanceled); err != nil {
		t.Fatalf("cancel drink: %v", err)
	}

	s, err := settle.Conclude(&ConcludeReq{RestaurantID: f.Restaurant.ID, TableID: f.Table.ID})
	if err != nil {
		t.Fatalf("conclude: %v", err)
	}

	if s.Subtotal != 5000 {
		t.Errorf("subtotal = %d, want 5000 (canceled drink must not be billed)", s.Subtotal)
	}
	for _, b := range s.Bills {
		for _, item := range b.Items {
			if item.ProductID == f.Drink.ID {
				t.Errorf("canceled line appeared in itemized totals")
			}
		}
	}

	// retained in storage for audit
	var line entity.OrderLine
	if err := db.First(&line, drinkLine).Error; err != nil {
		t.Fatalf("canceled line no longer queryable: %v", err)
	}
	if line.Status != entity.LineCanceled {
		t.Errorf("audit line status = %q, want %q", line.Status, entity.LineCanceled)
	}
}

func TestConcludeCancelsUnfinishedLines(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	orders := newOrderService(db)
	settle := newSettlementService(db, orders)

	order := createOrder(t, orders, f, f.Steak.ID, f.Drink.ID)
	if _, err := orders.AdvanceLines([]uint{order.Lines[0].ID}, entity.LineWaitingDelivery); err != nil {
		t.Fatalf("advance steak: %v", err)
	}
	// drink stays PENDING: the kitchen never started it

	s, err := settle.Conclude(&ConcludeReq{RestaurantID: f.Restaurant.ID, TableID: f.Table.ID})
	if err != nil {
		t.Fatalf("conclude: %v", err)
	}

	if s.Subtotal != 5000 {
		t.Errorf("subtotal = %d, want 5000 (pending drink is canceled at settlement)", s.Subtotal)
	}

	var line entity.OrderLine
	db.First(&line, order.Lines[1].ID)
	if line.Status != entity.LineCanceled {
		t.Errorf("unfinished line status = %q, want %q", line.Status, entity.LineCanceled)
	}
}

func TestConcludeSumIndividually(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	orders := newOrderService(db)
	settle := newSettlementService(db, orders)

	// two guests, two open orders on the same table
	first := createOrder(t, orders, f, f.Steak.ID)
	second := createOrder(t, orders, f, f.Drink.ID)
	if _, err := orders.AdvanceLines([]uint{first.Lines[0].ID}, entity.LineDelivered); err != nil {
		t.Fatalf("deliver steak: %v", err)
	}
	if _, err := orders.AdvanceLines([]uint{second.Lines[0].ID}, entity.LineDelivered); err != nil {
		t.Fatalf("deliver drink: %v", err)
	}

	s, err := settle.Conclude(&ConcludeReq{
		RestaurantID:    f.Restaurant.ID,
		TableID:         f.Table.ID,
		SumIndividually: true,
	})
	if err != nil {
		t.Fatalf("conclude: %v", err)
	}

	if len(s.Bills) != 2 {
		t.Fatalf("bills = %d, want 2", len(s.Bills))
	}
	if s.Bills[0].Subtotal != 5000 || s.Bills[1].Subtotal != 1000 {
		t.Errorf("per-order subtotals = %d, %d; want 5000, 1000", s.Bills[0].Subtotal, s.Bills[1].Subtotal)
	}
	if s.Subtotal != 6000 {
		t.Errorf("combined subtotal = %d, want 6000", s.Subtotal)
	}

	// both orders closed together
	for _, id := range []uint{first.ID, second.ID} {
		var o entity.Order
		db.First(&o, id)
		if o.Status != entity.OrderCompleted {
			t.Errorf("order %d status = %q, want %q", id, o.Status, entity.OrderCompleted)
		}
	}
}

func TestConcludeReleasesKitchensForDeletion(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	orders := newOrderService(db)
	settle := newSettlementService(db, orders)

	order := createOrder(t, orders, f, f.Steak.ID)
	if _, err := orders.AdvanceLines([]uint{order.Lines[0].ID}, entity.LineWaitingDelivery); err != nil {
		t.Fatalf("advance steak: %v", err)
	}

	inUse, err := orders.Repo.KitchenInUseCount(f.Grill.ID)
	if err != nil {
		t.Fatalf("in-use count: %v", err)
	}
	if inUse != 1 {
		t.Fatalf("in-use count before settlement = %d, want 1", inUse)
	}

	// the bill can close with the plate still on the pass; the station must
	// not stay pinned by that line afterwards
	if _, err := settle.Conclude(&ConcludeReq{RestaurantID: f.Restaurant.ID, TableID: f.Table.ID}); err != nil {
		t.Fatalf("conclude: %v", err)
	}

	inUse, err = orders.Repo.KitchenInUseCount(f.Grill.ID)
	if err != nil {
		t.Fatalf("in-use count: %v", err)
	}
	if inUse != 0 {
		t.Errorf("in-use count after settlement = %d, want 0", inUse)
	}
}

func TestSummaryReturnsPersistedSettlement(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	orders := newOrderService(db)
	settle := newSettlementService(db, orders)

	order := createOrder(t, orders, f, f.Steak.ID)
	if _, err := orders.AdvanceLines([]uint{order.Lines[0].ID}, entity.LineDelivered); err != nil {
		t.Fatalf("deliver line: %v", err)
	}
	s, err := settle.Conclude(&ConcludeReq{RestaurantID: f.Restaurant.ID, TableID: f.Table.ID})
	if err != nil {
		t.Fatalf("conclude: %v", err)
	}

	got, err := settle.Summary(s.Identifier)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got.TotalAmount != s.TotalAmount || got.Identifier != s.Identifier {
		t.Errorf("summary mismatch: %+v vs %+v", got, s)
	}

	if _, err := settle.Summary("no-such-identifier"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown identifier, got %v", err)
	}
}
