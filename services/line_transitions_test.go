package services

import (
	"errors"
	"testing"

	"github.com/Orbe-ERP/pos-backend/entity"
)

func TestCanAdvanceLine(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{entity.LinePending, entity.LineWorkInProgress, true},
		{entity.LinePending, entity.LineWaitingDelivery, true},
		{entity.LinePending, entity.LineDelivered, true},
		{entity.LineWorkInProgress, entity.LineWaitingDelivery, true},
		{entity.LineWorkInProgress, entity.LineDelivered, true},
		{entity.LineWaitingDelivery, entity.LineDelivered, true},

		// backward moves never succeed
		{entity.LineWorkInProgress, entity.LinePending, false},
		{entity.LineWaitingDelivery, entity.LineWorkInProgress, false},
		{entity.LineDelivered, entity.LineWaitingDelivery, false},
		{entity.LinePending, entity.LinePending, false},

		// cancel window closes at WAITING_DELIVERY
		{entity.LinePending, entity.LineCanceled, true},
		{entity.LineWorkInProgress, entity.LineCanceled, true},
		{entity.LineWaitingDelivery, entity.LineCanceled, false},
		{entity.LineDelivered, entity.LineCanceled, false},

		// terminal states are immutable
		{entity.LineCanceled, entity.LinePending, false},
		{entity.LineCanceled, entity.LineDelivered, false},
		{entity.LineDelivered, entity.LineDelivered, false},

		{"", entity.LineDelivered, false},
		{entity.LinePending, "", false},
	}

	for _, tt := range tests {
		got := CanAdvanceLine(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("CanAdvanceLine(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAdvanceLinesBackwardMoveFailsAndLeavesStateUnchanged(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newOrderService(db)

	order := createOrder(t, svc, f, f.Steak.ID)
	lineID := order.Lines[0].ID

	if _, err := svc.AdvanceLines([]uint{lineID}, entity.LineWorkInProgress); err != nil {
		t.Fatalf("advance to WORK_IN_PROGRESS: %v", err)
	}

	_, err := svc.AdvanceLines([]uint{lineID}, entity.LinePending)
	te, ok := AsTransitionError(err)
	if !ok {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if te.LineID != lineID {
		t.Errorf("failing line = %d, want %d", te.LineID, lineID)
	}

	var line entity.OrderLine
	db.First(&line, lineID)
	if line.Status != entity.LineWorkInProgress {
		t.Errorf("status after failed advance = %q, want %q", line.Status, entity.LineWorkInProgress)
	}
}

func TestAdvanceLinesLateCancelFails(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newOrderService(db)

	order := createOrder(t, svc, f, f.Steak.ID)
	lineID := order.Lines[0].ID

	if _, err := svc.AdvanceLines([]uint{lineID}, entity.LineWaitingDelivery); err != nil {
		t.Fatalf("advance to WAITING_DELIVERY: %v", err)
	}

	if _, err := svc.AdvanceLines([]uint{lineID}, entity.LineCanceled); err == nil {
		t.Fatal("cancel after WAITING_DELIVERY should fail")
	}

	var line entity.OrderLine
	db.First(&line, lineID)
	if line.Status != entity.LineWaitingDelivery {
		t.Errorf("status = %q, want %q", line.Status, entity.LineWaitingDelivery)
	}
}

func TestAdvanceLinesBatchIsAllOrNothing(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newOrderService(db)

	order := createOrder(t, svc, f, f.Steak.ID, f.Drink.ID)
	first, second := order.Lines[0].ID, order.Lines[1].ID

	// push one line to DELIVERED so the batch has a line that forbids the move
	if _, err := svc.AdvanceLines([]uint{first}, entity.LineDelivered); err != nil {
		t.Fatalf("advance first line: %v", err)
	}

	_, err := svc.AdvanceLines([]uint{first, second}, entity.LineWorkInProgress)
	te, ok := AsTransitionError(err)
	if !ok {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if te.LineID != first {
		t.Errorf("failing line = %d, want %d", te.LineID, first)
	}

	// nothing was applied
	var line entity.OrderLine
	db.First(&line, second)
	if line.Status != entity.LinePending {
		t.Errorf("untouched line status = %q, want %q", line.Status, entity.LinePending)
	}
}

func TestAdvanceLinesUnknownLine(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	svc := newOrderService(db)

	_, err := svc.AdvanceLines([]uint{9999}, entity.LineDelivered)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
