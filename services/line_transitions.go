package services

import (
	"errors"

	"github.com/Orbe-ERP/pos-backend/entity"
	"gorm.io/gorm"
)

// Forward sequence of the line state machine. CANCELED sits outside it and
// is only reachable before WAITING_DELIVERY — food already handed to a runner
// cannot be called back.
var lineRank = map[string]int{
	entity.LinePending:         0,
	entity.LineWorkInProgress:  1,
	entity.LineWaitingDelivery: 2,
	entity.LineDelivered:       3,
}

// CanAdvanceLine reports whether from -> to is a legal move: any strictly
// forward step in the sequence, or the cancel exception.
func CanAdvanceLine(from, to string) bool {
	if to == entity.LineCanceled {
		return from == entity.LinePending || from == entity.LineWorkInProgress
	}
	fr, okFrom := lineRank[from]
	tr, okTo := lineRank[to]
	return okFrom && okTo && tr > fr
}

// AdvanceLines moves a batch of lines (one dish's components) to target,
// all-or-nothing. If any line forbids the move, nothing is applied and the
// failing line id is reported. Serialized per table.
func (s *OrderService) AdvanceLines(lineIDs []uint, target string) ([]entity.OrderLine, error) {
	if len(lineIDs) == 0 {
		return nil, validationf("no lines given")
	}
	if _, ok := lineRank[target]; !ok && target != entity.LineCanceled {
		return nil, validationf("unknown line status %q", target)
	}

	lines, err := s.Repo.GetLines(lineIDs)
	if err != nil {
		return nil, err
	}
	if len(lines) != len(lineIDs) {
		return nil, ErrNotFound
	}

	tableID := lines[0].Order.TableID
	restID := lines[0].Order.RestaurantID
	for _, l := range lines {
		if l.Order.TableID != tableID {
			return nil, validationf("lines span multiple tables")
		}
	}

	lock := s.Locks.For(tableID)
	lock.Lock()
	defer lock.Unlock()

	// re-read under the lock so the validation sees committed state
	lines, err = s.Repo.GetLines(lineIDs)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		if !CanAdvanceLine(l.Status, target) {
			return nil, &TransitionError{LineID: l.ID, From: l.Status, To: target}
		}
	}

	changed := make([]LineStatusChangedPayload, 0, len(lines))
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, l := range lines {
			affected, err := s.Repo.UpdateLineStatusGuard(tx, l.ID, l.Status, target)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrConflict
			}
			changed = append(changed, LineStatusChangedPayload{
				LineID:  l.ID,
				OrderID: l.OrderID,
				From:    l.Status,
				To:      target,
			})
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}

	// events go out only after the commit
	for _, ev := range changed {
		s.Events.Publish(restID, EventLineStatusChanged, ev)
	}

	return s.Repo.GetLines(lineIDs)
}
