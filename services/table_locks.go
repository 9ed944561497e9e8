package services

import (
	"sync"
)

// TableLocks serializes mutations per table. Status batches and conclude on
// the same table queue up here; different tables never block each other.
type TableLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewTableLocks() *TableLocks {
	return &TableLocks{locks: make(map[uint]*sync.Mutex)}
}

func (t *TableLocks) For(tableID uint) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[tableID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[tableID] = l
	}
	return l
}
