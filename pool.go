package onsale

import (
	"sync"

	"github.com/pkg/errors"
)

// Pool is the shared bounded pool of available tickets, along with lifetime
// release and purchase counters. A single lock serializes every mutation and
// snapshot; the critical section is integer arithmetic only. Instrument
// callbacks fire after the lock is dropped.
type Pool struct {
	lock           sync.Mutex
	available      int
	capacity       int
	initial        int
	totalReleased  int
	totalPurchased int
	ii             InstrumentInstance
}

// Snapshot is a consistent view of all pool counters, taken under the same
// exclusion as Release and Purchase.
type Snapshot struct {
	Available      int `json:"available"`
	Capacity       int `json:"capacity"`
	TotalReleased  int `json:"totalReleased"`
	TotalPurchased int `json:"totalPurchased"`
}

func NewPool(initial, capacity int, ii InstrumentInstance) (*Pool, error) {
	if initial < 0 {
		return nil, errors.Errorf("invalid initial ticket count [%d]", initial)
	}
	if capacity < 0 {
		return nil, errors.Errorf("invalid capacity [%d]", capacity)
	}
	if initial > capacity {
		return nil, errors.Errorf("initial ticket count [%d] exceeds capacity [%d]", initial, capacity)
	}
	if ii == nil {
		ii = &NilInstrumentInstance{}
	}
	return &Pool{
		available: initial,
		capacity:  capacity,
		initial:   initial,
		ii:        ii,
	}, nil
}

// Release adds one ticket to the pool, bounded by capacity. A full pool is an
// expected steady-state condition, reported as false with no mutation.
func (self *Pool) Release(who string) bool {
	self.lock.Lock()
	if self.available >= self.capacity {
		snapshot := self.snapshot()
		self.lock.Unlock()
		self.ii.ReleaseSaturated(who, snapshot)
		return false
	}
	self.available++
	self.totalReleased++
	snapshot := self.snapshot()
	self.lock.Unlock()
	self.ii.Released(who, snapshot)
	return true
}

// Purchase removes one ticket from the pool, bounded by zero. An empty pool
// is an expected steady-state condition, reported as false with no mutation.
func (self *Pool) Purchase(who string) bool {
	self.lock.Lock()
	if self.available < 1 {
		snapshot := self.snapshot()
		self.lock.Unlock()
		self.ii.PurchaseSaturated(who, snapshot)
		return false
	}
	self.available--
	self.totalPurchased++
	snapshot := self.snapshot()
	self.lock.Unlock()
	self.ii.Purchased(who, snapshot)
	return true
}

func (self *Pool) Snapshot() Snapshot {
	self.lock.Lock()
	defer self.lock.Unlock()
	return self.snapshot()
}

// snapshot callers hold the lock.
func (self *Pool) snapshot() Snapshot {
	return Snapshot{
		Available:      self.available,
		Capacity:       self.capacity,
		TotalReleased:  self.totalReleased,
		TotalPurchased: self.totalPurchased,
	}
}
