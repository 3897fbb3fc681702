package onsale

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

type Role uint8

const (
	Vendor Role = iota
	Customer
)

func (self Role) String() string {
	switch self {
	case Vendor:
		return "vendor"
	case Customer:
		return "customer"
	default:
		return "unknown"
	}
}

type StopReason uint8

const (
	StopRunning StopReason = iota
	StopSaturated
	StopCancelled
)

func (self StopReason) String() string {
	switch self {
	case StopRunning:
		return "running"
	case StopSaturated:
		return "saturated"
	case StopCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Actor drives one side of the pool, one operation per iteration, paced by a
// fixed interval, until the pool saturates or the context is cancelled.
// Cancellation is observed at the top of each iteration and during the pacing
// wait, never inside a pool operation.
type Actor struct {
	role     Role
	id       string
	pool     *Pool
	interval time.Duration
	ii       InstrumentInstance
	reason   StopReason
	Done     chan struct{}
}

func NewActor(role Role, id string, pool *Pool, interval time.Duration, ii InstrumentInstance) (*Actor, error) {
	if pool == nil {
		return nil, errors.New("no pool")
	}
	if interval <= 0 {
		return nil, errors.Errorf("invalid pacing interval [%v]", interval)
	}
	if ii == nil {
		ii = &NilInstrumentInstance{}
	}
	return &Actor{
		role:     role,
		id:       id,
		pool:     pool,
		interval: interval,
		ii:       ii,
		Done:     make(chan struct{}),
	}, nil
}

func (self *Actor) Role() Role { return self.role }
func (self *Actor) Id() string { return self.id }

// Reason reports why the actor stopped. Valid once Done is closed.
func (self *Actor) Reason() StopReason { return self.reason }

func (self *Actor) Run(ctx context.Context) {
	self.ii.ActorStarted(self.role, self.id)
	defer func() {
		self.ii.ActorStopped(self.role, self.id, self.reason)
		close(self.Done)
	}()

	for {
		select {
		case <-ctx.Done():
			self.reason = StopCancelled
			return
		default:
		}

		if !self.operate() {
			self.reason = StopSaturated
			return
		}

		select {
		case <-ctx.Done():
			self.reason = StopCancelled
			return
		case <-time.After(self.interval):
		}
	}
}

func (self *Actor) operate() bool {
	if self.role == Vendor {
		return self.pool.Release(self.id)
	}
	return self.pool.Purchase(self.id)
}
