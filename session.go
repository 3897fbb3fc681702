package onsale

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Session is the driver-side owner of a single simulation: exactly one pool,
// the actors bound to it, and the cancellation signal that stops them. The
// pool never outlives the session, and the session never creates a second one.
type Session struct {
	id         string
	cfg        *Config
	pool       *Pool
	ii         InstrumentInstance
	ctx        context.Context
	cancel     context.CancelFunc
	waiter     sync.WaitGroup
	lock       sync.Mutex
	vendorCt   int
	customerCt int
	started    time.Time
	stopOnce   sync.Once
}

func NewSession(cfg *Config, i Instrument) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("no config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	if i == nil {
		i = NewNilInstrument()
	}
	id := uuid.NewString()
	ii := i.NewInstance(id)
	pool, err := NewPool(cfg.TotalTickets, cfg.MaxTicketCapacity, ii)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		id:      id,
		cfg:     cfg,
		pool:    pool,
		ii:      ii,
		ctx:     ctx,
		cancel:  cancel,
		started: time.Now(),
	}, nil
}

func (self *Session) Id() string { return self.id }

func (self *Session) Pool() *Pool { return self.pool }

func (self *Session) StartVendors(n int) error {
	return self.start(Vendor, n, self.cfg.ReleaseInterval())
}

func (self *Session) StartCustomers(n int) error {
	return self.start(Customer, n, self.cfg.RetrievalInterval())
}

func (self *Session) start(role Role, n int, interval time.Duration) error {
	self.lock.Lock()
	defer self.lock.Unlock()

	for i := 0; i < n; i++ {
		var seq int
		if role == Vendor {
			self.vendorCt++
			seq = self.vendorCt
		} else {
			self.customerCt++
			seq = self.customerCt
		}
		a, err := NewActor(role, fmt.Sprintf("%s-%d", role, seq), self.pool, interval, self.ii)
		if err != nil {
			return err
		}
		self.waiter.Add(1)
		go func() {
			defer self.waiter.Done()
			a.Run(self.ctx)
		}()
	}
	return nil
}

// Stop cancels every actor, waits for them to wind down, and shuts the
// instrument instance down. Safe to call more than once.
func (self *Session) Stop() {
	self.stopOnce.Do(func() {
		self.cancel()
		self.waiter.Wait()
		self.ii.Shutdown()
	})
}

// Await returns once every launched actor has stopped on its own.
func (self *Session) Await() {
	self.waiter.Wait()
}

func (self *Session) Snapshot() Snapshot {
	return self.pool.Snapshot()
}

func (self *Session) Elapsed() time.Duration {
	return time.Since(self.started)
}
