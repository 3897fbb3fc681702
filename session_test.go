package onsale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionOwnsSinglePool(t *testing.T) {
	cfg := &Config{TotalTickets: 5, MaxTicketCapacity: 10, TicketReleaseRate: 1, CustomerRetrievalRate: 1}
	s, err := NewSession(cfg, nil)
	assert.NoError(t, err)
	assert.Same(t, s.Pool(), s.Pool())
	assert.Equal(t, 5, s.Snapshot().Available)
	assert.NotEmpty(t, s.Id())
}

func TestSessionRejectsInvalidConfig(t *testing.T) {
	_, err := NewSession(&Config{TotalTickets: 10, MaxTicketCapacity: 5, TicketReleaseRate: 1, CustomerRetrievalRate: 1}, nil)
	assert.Error(t, err)
	_, err = NewSession(&Config{TotalTickets: 0, MaxTicketCapacity: 5, TicketReleaseRate: 0, CustomerRetrievalRate: 1}, nil)
	assert.Error(t, err)
	_, err = NewSession(&Config{TotalTickets: 0, MaxTicketCapacity: 5, TicketReleaseRate: 1, CustomerRetrievalRate: -1}, nil)
	assert.Error(t, err)
	_, err = NewSession(nil, nil)
	assert.Error(t, err)
}

func TestSessionVendorsStopAtCapacity(t *testing.T) {
	// full pool: every vendor's first release fails, so they stop on their own
	cfg := &Config{TotalTickets: 10, MaxTicketCapacity: 10, TicketReleaseRate: 1, CustomerRetrievalRate: 1}
	s, err := NewSession(cfg, nil)
	assert.NoError(t, err)
	assert.NoError(t, s.StartVendors(3))

	settled := make(chan struct{})
	go func() {
		s.Await()
		close(settled)
	}()
	select {
	case <-settled:
	case <-time.After(5 * time.Second):
		t.Fatal("vendors did not stop")
	}

	snapshot := s.Snapshot()
	assert.Equal(t, 10, snapshot.Available)
	assert.Equal(t, 0, snapshot.TotalReleased)
}

func TestSessionStopPromptness(t *testing.T) {
	cfg := &Config{TotalTickets: 0, MaxTicketCapacity: 1000, TicketReleaseRate: 10, CustomerRetrievalRate: 10}
	s, err := NewSession(cfg, nil)
	assert.NoError(t, err)
	assert.NoError(t, s.StartVendors(2))
	assert.NoError(t, s.StartCustomers(2))

	// let every actor complete its first operation and park in its wait
	time.Sleep(100 * time.Millisecond)

	start := time.Now()
	s.Stop()
	assert.Less(t, time.Since(start), time.Second)

	snapshot := s.Snapshot()
	assert.GreaterOrEqual(t, snapshot.Available, 0)
	assert.LessOrEqual(t, snapshot.Available, 1000)
	assert.Equal(t, snapshot.TotalReleased-snapshot.TotalPurchased, snapshot.Available)

	// idempotent
	s.Stop()
}
