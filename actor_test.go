package onsale

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVendorStopsAtCapacity(t *testing.T) {
	p, err := NewPool(0, 3, nil)
	assert.NoError(t, err)

	a, err := NewActor(Vendor, "vendor-1", p, time.Millisecond, nil)
	assert.NoError(t, err)

	go a.Run(context.Background())
	select {
	case <-a.Done:
	case <-time.After(5 * time.Second):
		t.Fatal("vendor did not stop")
	}

	assert.Equal(t, StopSaturated, a.Reason())
	snapshot := p.Snapshot()
	assert.Equal(t, 3, snapshot.Available)
	assert.Equal(t, 3, snapshot.TotalReleased)
}

func TestCustomerStopsWhenEmpty(t *testing.T) {
	p, err := NewPool(2, 10, nil)
	assert.NoError(t, err)

	a, err := NewActor(Customer, "customer-1", p, time.Millisecond, nil)
	assert.NoError(t, err)

	go a.Run(context.Background())
	select {
	case <-a.Done:
	case <-time.After(5 * time.Second):
		t.Fatal("customer did not stop")
	}

	assert.Equal(t, StopSaturated, a.Reason())
	snapshot := p.Snapshot()
	assert.Equal(t, 0, snapshot.Available)
	assert.Equal(t, 2, snapshot.TotalPurchased)
}

func TestCancellationDuringWait(t *testing.T) {
	p, err := NewPool(0, 1000, nil)
	assert.NoError(t, err)

	a, err := NewActor(Vendor, "vendor-1", p, time.Hour, nil)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go a.Run(ctx)

	// one operation, then the actor parks in its pacing wait
	assert.Eventually(t, func() bool {
		return p.Snapshot().TotalReleased == 1
	}, 5*time.Second, time.Millisecond)

	cancel()
	select {
	case <-a.Done:
	case <-time.After(5 * time.Second):
		t.Fatal("actor did not observe cancellation")
	}

	assert.Equal(t, StopCancelled, a.Reason())
	snapshot := p.Snapshot()
	assert.Equal(t, 1, snapshot.TotalReleased)
	assert.Equal(t, snapshot.TotalReleased-snapshot.TotalPurchased, snapshot.Available)
}

func TestCancellationBeforeFirstOperation(t *testing.T) {
	p, err := NewPool(0, 10, nil)
	assert.NoError(t, err)

	a, err := NewActor(Vendor, "vendor-1", p, time.Millisecond, nil)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	go a.Run(ctx)
	select {
	case <-a.Done:
	case <-time.After(5 * time.Second):
		t.Fatal("actor did not observe cancellation")
	}

	assert.Equal(t, StopCancelled, a.Reason())
	assert.Equal(t, 0, p.Snapshot().TotalReleased)
}

func TestActorConstructionErrors(t *testing.T) {
	p, err := NewPool(0, 10, nil)
	assert.NoError(t, err)

	_, err = NewActor(Vendor, "vendor-1", p, 0, nil)
	assert.Error(t, err)
	_, err = NewActor(Vendor, "vendor-1", nil, time.Second, nil)
	assert.Error(t, err)
}
