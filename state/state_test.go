package state

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/openticket/onsale"
	"github.com/stretchr/testify/assert"
)

func TestConfigRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	in := &onsale.Config{TotalTickets: 5, MaxTicketCapacity: 20, TicketReleaseRate: 1, CustomerRetrievalRate: 2}
	assert.NoError(t, SaveConfig(path, in))

	out, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NoError(t, SaveConfig(path, &onsale.Config{TotalTickets: 0, MaxTicketCapacity: 10, TicketReleaseRate: 1, CustomerRetrievalRate: 1}))

	// corrupt the capacity relationship on disk
	bad := &onsale.Config{TotalTickets: 10, MaxTicketCapacity: 5, TicketReleaseRate: 1, CustomerRetrievalRate: 1}
	assert.Error(t, SaveConfig(path, bad))

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRunHistoryOrdering(t *testing.T) {
	store, err := Open(t.TempDir())
	assert.NoError(t, err)
	defer func() { _ = store.Close() }()

	cfg := onsale.Config{TotalTickets: 0, MaxTicketCapacity: 10, TicketReleaseRate: 1, CustomerRetrievalRate: 1}
	second := &RunRecord{
		Id:      "bbbbbbbb",
		Started: time.Unix(2000, 0).UTC(),
		Ended:   time.Unix(2010, 0).UTC(),
		Config:  cfg,
		Final:   onsale.Snapshot{Available: 4, Capacity: 10, TotalReleased: 6, TotalPurchased: 2},
	}
	first := &RunRecord{
		Id:      "aaaaaaaa",
		Started: time.Unix(1000, 0).UTC(),
		Ended:   time.Unix(1005, 0).UTC(),
		Config:  cfg,
		Final:   onsale.Snapshot{Available: 1, Capacity: 10, TotalReleased: 3, TotalPurchased: 2},
	}

	// inserted out of order, read back chronological
	assert.NoError(t, store.PutRun(second))
	assert.NoError(t, store.PutRun(first))

	var ids []string
	var finals []onsale.Snapshot
	err = store.EachRun(func(r *RunRecord) error {
		ids = append(ids, r.Id)
		finals = append(finals, r.Final)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"aaaaaaaa", "bbbbbbbb"}, ids)
	assert.Equal(t, 1, finals[0].Available)
	assert.Equal(t, 4, finals[1].Available)
}
