package onsale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	cfg := &Config{TotalTickets: 5, MaxTicketCapacity: 20, TicketReleaseRate: 1, CustomerRetrievalRate: 2}
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second, cfg.ReleaseInterval())
	assert.Equal(t, 2*time.Second, cfg.RetrievalInterval())

	assert.Error(t, (&Config{TotalTickets: -1, MaxTicketCapacity: 20, TicketReleaseRate: 1, CustomerRetrievalRate: 1}).Validate())
	assert.Error(t, (&Config{TotalTickets: 0, MaxTicketCapacity: -1, TicketReleaseRate: 1, CustomerRetrievalRate: 1}).Validate())
	assert.Error(t, (&Config{TotalTickets: 21, MaxTicketCapacity: 20, TicketReleaseRate: 1, CustomerRetrievalRate: 1}).Validate())
	assert.Error(t, (&Config{TotalTickets: 0, MaxTicketCapacity: 20, TicketReleaseRate: 0, CustomerRetrievalRate: 1}).Validate())
	assert.Error(t, (&Config{TotalTickets: 0, MaxTicketCapacity: 20, TicketReleaseRate: 1, CustomerRetrievalRate: 0}).Validate())

	assert.NoError(t, DefaultConfig().Validate())
}
