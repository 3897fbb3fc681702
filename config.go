package onsale

import (
	"time"

	"github.com/pkg/errors"
)

// Config carries the four collaborator-supplied integers. The rate values are
// seconds between actions, matching the persisted record layout.
type Config struct {
	TotalTickets          int `json:"totalTickets"`
	MaxTicketCapacity     int `json:"maxTicketCapacity"`
	TicketReleaseRate     int `json:"ticketReleaseRate"`
	CustomerRetrievalRate int `json:"customerRetrievalRate"`
}

func DefaultConfig() *Config {
	return &Config{
		TotalTickets:          0,
		MaxTicketCapacity:     50,
		TicketReleaseRate:     1,
		CustomerRetrievalRate: 1,
	}
}

func (self *Config) Validate() error {
	if self.TotalTickets < 0 {
		return errors.Errorf("invalid total tickets [%d]", self.TotalTickets)
	}
	if self.MaxTicketCapacity < 0 {
		return errors.Errorf("invalid max ticket capacity [%d]", self.MaxTicketCapacity)
	}
	if self.TotalTickets > self.MaxTicketCapacity {
		return errors.Errorf("total tickets [%d] exceed max ticket capacity [%d]", self.TotalTickets, self.MaxTicketCapacity)
	}
	if self.TicketReleaseRate < 1 {
		return errors.Errorf("invalid ticket release rate [%d]", self.TicketReleaseRate)
	}
	if self.CustomerRetrievalRate < 1 {
		return errors.Errorf("invalid customer retrieval rate [%d]", self.CustomerRetrievalRate)
	}
	return nil
}

func (self *Config) ReleaseInterval() time.Duration {
	return time.Duration(self.TicketReleaseRate) * time.Second
}

func (self *Config) RetrievalInterval() time.Duration {
	return time.Duration(self.CustomerRetrievalRate) * time.Second
}
