package onsale

import (
	"github.com/sirupsen/logrus"
)

// loggerInstrument renders pool events as log output. Formatting lives here,
// not in the pool or the actors.
type loggerInstrument struct{}

func NewLoggerInstrument() Instrument {
	return &loggerInstrument{}
}

func (self *loggerInstrument) NewInstance(id string) InstrumentInstance {
	return &loggerInstrumentInstance{id: id}
}

type loggerInstrumentInstance struct {
	id string
}

func (self *loggerInstrumentInstance) ActorStarted(role Role, id string) {
	logrus.Infof("[%s] started", id)
}

func (self *loggerInstrumentInstance) ActorStopped(role Role, id string, reason StopReason) {
	logrus.Infof("[%s] stopped (%s)", id, reason)
}

func (self *loggerInstrumentInstance) Released(who string, snapshot Snapshot) {
	logrus.Infof("+> [%s] released a ticket, [%d/%d] available", who, snapshot.Available, snapshot.Capacity)
}

func (self *loggerInstrumentInstance) ReleaseSaturated(who string, snapshot Snapshot) {
	logrus.Warnf("+| [%s] pool at capacity [%d]", who, snapshot.Capacity)
}

func (self *loggerInstrumentInstance) Purchased(who string, snapshot Snapshot) {
	logrus.Infof("-> [%s] purchased a ticket, [%d/%d] available", who, snapshot.Available, snapshot.Capacity)
}

func (self *loggerInstrumentInstance) PurchaseSaturated(who string, snapshot Snapshot) {
	logrus.Warnf("-| [%s] pool empty", who)
}

func (self *loggerInstrumentInstance) Shutdown() {
	logrus.Debugf("[%s] instrument shutdown", self.id)
}
