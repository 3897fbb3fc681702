package onsale

type nilInstrument struct{}

func NewNilInstrument() Instrument {
	return &nilInstrument{}
}

func (self *nilInstrument) NewInstance(_ string) InstrumentInstance {
	return &NilInstrumentInstance{}
}

type NilInstrumentInstance struct{}

func (n *NilInstrumentInstance) ActorStarted(role Role, id string) {}

func (n *NilInstrumentInstance) ActorStopped(role Role, id string, reason StopReason) {}

func (n *NilInstrumentInstance) Released(who string, snapshot Snapshot) {}

func (n *NilInstrumentInstance) ReleaseSaturated(who string, snapshot Snapshot) {}

func (n *NilInstrumentInstance) Purchased(who string, snapshot Snapshot) {}

func (n *NilInstrumentInstance) PurchaseSaturated(who string, snapshot Snapshot) {}

func (n *NilInstrumentInstance) Shutdown() {}
