package onsale

import "github.com/pkg/errors"

type Instrument interface {
	NewInstance(id string) InstrumentInstance
}

type InstrumentInstance interface {
	// actor lifecycle
	ActorStarted(role Role, id string)
	ActorStopped(role Role, id string, reason StopReason)

	// pool operations
	Released(who string, snapshot Snapshot)
	ReleaseSaturated(who string, snapshot Snapshot)
	Purchased(who string, snapshot Snapshot)
	PurchaseSaturated(who string, snapshot Snapshot)

	// instrument lifecycle
	Shutdown()
}

func NewInstrument(name string, config map[string]interface{}) (Instrument, error) {
	switch name {
	case "nil":
		return NewNilInstrument(), nil
	case "logger":
		return NewLoggerInstrument(), nil
	case "metrics":
		return NewMetricsInstrument(config)
	default:
		return nil, errors.Errorf("unknown instrument '%s'", name)
	}
}
