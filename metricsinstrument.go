package onsale

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/openticket/onsale/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MetricsInstrument samples pool activity into time series suitable for the
// influx loader. One instance per session; one sample set per instance.
type MetricsInstrument struct {
	lock      sync.Mutex
	config    *MetricsInstrumentConfig
	instances []*metricsInstrumentInstance
}

type MetricsInstrumentConfig struct {
	Path       string
	SnapshotMs int
}

func NewMetricsInstrument(config map[string]interface{}) (Instrument, error) {
	i := &MetricsInstrument{
		config: &MetricsInstrumentConfig{
			Path:       "metrics",
			SnapshotMs: 1000,
		},
	}
	if err := i.config.load(config); err != nil {
		return nil, errors.Wrap(err, "unable to load metrics config")
	}
	return i, nil
}

func (self *MetricsInstrumentConfig) load(data map[string]interface{}) error {
	if data == nil {
		return nil
	}
	if v, found := data["path"]; found {
		if s, ok := v.(string); ok {
			self.Path = s
		} else {
			return errors.New("invalid 'path' value")
		}
	}
	if v, found := data["snapshot_ms"]; found {
		if i, ok := v.(int); ok {
			self.SnapshotMs = i
		} else {
			return errors.New("invalid 'snapshot_ms' value")
		}
	}
	if self.SnapshotMs < 1 {
		return errors.Errorf("invalid snapshot interval [%d]", self.SnapshotMs)
	}
	return nil
}

func (self *MetricsInstrument) NewInstance(id string) InstrumentInstance {
	self.lock.Lock()
	defer self.lock.Unlock()
	ii := &metricsInstrumentInstance{
		id:       id,
		actorOps: treemap.NewWithStringComparator(),
		close:    make(chan struct{}, 1),
	}
	go ii.snapshotter(self.config.SnapshotMs)
	self.instances = append(self.instances, ii)
	return ii
}

func (self *MetricsInstrument) WriteAllSamples() error {
	self.lock.Lock()
	defer self.lock.Unlock()

	for _, ii := range self.instances {
		if err := os.MkdirAll(self.config.Path, os.ModePerm); err != nil {
			return err
		}
		outPath, err := os.MkdirTemp(self.config.Path, fmt.Sprintf("%s_", ii.id))
		if err != nil {
			return err
		}
		logrus.Infof("writing metrics to [%s]", outPath)

		ii.lock.Lock()
		if err := util.WriteMetricsId(ii.id, outPath, ii.actorValues()); err != nil {
			ii.lock.Unlock()
			return err
		}
		err = func() error {
			if err := util.WriteSamples("available", outPath, ii.available); err != nil {
				return err
			}
			if err := util.WriteSamples("released", outPath, ii.released); err != nil {
				return err
			}
			if err := util.WriteSamples("purchased", outPath, ii.purchased); err != nil {
				return err
			}
			if err := util.WriteSamples("release_saturated", outPath, ii.releaseSaturated); err != nil {
				return err
			}
			if err := util.WriteSamples("purchase_saturated", outPath, ii.purchaseSaturated); err != nil {
				return err
			}
			return nil
		}()
		ii.lock.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}

type metricsInstrumentInstance struct {
	lock  sync.Mutex
	id    string
	close chan struct{}

	availableCurrent int64
	available        []*util.Sample

	releasedAccum int64
	released      []*util.Sample

	purchasedAccum int64
	purchased      []*util.Sample

	releaseSaturatedAccum int64
	releaseSaturated      []*util.Sample

	purchaseSaturatedAccum int64
	purchaseSaturated      []*util.Sample

	// actor id -> lifetime operation count, ordered for stable output
	actorOps *treemap.Map
}

func (self *metricsInstrumentInstance) ActorStarted(role Role, id string) {
	self.lock.Lock()
	if _, found := self.actorOps.Get(id); !found {
		self.actorOps.Put(id, int64(0))
	}
	self.lock.Unlock()
}

func (self *metricsInstrumentInstance) ActorStopped(role Role, id string, reason StopReason) {}

func (self *metricsInstrumentInstance) Released(who string, snapshot Snapshot) {
	self.lock.Lock()
	self.releasedAccum++
	self.availableCurrent = int64(snapshot.Available)
	self.countOp(who)
	self.lock.Unlock()
}

func (self *metricsInstrumentInstance) ReleaseSaturated(who string, snapshot Snapshot) {
	self.lock.Lock()
	self.releaseSaturatedAccum++
	self.availableCurrent = int64(snapshot.Available)
	self.lock.Unlock()
}

func (self *metricsInstrumentInstance) Purchased(who string, snapshot Snapshot) {
	self.lock.Lock()
	self.purchasedAccum++
	self.availableCurrent = int64(snapshot.Available)
	self.countOp(who)
	self.lock.Unlock()
}

func (self *metricsInstrumentInstance) PurchaseSaturated(who string, snapshot Snapshot) {
	self.lock.Lock()
	self.purchaseSaturatedAccum++
	self.availableCurrent = int64(snapshot.Available)
	self.lock.Unlock()
}

func (self *metricsInstrumentInstance) Shutdown() {
	self.sample()
	close(self.close)
}

// countOp callers hold the lock.
func (self *metricsInstrumentInstance) countOp(who string) {
	if v, found := self.actorOps.Get(who); found {
		self.actorOps.Put(who, v.(int64)+1)
	} else {
		self.actorOps.Put(who, int64(1))
	}
}

// actorValues callers hold the lock.
func (self *metricsInstrumentInstance) actorValues() map[string]string {
	values := make(map[string]string)
	self.actorOps.Each(func(key interface{}, value interface{}) {
		values[key.(string)] = strconv.FormatInt(value.(int64), 10)
	})
	return values
}

func (self *metricsInstrumentInstance) snapshotter(ms int) {
	logrus.Debugf("[%s] snapshotter started", self.id)
	defer logrus.Debugf("[%s] snapshotter exited", self.id)

	for {
		select {
		case <-self.close:
			return
		case <-time.After(time.Duration(ms) * time.Millisecond):
			self.sample()
		}
	}
}

func (self *metricsInstrumentInstance) sample() {
	now := time.Now()
	self.lock.Lock()
	self.available = append(self.available, &util.Sample{Ts: now, V: self.availableCurrent})
	self.released = append(self.released, &util.Sample{Ts: now, V: self.releasedAccum})
	self.releasedAccum = 0
	self.purchased = append(self.purchased, &util.Sample{Ts: now, V: self.purchasedAccum})
	self.purchasedAccum = 0
	self.releaseSaturated = append(self.releaseSaturated, &util.Sample{Ts: now, V: self.releaseSaturatedAccum})
	self.releaseSaturatedAccum = 0
	self.purchaseSaturated = append(self.purchaseSaturated, &util.Sample{Ts: now, V: self.purchaseSaturatedAccum})
	self.purchaseSaturatedAccum = 0
	self.lock.Unlock()
}
