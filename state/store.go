package state

import (
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/openticket/onsale"
	"github.com/pkg/errors"
)

const runKeyPrefix = "run/"

// RunRecord is the persisted summary of one completed session.
type RunRecord struct {
	Id      string          `json:"id"`
	Started time.Time       `json:"started"`
	Ended   time.Time       `json:"ended"`
	Config  onsale.Config   `json:"config"`
	Final   onsale.Snapshot `json:"final"`
}

// Store keeps run history in a pebble database, keyed by start time so
// iteration comes back chronological.
type Store struct {
	db *pebble.DB
}

func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "error opening state store [%s]", dir)
	}
	return &Store{db: db}, nil
}

func (self *Store) Close() error {
	return self.db.Close()
}

func (self *Store) PutRun(r *RunRecord) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	key := []byte(fmt.Sprintf("%s%020d-%s", runKeyPrefix, r.Started.UnixNano(), r.Id))
	return self.db.Set(key, data, pebble.Sync)
}

func (self *Store) EachRun(fn func(r *RunRecord) error) error {
	iter, err := self.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(runKeyPrefix),
		UpperBound: []byte(runKeyPrefix + "~"),
	})
	if err != nil {
		return err
	}
	defer func() { _ = iter.Close() }()

	for iter.First(); iter.Valid(); iter.Next() {
		r := &RunRecord{}
		if err := json.Unmarshal(iter.Value(), r); err != nil {
			return errors.Wrapf(err, "error decoding run record [%s]", iter.Key())
		}
		if err := fn(r); err != nil {
			return err
		}
	}
	return iter.Error()
}
