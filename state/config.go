package state

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/openticket/onsale"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigFastest

// LoadConfig reads the persisted configuration record. The record layout is
// the four integers keyed by name; a reload reconstructs a pool seeded with
// the last observed available count.
func LoadConfig(path string) (*onsale.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config [%s]", path)
	}
	cfg := &onsale.Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "error parsing config [%s]", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func SaveConfig(path string, cfg *onsale.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "error writing config [%s]", path)
	}
	return nil
}
