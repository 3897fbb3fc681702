package util

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// MetricsId marks a directory of sample CSVs and carries per-run values
// (actor operation counts, for this domain).
type MetricsId struct {
	Id     string            `json:"id"`
	Values map[string]string `json:"values,omitempty"`
}

func WriteMetricsId(id, outPath string, values map[string]string) error {
	mid := &MetricsId{Id: id, Values: values}
	data, err := json.MarshalIndent(mid, "", "  ")
	if err != nil {
		return err
	}
	oF, err := os.OpenFile(filepath.Join(outPath, "metrics.id"), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.ModePerm)
	if err != nil {
		return err
	}
	defer func() { _ = oF.Close() }()
	if _, err := oF.Write(data); err != nil {
		return err
	}
	return nil
}

func ReadMetricsId(path string) (*MetricsId, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	metricsId := &MetricsId{}
	if err = json.Unmarshal(data, metricsId); err != nil {
		return nil, err
	}
	return metricsId, nil
}

// DiscoverMetrics walks root looking for `metrics.id` markers, returning a
// map of metrics directory -> id.
func DiscoverMetrics(root string) (map[string]*MetricsId, error) {
	var metricsIdPaths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Base(path) == "metrics.id" {
			metricsIdPaths = append(metricsIdPaths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metricsMap := make(map[string]*MetricsId)
	for _, metricsIdPath := range metricsIdPaths {
		metricsId, err := ReadMetricsId(metricsIdPath)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading [%s]", metricsIdPath)
		}
		metricsMap[filepath.Dir(metricsIdPath)] = metricsId
	}
	return metricsMap, nil
}
