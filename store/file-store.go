package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileStore keeps one cache file in cacheDir, serialized as yaml or json.
type FileStore[C any] struct {
	cacheDir string
	format   string
}

var _ Store[WindowCache] = FileStore[WindowCache]{}

// NewFileStore creates cacheDir if needed. format is "yaml" or "json".
func NewFileStore[C any](cacheDir string, format string) (*FileStore[C], error) {
	if format != "yaml" && format != "json" {
		return nil, fmt.Errorf("unsupported store format: %s", format)
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create cache dir %s", cacheDir)
	}
	return &FileStore[C]{cacheDir: cacheDir, format: format}, nil
}

// Marshal serializes data in the store format.
func (fs FileStore[C]) Marshal(data any) ([]byte, error) {
	if fs.format == "json" {
		return json.Marshal(data)
	}
	return yaml.Marshal(data)
}

// Unmarshal deserializes data in the store format.
func (fs FileStore[C]) Unmarshal(serialized []byte, out any) error {
	if fs.format == "json" {
		return json.Unmarshal(serialized, out)
	}
	return yaml.Unmarshal(serialized, out)
}

// cacheFilePath returns the path to the cache file.
func (fs FileStore[C]) cacheFilePath() string {
	return filepath.Join(fs.cacheDir, "cache."+fs.format)
}

// SaveCache serializes and saves the cache data to a file.
func (fs FileStore[C]) SaveCache(data C) error {
	serialized, err := fs.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to serialize cache")
	}
	if err := os.WriteFile(fs.cacheFilePath(), serialized, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write cache %s", fs.cacheFilePath())
	}
	return nil
}

// LoadCache reads the cache file. A missing file yields the zero value.
func (fs FileStore[C]) LoadCache() (C, error) {
	var data C
	filePath := fs.cacheFilePath()
	serialized, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return data, nil
	}
	if err != nil {
		return data, errors.Wrapf(err, "failed to read cache %s", filePath)
	}
	if err := fs.Unmarshal(serialized, &data); err != nil {
		return data, errors.Wrapf(err, "failed to parse cache %s", filePath)
	}
	return data, nil
}
