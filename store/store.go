package store

import (
	"os"
	"path/filepath"
	"time"

	"github.com/hamidzr/movebox/constant"
	"github.com/pkg/errors"
)

// WindowCache remembers the last size of the main window.
type WindowCache struct {
	Width   float32 `json:"width" yaml:"width"`
	Height  float32 `json:"height" yaml:"height"`
	SavedAt int64   `json:"savedAt" yaml:"savedAt"`
}

// SetSize records a new window size.
func (c *WindowCache) SetSize(width, height float32) {
	c.Width = width
	c.Height = height
	c.SavedAt = time.Now().Unix()
}

// Valid reports whether the cache holds a usable size.
func (c WindowCache) Valid() bool {
	return c.Width > 0 && c.Height > 0
}

// Store persists cache data between runs.
type Store[C any] interface {
	SaveCache(data C) error
	LoadCache() (C, error)
}

// CacheDir returns the per-user cache directory for the project.
func CacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve user cache dir")
	}
	return filepath.Join(dir, constant.ProjectName), nil
}
