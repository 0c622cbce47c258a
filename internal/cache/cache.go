// Package cache provides the parsed-entry cache used by the store to avoid
// reparsing unchanged files across repeated list/scan runs.
package cache

import (
	"fmt"
	"time"

	"github.com/lorehaven/canon/internal/model"
)

// Cache defines the interface for entry caching
type Cache interface {
	Get(key string) (*model.Entry, bool)
	Set(key string, entry *model.Entry, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a cache key from a file path and its modification time, so a
// rewritten file never serves a stale parse.
func Key(path string, modTime time.Time) string {
	return fmt.Sprintf("canon:v1:%s:%d", path, modTime.UnixNano())
}

// Nop is a disabled cache; every lookup misses.
type Nop struct{}

func (Nop) Get(string) (*model.Entry, bool)               { return nil, false }
func (Nop) Set(string, *model.Entry, time.Duration) error { return nil }
func (Nop) Delete(string) error                           { return nil }
func (Nop) Clear() error                                  { return nil }
