package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

const lockFileName = ".lock"

// DiskCache persists reports as one JSON envelope per key. Writers from
// different processes are serialised with a lock file in the cache directory.
type DiskCache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewDiskCache creates a disk cache rooted at dir
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{
		dir: dir,
		ttl: ttl,
		now: time.Now,
	}
}

type cacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"` // zero means no expiry
}

// Get retrieves a value, removing it if it has expired
func (c *DiskCache) Get(key string) ([]byte, bool) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if !entry.ExpiresAt.IsZero() && c.now().After(entry.ExpiresAt) {
		_ = c.withLock(func() error { return removeIfExists(path) })
		return nil, false
	}

	return entry.Data, true
}

// Set stores a value. The file is written to a temporary name and renamed so
// readers never see a partial entry.
func (c *DiskCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	entry := cacheEntry{Data: value}
	if ttl > 0 {
		entry.ExpiresAt = c.now().Add(ttl)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	return c.withLock(func() error {
		tmp, err := os.CreateTemp(c.dir, "entry-*.tmp")
		if err != nil {
			return fmt.Errorf("create temp file: %w", err)
		}
		tmpName := tmp.Name()

		if _, err := tmp.Write(data); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
			return fmt.Errorf("write cache file: %w", err)
		}
		if err := tmp.Close(); err != nil {
			_ = os.Remove(tmpName)
			return fmt.Errorf("close cache file: %w", err)
		}
		if err := os.Rename(tmpName, c.path(key)); err != nil {
			_ = os.Remove(tmpName)
			return fmt.Errorf("rename cache file: %w", err)
		}
		return nil
	})
}

// Delete removes a value. Missing keys are not an error.
func (c *DiskCache) Delete(key string) error {
	return c.withLock(func() error { return removeIfExists(c.path(key)) })
}

// Clear removes every cached entry but keeps the directory and its lock file
func (c *DiskCache) Clear() error {
	return c.withLock(func() error {
		entries, err := os.ReadDir(c.dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("read cache dir: %w", err)
		}
		var errs []error
		for _, e := range entries {
			if e.IsDir() || e.Name() == lockFileName {
				continue
			}
			if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

func (c *DiskCache) withLock(fn func() error) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	lock := flock.New(filepath.Join(c.dir, lockFileName))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock cache dir: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	return fn()
}

// path maps a key to a file name; ':' is not portable in file names
func (c *DiskCache) path(key string) string {
	return filepath.Join(c.dir, strings.ReplaceAll(key, ":", "_")+".json")
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
