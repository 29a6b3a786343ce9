// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keycache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-passkey-vault/models"
)

// SaltCache keeps the public PRF salt/version pair per user in ordinary
// local state, so a subsequent authentication ceremony can request PRF
// evaluation proactively instead of needing a second user touch. The values
// are also known to the server; losing or leaking this file costs nothing
// but an extra round trip.
type SaltCache struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	entries map[string]models.SaltCacheEntry
}

type saltCacheState struct {
	Entries map[string]models.SaltCacheEntry `json:"entries"`
}

// NewSaltCache opens (or creates) the salt cache at path. An empty path
// yields an in-memory cache.
func NewSaltCache(path string) (*SaltCache, error) {
	c := &SaltCache{
		path:     path,
		inMemory: path == "",
		entries:  make(map[string]models.SaltCacheEntry),
	}

	if c.inMemory {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("%w: read salt cache: %w", ErrStorageUnavailable, err)
	}

	var st saltCacheState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: decode salt cache: %w", ErrStorageUnavailable, err)
	}
	if st.Entries != nil {
		c.entries = st.Entries
	}

	return c, nil
}

func (c *SaltCache) persist() error {
	if c.inMemory {
		return nil
	}

	dir := filepath.Dir(c.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create salt cache dir: %w", ErrStorageUnavailable, err)
		}
	}

	payload, err := json.Marshal(saltCacheState{Entries: c.entries})
	if err != nil {
		return fmt.Errorf("encode salt cache: %w", err)
	}

	if err := os.WriteFile(c.path, payload, 0o644); err != nil {
		return fmt.Errorf("%w: write salt cache: %w", ErrStorageUnavailable, err)
	}

	return nil
}

// Put stores the PRF parameters for userID, stamping the cache time.
func (c *SaltCache) Put(userID int64, params models.PRFParameters) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(userID)] = models.SaltCacheEntry{
		Salt:     params.Salt,
		Version:  params.Version,
		CachedAt: time.Now().UTC(),
	}
	return c.persist()
}

// Get returns the cached entry, or [ErrKeyNotFound] when absent.
func (c *SaltCache) Get(userID int64) (models.SaltCacheEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[cacheKey(userID)]
	if !ok {
		return models.SaltCacheEntry{}, ErrKeyNotFound
	}
	return entry, nil
}

// Prune drops entries older than maxAge and reports how many were removed.
func (c *SaltCache) Prune(maxAge time.Duration) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for k, entry := range c.entries {
		if entry.CachedAt.Before(cutoff) {
			delete(c.entries, k)
			removed++
		}
	}

	if removed == 0 {
		return 0, nil
	}
	return removed, c.persist()
}
