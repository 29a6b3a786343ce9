// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keycache is the device-local, per-user store for the unlocked
// master key and the public PRF salt cache.
//
// The key cache is the only place an unlocked master key lives outside the
// session controller's memory. It is keyed by user ID, survives process
// restarts within the same device profile, and never leaves the device: the
// file is written 0600 next to the application state, holds raw key bytes in
// no portable serialisation, and clearing it is the mandatory first step of
// logout. It is a client-side hygiene mechanism, not an authorization
// control — server-side session revocation is a separate concern.
package keycache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// KeyCache stores unlocked master keys keyed by user identifier.
type KeyCache interface {
	// Store caches key for userID, replacing any previous one.
	Store(userID int64, key []byte) error

	// Get returns the cached key, or [ErrKeyNotFound] when absent.
	Get(userID int64) ([]byte, error)

	// Delete removes the key for one user.
	Delete(userID int64) error

	// ClearAll wipes every cached key. Must run before the authenticated
	// session is torn down server-side, so no key survives on a device whose
	// session is being revoked.
	ClearAll() error
}

type fileKeyCache struct {
	path     string
	inMemory bool

	mu   sync.RWMutex
	keys map[string][]byte
}

type keyCacheState struct {
	Keys map[string][]byte `json:"keys"`
}

// NewKeyCache opens (or creates) the key cache at path. An empty path yields
// a purely in-memory cache. A file that exists but cannot be read or decoded
// is reported as [ErrStorageUnavailable]; callers degrade to an in-memory
// cache rather than crash.
func NewKeyCache(path string) (KeyCache, error) {
	c := &fileKeyCache{
		path:     path,
		inMemory: path == "",
		keys:     make(map[string][]byte),
	}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewMemoryKeyCache returns a cache that never touches the filesystem.
func NewMemoryKeyCache() KeyCache {
	return &fileKeyCache{inMemory: true, keys: make(map[string][]byte)}
}

func (c *fileKeyCache) load() error {
	if c.inMemory {
		return nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read key cache: %w", ErrStorageUnavailable, err)
	}

	var st keyCacheState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode key cache: %w", ErrStorageUnavailable, err)
	}
	if st.Keys != nil {
		c.keys = st.Keys
	}

	return nil
}

// persist is called with the write lock held.
func (c *fileKeyCache) persist() error {
	if c.inMemory {
		return nil
	}

	dir := filepath.Dir(c.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("%w: create key cache dir: %w", ErrStorageUnavailable, err)
		}
	}

	payload, err := json.Marshal(keyCacheState{Keys: c.keys})
	if err != nil {
		return fmt.Errorf("encode key cache: %w", err)
	}

	if err := os.WriteFile(c.path, payload, 0o600); err != nil {
		return fmt.Errorf("%w: write key cache: %w", ErrStorageUnavailable, err)
	}

	return nil
}

func cacheKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

func (c *fileKeyCache) Store(userID int64, key []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.keys[cacheKey(userID)] = key
	return c.persist()
}

func (c *fileKeyCache) Get(userID int64) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key, ok := c.keys[cacheKey(userID)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return key, nil
}

func (c *fileKeyCache) Delete(userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.keys, cacheKey(userID))
	return c.persist()
}

// ClearAll zeroes the in-memory copies before dropping them; the map is
// replaced even when the persist fails, so a failed write never leaves keys
// reachable through this cache.
func (c *fileKeyCache) ClearAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, key := range c.keys {
		for i := range key {
			key[i] = 0
		}
		delete(c.keys, k)
	}
	c.keys = make(map[string][]byte)

	return c.persist()
}
