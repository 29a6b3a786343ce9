// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the encryption session state machine: it tracks
// locked/unlocked state per device, drives unlock attempts through the
// authenticator bridge, and exposes the unlocked master key to the rest of
// the application for the session's lifetime.
//
// States: Locked (initial) → Unlocking → Unlocked | Locked (on failure);
// Unlocked → Locked on explicit lock or logout. Unlock attempts are
// serialised — a second attempt while one is in flight is rejected, never
// allowed to double-invoke the authenticator.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-passkey-vault/internal/crypto"
	"github.com/MKhiriev/go-passkey-vault/internal/keycache"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/models"
)

// State is the controller's encryption state.
type State int

const (
	StateLocked State = iota
	StateUnlocking
	StateUnlocked
)

// String implements fmt.Stringer for logging.
func (s State) String() string {
	switch s {
	case StateUnlocking:
		return "unlocking"
	case StateUnlocked:
		return "unlocked"
	default:
		return "locked"
	}
}

// KeyHandle is the opaque handle consumers receive for the unlocked master
// key. It is never serialised: it has no struct tags, and the Stringer
// redacts it so an accidental log line cannot leak key material.
type KeyHandle struct {
	key []byte
}

// Bytes exposes the raw key to the record cipher. Callers must treat it as
// opaque and never log, serialise, or transmit it.
func (h *KeyHandle) Bytes() []byte {
	if h == nil {
		return nil
	}
	return h.key
}

// String implements fmt.Stringer.
func (h *KeyHandle) String() string {
	return "KeyHandle(redacted)"
}

// Authenticator is the slice of the webauthn bridge the controller needs.
type Authenticator interface {
	Authenticate(ctx context.Context, allowedIDs []string, prfSalt []byte) (models.AssertionResult, error)
}

// OwnershipVerifier confirms that a credential belongs to the authenticated
// session's user. Implemented server-side against the stored
// credential-to-user mapping.
type OwnershipVerifier func(ctx context.Context, credentialID string) (bool, error)

// Controller coordinates derivation, key check, and the local key cache.
type Controller struct {
	bridge  Authenticator
	deriver crypto.KeyDeriver
	checker crypto.KeyChecker
	cache   keycache.KeyCache
	logger  *logger.Logger

	mu       sync.Mutex
	state    State
	key      []byte
	lastErr  error
	lastUsed time.Time
}

// NewController constructs a [Controller] in the Locked state.
func NewController(bridge Authenticator, deriver crypto.KeyDeriver, checker crypto.KeyChecker, cache keycache.KeyCache, log *logger.Logger) *Controller {
	return &Controller{
		bridge:  bridge,
		deriver: deriver,
		checker: checker,
		cache:   cache,
		logger:  log,
		state:   StateLocked,
	}
}

// CheckState transitions to Unlocked if the local key cache holds a key for
// userID, without any network or authenticator interaction. An unusable
// cache leaves the controller Locked with the storage error recorded.
func (c *Controller) CheckState(userID int64) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateUnlocking {
		return c.state
	}

	key, err := c.cache.Get(userID)
	switch {
	case err == nil:
		c.key = key
		c.state = StateUnlocked
		c.lastErr = nil
		c.lastUsed = time.Now()
	case errors.Is(err, keycache.ErrKeyNotFound):
		c.state = StateLocked
		c.lastErr = nil
	default:
		c.state = StateLocked
		c.lastErr = classify(err)
		c.logger.Err(err).Int64("user_id", userID).Msg("key cache unavailable")
	}

	return c.state
}

// UnlockWithPasskey drives one unlock attempt: authenticator ceremony, key
// derivation, optional ownership verification and key check, then caching.
// Every failure lands back in Locked with a classified error — never a
// half-unlocked state. The method is safe to call repeatedly behind a rate
// limiter; it keeps no partial state between attempts.
//
// verify, when non-nil, must confirm the returned credential belongs to the
// session's user before the key is derived — this closes the window where a
// user on a shared device authenticates with the wrong account's passkey.
// kcv, when non-nil, is verified before the key is cached; on mismatch the
// key is discarded, not cached.
func (c *Controller) UnlockWithPasskey(ctx context.Context, userID int64, params models.PRFParameters, allowedIDs []string, verify OwnershipVerifier, kcv *models.KeyCheckValue) error {
	c.mu.Lock()
	switch c.state {
	case StateUnlocking:
		c.mu.Unlock()
		return ErrUnlockInProgress
	case StateUnlocked:
		c.mu.Unlock()
		return nil
	}
	c.state = StateUnlocking
	c.mu.Unlock()

	err := c.unlock(ctx, userID, params, allowedIDs, verify, kcv)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateLocked
		c.lastErr = err
		c.logger.Err(err).
			Int64("user_id", userID).
			Str("kind", string(KindOf(err))).
			Msg("unlock failed")
		return err
	}

	c.state = StateUnlocked
	c.lastErr = nil
	c.lastUsed = time.Now()
	c.logger.Info().Int64("user_id", userID).Msg("encryption session unlocked")
	return nil
}

func (c *Controller) unlock(ctx context.Context, userID int64, params models.PRFParameters, allowedIDs []string, verify OwnershipVerifier, kcv *models.KeyCheckValue) error {
	assertion, err := c.bridge.Authenticate(ctx, allowedIDs, params.Salt)
	if err != nil {
		return classify(err)
	}

	prfOutput := assertion.Extensions.PRFOutput()
	if prfOutput == nil {
		return fmt.Errorf("%w: ceremony returned no PRF output", ErrPRFUnavailable)
	}

	if verify != nil {
		owned, err := verify(ctx, assertion.CredentialID)
		if err != nil {
			return classify(err)
		}
		if !owned {
			return fmt.Errorf("%w: credential %s is not bound to this account", ErrWrongKey, assertion.CredentialID)
		}
	}

	key, err := c.deriver.DeriveMasterKey(prfOutput, params)
	if err != nil {
		return classify(err)
	}

	if kcv != nil && !kcv.IsZero() {
		if !c.checker.VerifyKCV(key, *kcv) {
			zero(key)
			return ErrWrongKey
		}
	}

	if err := c.cache.Store(userID, key); err != nil {
		// The key is valid; an unusable cache only costs a re-unlock on the
		// next load. Keep the key for this session and record the state.
		c.logger.Err(err).Int64("user_id", userID).Msg("unlocked key could not be cached")
	}

	c.mu.Lock()
	c.key = key
	c.mu.Unlock()

	return nil
}

// Lock clears the cached key for userID and transitions to Locked
// unconditionally: even when clearing partially fails, the reported state
// flips so the UI never claims encryption is active after a lock request.
func (c *Controller) Lock(userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	zero(c.key)
	c.key = nil
	c.state = StateLocked

	if err := c.cache.Delete(userID); err != nil {
		err = classify(err)
		c.lastErr = err
		c.logger.Err(err).Int64("user_id", userID).Msg("lock: key cache clear failed")
		return err
	}

	c.lastErr = nil
	return nil
}

// IsUnlocked is part of the contract surface for consumers.
func (c *Controller) IsUnlocked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateUnlocked
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// MasterKey returns the opaque handle to the unlocked key, or nil while
// locked.
func (c *Controller) MasterKey() *KeyHandle {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateUnlocked || c.key == nil {
		return nil
	}
	c.lastUsed = time.Now()
	return &KeyHandle{key: c.key}
}

// LastUsed reports when the unlocked key was last handed out. The auto-lock
// worker compares it against the idle timeout.
func (c *Controller) LastUsed() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUsed
}

// LastError returns the most recent classified failure, or nil.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
