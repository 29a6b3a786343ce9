// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"

	"github.com/MKhiriev/go-passkey-vault/internal/crypto"
	"github.com/MKhiriev/go-passkey-vault/internal/keycache"
	"github.com/MKhiriev/go-passkey-vault/internal/webauthn"
)

// The controller is the recovery boundary for all cryptographic failures:
// nothing below it surfaces an unclassified error to the UI. Every failure
// is folded into exactly one of these sentinels.
var (
	// ErrCancelled — the user abandoned the ceremony. Retryable.
	ErrCancelled = errors.New("unlock cancelled")

	// ErrPRFUnavailable — the authenticator or browser lacks PRF support.
	// Not retryable without a different device.
	ErrPRFUnavailable = errors.New("passkey does not support key derivation")

	// ErrWrongKey — the derived key failed the key check, or the presented
	// credential belongs to a different account. Retryable with a different
	// credential. The two causes are deliberately not distinguished.
	ErrWrongKey = errors.New("this passkey does not match this account")

	// ErrDecryptionFailed — wrong key, corrupted ciphertext, or AAD
	// mismatch. Intentionally undifferentiated.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrUnsupportedVersion — unknown KDF or encryption scheme version.
	// Fatal for the affected record until a migration path exists.
	ErrUnsupportedVersion = errors.New("unsupported scheme version")

	// ErrStorageUnavailable — the local key cache is unusable. The session
	// stays functional but needs a re-unlock on every load.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrUnlockInProgress — a second unlock attempt while one is already
	// running. The state machine serialises unlocks; retry after the first
	// attempt settles.
	ErrUnlockInProgress = errors.New("unlock already in progress")

	// ErrUnknown — the catch-all. Always logged with context by the
	// controller, never silently ignored.
	ErrUnknown = errors.New("unknown encryption error")
)

// Kind is the error classification exposed to consumers (UI, data-access
// layer) on the controller's contract surface.
type Kind string

const (
	KindNone               Kind = ""
	KindCancelled          Kind = "cancelled"
	KindPRFUnavailable     Kind = "prf_unavailable"
	KindWrongKey           Kind = "wrong_key"
	KindDecryptionFailed   Kind = "decryption_failed"
	KindUnsupportedVersion Kind = "unsupported_version"
	KindStorageUnavailable Kind = "storage_unavailable"
	KindUnlockInProgress   Kind = "unlock_in_progress"
	KindUnknown            Kind = "unknown"
)

// KindOf maps an error produced anywhere in the engine onto its [Kind].
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrCancelled):
		return KindCancelled
	case errors.Is(err, ErrPRFUnavailable):
		return KindPRFUnavailable
	case errors.Is(err, ErrWrongKey):
		return KindWrongKey
	case errors.Is(err, ErrDecryptionFailed):
		return KindDecryptionFailed
	case errors.Is(err, ErrUnsupportedVersion):
		return KindUnsupportedVersion
	case errors.Is(err, ErrStorageUnavailable):
		return KindStorageUnavailable
	case errors.Is(err, ErrUnlockInProgress):
		return KindUnlockInProgress
	default:
		return KindUnknown
	}
}

// classify converts a lower-layer error into the taxonomy. Errors that are
// already classified pass through unchanged.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case KindOf(err) != KindUnknown:
		return err
	case errors.Is(err, webauthn.ErrCancelled):
		return errors.Join(ErrCancelled, err)
	case errors.Is(err, webauthn.ErrPRFUnavailable):
		return errors.Join(ErrPRFUnavailable, err)
	case errors.Is(err, crypto.ErrUnsupportedVersion):
		return errors.Join(ErrUnsupportedVersion, err)
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return errors.Join(ErrDecryptionFailed, err)
	case errors.Is(err, keycache.ErrStorageUnavailable):
		return errors.Join(ErrStorageUnavailable, err)
	default:
		return errors.Join(ErrUnknown, err)
	}
}
