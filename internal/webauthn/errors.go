package webauthn

import "errors"

// Ceremony failure modes. Platform authenticator errors are mapped onto
// these sentinels so callers can decide on retry behaviour with errors.Is;
// nothing is silently swallowed.
var (
	// ErrCancelled — the user abandoned the ceremony or it timed out.
	// Retryable.
	ErrCancelled = errors.New("ceremony cancelled")

	// ErrAlreadyExists — the authenticator is already bound to this account
	// (registration only).
	ErrAlreadyExists = errors.New("authenticator already registered")

	// ErrSecurity — the platform refused the ceremony (origin mismatch,
	// policy violation).
	ErrSecurity = errors.New("security error")

	// ErrPRFUnavailable — the authenticator or platform did not process the
	// PRF extension. Not retryable on the same device.
	ErrPRFUnavailable = errors.New("prf extension unavailable")
)
