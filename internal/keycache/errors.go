package keycache

import "errors"

var (
	// ErrStorageUnavailable — the backing storage cannot be read or written
	// (private browsing analogue: missing directory, bad permissions, full
	// disk). The session stays functional, it just needs a re-unlock every
	// load.
	ErrStorageUnavailable = errors.New("local key storage unavailable")

	// ErrKeyNotFound — no cached key for the user. A normal state, not a
	// failure.
	ErrKeyNotFound = errors.New("no cached key for user")
)
