// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PRFParameters are the public inputs to master-key derivation for one
// passkey. They are created once at credential registration and are immutable
// afterwards: registering a new passkey produces a new salt/version pair, the
// old pair is never changed in place.
//
// Neither field is secret. The salt is also handed to the authenticator as
// the PRF extension input, and the version selects the KDF parameters on the
// client side.
type PRFParameters struct {
	// Salt is the PRF evaluation salt (32 random bytes). Stored server-side
	// and mirrored in the local salt cache so a later authentication ceremony
	// can request PRF evaluation proactively.
	Salt []byte `json:"salt"`

	// Version selects the key-derivation parameters (hash, info string,
	// output length). Unknown versions fail closed on the client.
	Version int `json:"version"`
}

// SaltCacheEntry is the locally cached copy of [PRFParameters] for a user.
// It lives in ordinary (non-secret) local state: the same values are known to
// the server, so leaking an entry reveals nothing.
type SaltCacheEntry struct {
	Salt     []byte    `json:"salt"`
	Version  int       `json:"version"`
	CachedAt time.Time `json:"cached_at"`
}
