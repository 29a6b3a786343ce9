// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/MKhiriev/go-passkey-vault/models"
)

// kdfParams pins the derivation parameters for one scheme version. New
// versions are appended here; existing entries are immutable so older
// accounts keep deriving the same key.
type kdfParams struct {
	info   string
	keyLen int
}

// kdfVersions maps a PRF parameter version to its derivation parameters.
// An absent version fails closed: there is no default entry.
var kdfVersions = map[int]kdfParams{
	1: {info: "pkvault/master-key/v1", keyLen: 32},
}

// minPRFOutputLen rejects truncated PRF outputs before derivation. The PRF
// extension evaluates HMAC-SHA-256, so anything shorter than a full digest
// means the platform handed us garbage.
const minPRFOutputLen = 32

// CurrentPRFVersion is the derivation version stamped on newly registered
// credentials. Existing credentials keep the version they were minted with.
const CurrentPRFVersion = 1

const prfSaltLen = 32

// NewPRFParameters mints fresh PRF parameters for a new credential: a random
// evaluation salt and the current derivation version. The salt is public but
// must be unique per credential.
func NewPRFParameters() (models.PRFParameters, error) {
	salt := make([]byte, prfSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.PRFParameters{}, fmt.Errorf("prf salt generation: %w", err)
	}
	return models.PRFParameters{Salt: salt, Version: CurrentPRFVersion}, nil
}

type keyDeriver struct{}

// NewKeyDeriver constructs the HKDF-SHA256 [KeyDeriver].
func NewKeyDeriver() KeyDeriver {
	return &keyDeriver{}
}

// DeriveMasterKey implements [KeyDeriver]. The PRF output is the input key
// material, params.Salt the HKDF salt, and the versioned info string
// domain-separates master keys from any other key this scheme may derive
// later.
func (d *keyDeriver) DeriveMasterKey(prfOutput []byte, params models.PRFParameters) ([]byte, error) {
	if len(prfOutput) < minPRFOutputLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidPRFOutput, len(prfOutput))
	}

	p, ok := kdfVersions[params.Version]
	if !ok {
		return nil, fmt.Errorf("%w: kdf version %d", ErrUnsupportedVersion, params.Version)
	}

	key := make([]byte, p.keyLen)
	r := hkdf.New(sha256.New, prfOutput, params.Salt, []byte(p.info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}

	return key, nil
}
