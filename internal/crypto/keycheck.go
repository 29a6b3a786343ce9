// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/MKhiriev/go-passkey-vault/models"
)

// kcvVersion stamps new key check values. Verification only trusts versions
// whose plaintext constant it knows.
const kcvVersion = 1

// kcvPlaintexts maps a KCV version to its fixed plaintext constant.
var kcvPlaintexts = map[int]string{
	1: "pkvault-kcv-v1",
}

// This unit is the last line of defence against a user on a shared device
// authenticating with the wrong account's passkey: the KDF still produces
// *a* key from the foreign PRF output, and without this check the record
// cipher would happily write garbage ciphertext under it.
type keyChecker struct{}

// NewKeyChecker constructs the AES-256-GCM [KeyChecker].
func NewKeyChecker() KeyChecker {
	return &keyChecker{}
}

// GenerateKCV implements [KeyChecker]. A fresh nonce per call is mandatory:
// the KCV is regenerated only on key rotation, but nonce reuse under the same
// key is a hard security bug regardless of call frequency.
func (k *keyChecker) GenerateKCV(masterKey []byte) (models.KeyCheckValue, error) {
	block, err := aes.NewCipher(masterKey)
	if err != nil {
		return models.KeyCheckValue{}, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return models.KeyCheckValue{}, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.KeyCheckValue{}, fmt.Errorf("generate nonce: %w", err)
	}

	ct := gcm.Seal(nil, nonce, []byte(kcvPlaintexts[kcvVersion]), nil)

	return models.KeyCheckValue{
		IV:         nonce,
		Ciphertext: ct,
		Version:    kcvVersion,
	}, nil
}

// VerifyKCV implements [KeyChecker]. Every failure path — unknown version,
// malformed bundle, authentication-tag mismatch, wrong recovered plaintext —
// is just false; the caller cannot tell "corrupt" from "wrong key". The
// plaintext comparison is constant-time so timing does not leak partial
// matches.
func (k *keyChecker) VerifyKCV(masterKey []byte, kcv models.KeyCheckValue) bool {
	expected, ok := kcvPlaintexts[kcv.Version]
	if !ok {
		return false
	}

	block, err := aes.NewCipher(masterKey)
	if err != nil {
		return false
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return false
	}

	if len(kcv.IV) != gcm.NonceSize() {
		return false
	}

	pt, err := gcm.Open(nil, kcv.IV, kcv.Ciphertext, nil)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(pt, []byte(expected)) == 1
}
