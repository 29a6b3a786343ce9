// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the cryptographic core of the passkey vault:
// master-key derivation from authenticator PRF output, the per-record
// authenticated cipher, and the key check value used to detect a wrongly
// derived key before it ever touches real data.
//
// The package knows nothing about the network, storage, or users. Every
// function is a pure transformation of its inputs; randomness enters only
// through fresh nonce generation.
package crypto

import "github.com/MKhiriev/go-passkey-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mocks.go -package=mock

// KeyDeriver turns an authenticator PRF output and versioned public
// parameters into the symmetric master key.
//
// The derivation is deterministic: the same (prfOutput, salt, version)
// triple always yields the same key, and a different PRF output (another
// passkey, another authenticator) yields a key indistinguishable from random
// relative to the correct one.
type KeyDeriver interface {
	// DeriveMasterKey derives the 256-bit master key. Unknown parameter
	// versions return [ErrUnsupportedVersion] — never a default fallback.
	DeriveMasterKey(prfOutput []byte, params models.PRFParameters) ([]byte, error)
}

// RecordCipher performs authenticated encryption of individual values bound
// to their owning record via associated data.
//
// Concurrent calls are safe: the cipher holds no state, every call generates
// its own nonce. Callers commonly batch-decrypt a page of records in
// parallel.
type RecordCipher interface {
	// Encrypt seals plaintext under key with a fresh 96-bit nonce. aad, when
	// non-empty, is folded into the authentication computation (not the
	// ciphertext) and must be passed identically on decryption.
	Encrypt(plaintext, key []byte, aad string) (models.EncryptedData, error)

	// Decrypt opens the bundle. Any failure — wrong key, corrupted storage,
	// AAD mismatch — is [ErrDecryptionFailed]; an unknown scheme version is
	// [ErrUnsupportedVersion].
	Decrypt(data models.EncryptedData, key []byte, aad string) ([]byte, error)

	// EncryptObject JSON-serialises v, then encrypts.
	EncryptObject(v any, key []byte, aad string) (models.EncryptedData, error)

	// DecryptObject decrypts and unmarshals into target (a non-nil pointer,
	// same contract as encoding/json.Unmarshal).
	DecryptObject(data models.EncryptedData, key []byte, aad string, target any) error

	// EncryptFields encrypts the named attributes of fields, leaving the
	// rest untouched.
	EncryptFields(fields map[string]string, names []string, key []byte, aad string) (map[string]models.EncryptedData, error)

	// DecryptFields decrypts every bundle in fields. Each attribute fails
	// independently: the returned map holds all attributes that decrypted
	// cleanly, and the error (if any) is a join of per-attribute failures.
	DecryptFields(fields map[string]models.EncryptedData, key []byte, aad string) (map[string]string, error)

	// EncryptBlob seals a binary payload as a single self-describing blob:
	// nonce ‖ ciphertext.
	EncryptBlob(plaintext, key []byte, aad string) ([]byte, error)

	// DecryptBlob opens a blob produced by EncryptBlob.
	DecryptBlob(blob, key []byte, aad string) ([]byte, error)
}

// KeyChecker generates and verifies key check values.
type KeyChecker interface {
	// GenerateKCV encrypts the fixed versioned constant under masterKey with
	// a fresh nonce.
	GenerateKCV(masterKey []byte) (models.KeyCheckValue, error)

	// VerifyKCV reports whether masterKey is the key the KCV was generated
	// under. Corrupt KCVs and wrong keys are both simply false — callers
	// must not be able to tell them apart.
	VerifyKCV(masterKey []byte, kcv models.KeyCheckValue) bool
}
