// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-passkey-vault/models"
)

// schemeVersion is the current encryption-scheme version written into every
// bundle. Decryption accepts only versions it knows.
const schemeVersion = 1

// currentKeyVersion is the master-key generation stamped on new ciphertexts.
// It only moves when a key-rotation migration is introduced.
const currentKeyVersion = 1

type recordCipher struct{}

// NewRecordCipher constructs the AES-256-GCM [RecordCipher].
func NewRecordCipher() RecordCipher {
	return &recordCipher{}
}

// newGCM builds the AEAD for a 256-bit key.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// Encrypt implements [RecordCipher].
func (c *recordCipher) Encrypt(plaintext, key []byte, aad string) (models.EncryptedData, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedData{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedData{}, fmt.Errorf("generate nonce: %w", err)
	}

	ct := gcm.Seal(nil, nonce, plaintext, []byte(aad))

	return models.EncryptedData{
		IV:         nonce,
		Ciphertext: ct,
		Version:    schemeVersion,
		KeyVersion: currentKeyVersion,
	}, nil
}

// Decrypt implements [RecordCipher]. Wrong key, bit-flipped IV or
// ciphertext, and a different AAD all land in the same
// [ErrDecryptionFailed].
func (c *recordCipher) Decrypt(data models.EncryptedData, key []byte, aad string) ([]byte, error) {
	if data.Version != schemeVersion {
		return nil, fmt.Errorf("%w: scheme version %d", ErrUnsupportedVersion, data.Version)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(data.IV) != gcm.NonceSize() {
		return nil, ErrDecryptionFailed
	}

	pt, err := gcm.Open(nil, data.IV, data.Ciphertext, []byte(aad))
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return pt, nil
}

// EncryptObject implements [RecordCipher].
func (c *recordCipher) EncryptObject(v any, key []byte, aad string) (models.EncryptedData, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return models.EncryptedData{}, fmt.Errorf("marshal data: %w", err)
	}

	return c.Encrypt(plaintext, key, aad)
}

// DecryptObject implements [RecordCipher].
func (c *recordCipher) DecryptObject(data models.EncryptedData, key []byte, aad string, target any) error {
	plaintext, err := c.Decrypt(data, key, aad)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}

// EncryptFields implements [RecordCipher]. Attributes absent from fields are
// skipped silently so callers can pass a fixed schema of encryptable names.
func (c *recordCipher) EncryptFields(fields map[string]string, names []string, key []byte, aad string) (map[string]models.EncryptedData, error) {
	out := make(map[string]models.EncryptedData, len(names))

	for _, name := range names {
		value, ok := fields[name]
		if !ok {
			continue
		}

		enc, err := c.Encrypt([]byte(value), key, aad)
		if err != nil {
			return nil, fmt.Errorf("encrypt field %q: %w", name, err)
		}
		out[name] = enc
	}

	return out, nil
}

// DecryptFields implements [RecordCipher]. One undecryptable attribute must
// not take the rest of the record down: every bundle is attempted, failures
// are joined into the returned error, and the map carries whatever opened
// cleanly.
func (c *recordCipher) DecryptFields(fields map[string]models.EncryptedData, key []byte, aad string) (map[string]string, error) {
	out := make(map[string]string, len(fields))
	var errs error

	for name, data := range fields {
		pt, err := c.Decrypt(data, key, aad)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("field %q: %w", name, err))
			continue
		}
		out[name] = string(pt)
	}

	return out, errs
}

// EncryptBlob implements [RecordCipher]. The nonce is prepended so the blob
// is self-describing for file-style payloads: blob = nonce ‖ ciphertext.
func (c *recordCipher) EncryptBlob(plaintext, key []byte, aad string) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ct := gcm.Seal(nil, nonce, plaintext, []byte(aad))
	return append(nonce, ct...), nil
}

// DecryptBlob implements [RecordCipher].
func (c *recordCipher) DecryptBlob(blob, key []byte, aad string) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrDecryptionFailed
	}

	nonce, ct := blob[:nonceSize], blob[nonceSize:]
	pt, err := gcm.Open(nil, nonce, ct, []byte(aad))
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return pt, nil
}
