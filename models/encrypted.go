// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedData is the stored shape of every encrypted attribute of every
// record. The database treats it as an opaque JSON bundle; the actual
// structure and meaning of the plaintext are unknown to the server.
//
// Version denotes the encryption-scheme version, KeyVersion the master-key
// generation that produced the ciphertext. Both travel with the bundle so a
// record written under an older key generation stays decryptable after a key
// rotation migration.
type EncryptedData struct {
	// IV is the 96-bit AES-GCM nonce, fresh per encryption call.
	IV []byte `json:"iv"`

	// Ciphertext is the AEAD output including the authentication tag.
	Ciphertext []byte `json:"ciphertext"`

	// Version is the encryption-scheme version.
	Version int `json:"version"`

	// KeyVersion is the master-key generation the ciphertext was written under.
	KeyVersion int `json:"keyVersion"`
}

// RecordAAD builds the associated-data binding for an encrypted attribute:
// "{table}:{recordId}". It is never stored — both the encrypt and decrypt
// sides recompute it from the owning record's identity, so ciphertext copied
// onto a different record fails authentication.
func RecordAAD(table, recordID string) string {
	return table + ":" + recordID
}
