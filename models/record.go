// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultRecord is one end-to-end encrypted record. Every sensitive attribute
// is an [EncryptedData] bundle keyed by field name; Blob optionally carries a
// file-style payload as a self-describing nonce-prepended ciphertext.
// The server stores and returns these bundles verbatim — it never receives
// plaintext or key material.
type VaultRecord struct {
	// ID is a UUIDv7 assigned by the client at creation time. It is part of
	// the AAD binding of every field, so it is immutable.
	ID string `json:"id"`

	// UserID is the owning account.
	UserID int64 `json:"user_id"`

	// Fields maps attribute names to their encrypted bundles.
	Fields map[string]EncryptedData `json:"fields"`

	// Blob is an optional binary payload: nonce ‖ ciphertext.
	Blob []byte `json:"blob,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the VaultRecord model.
func (r VaultRecord) TableName() string {
	return "records"
}

// AAD returns the associated-data binding for this record's fields.
func (r VaultRecord) AAD() string {
	return RecordAAD(r.TableName(), r.ID)
}
