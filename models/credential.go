// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is the server-side record binding a passkey to a user account.
// It carries the public PRF parameters created at registration and,
// once the first correct master key has been established, the key check
// value. None of these fields are secret.
type Credential struct {
	// CredentialID is the base64url identifier returned by the authenticator.
	CredentialID string `json:"credential_id"`

	// UserID is the owning account. The credential-ownership predicate is a
	// lookup on this mapping.
	UserID int64 `json:"user_id"`

	// PublicKey is the credential public key from the attestation response.
	PublicKey []byte `json:"public_key"`

	// PRF holds the salt/version pair for master-key derivation.
	PRF PRFParameters `json:"prf"`

	// KCV is the key check value for this credential's master key.
	// Zero until the first successful unlock establishes the key.
	KCV KeyCheckValue `json:"kcv"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}
