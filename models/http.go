// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Wire envelopes for the HTTP API. Everything crossing this boundary is
// either public (PRF parameters, KCVs) or opaque ciphertext.

// RegisterUserRequest creates a new account.
type RegisterUserRequest struct {
	Login string `json:"login"`
	Name  string `json:"name,omitempty"`
}

// LoginRequest authenticates an existing account with a passkey assertion.
// The server checks that the presented credential belongs to the account
// before issuing a session token.
type LoginRequest struct {
	Login        string `json:"login"`
	CredentialID string `json:"credential_id"`
}

// SessionResponse is returned by the register and login endpoints: the
// account as the server sees it plus the issued bearer token.
type SessionResponse struct {
	UserID int64  `json:"user_id"`
	Login  string `json:"login"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

// CredentialsResponse lists the passkey credentials registered for the
// authenticated user. Everything here is public: credential IDs, PRF
// parameters, and key check values.
type CredentialsResponse struct {
	Credentials []Credential `json:"credentials"`
}

// SaveCredentialRequest registers a passkey and its PRF parameters for the
// authenticated user.
type SaveCredentialRequest struct {
	CredentialID string        `json:"credential_id"`
	PublicKey    []byte        `json:"public_key"`
	PRF          PRFParameters `json:"prf"`
}

// VerifyCredentialRequest asks whether a credential belongs to the
// authenticated session's user.
type VerifyCredentialRequest struct {
	CredentialID string `json:"credential_id"`
}

// VerifyCredentialResponse answers the ownership predicate.
type VerifyCredentialResponse struct {
	Owned bool `json:"owned"`
}

// SaveKCVRequest stores the key check value for a credential. The server
// accepts it once; a KCV never rotates unless the key does.
type SaveKCVRequest struct {
	CredentialID string        `json:"credential_id"`
	KCV          KeyCheckValue `json:"kcv"`
}

// RecordsResponse returns a page of encrypted records verbatim.
type RecordsResponse struct {
	Records []VaultRecord `json:"records"`
}
