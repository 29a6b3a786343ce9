// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the passkey vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package currently ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-passkey-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the passkey
// vault server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
//
// Nothing crossing this boundary is secret: the adapter carries account
// metadata, public PRF parameters, key check values, and opaque ciphertext
// bundles. Plaintext and key material stay on the client side of it.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful RegisterUser or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// RegisterUser creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the server-assigned user record.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates with a passkey assertion: the server checks that
	// credentialID belongs to the account named by login before issuing a
	// token. On success the token is stored via SetToken.
	Login(ctx context.Context, login, credentialID string) (models.User, error)

	// SaveCredential registers a passkey credential and its PRF parameters
	// for the authenticated user.
	SaveCredential(ctx context.Context, credential models.Credential) (models.Credential, error)

	// GetUserCredentials lists the authenticated user's credentials,
	// including PRF parameters and any established key check values.
	GetUserCredentials(ctx context.Context) ([]models.Credential, error)

	// VerifyOwnership asks whether credentialID belongs to the authenticated
	// user. Used mid-unlock, before the derived key is trusted.
	VerifyOwnership(ctx context.Context, credentialID string) (bool, error)

	// SaveKCV stores the key check value for a credential. The server accepts
	// it once; [ErrConflict] signals an already established KCV.
	SaveKCV(ctx context.Context, credentialID string, kcv models.KeyCheckValue) error

	// SaveRecord uploads a new encrypted record verbatim.
	SaveRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)

	// GetRecord fetches one encrypted record by ID.
	GetRecord(ctx context.Context, recordID string) (models.VaultRecord, error)

	// GetRecords fetches all of the authenticated user's encrypted records.
	GetRecords(ctx context.Context) ([]models.VaultRecord, error)

	// UpdateRecord replaces the encrypted payload of an existing record.
	UpdateRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)

	// DeleteRecord removes a record.
	DeleteRecord(ctx context.Context, recordID string) error
}
