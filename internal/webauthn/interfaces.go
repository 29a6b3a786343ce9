// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package webauthn wraps the platform passkey ceremonies for registration and
// authentication, optionally requesting a PRF evaluation bound to a salt.
//
// The package holds no state of its own: the [Bridge] drives a ceremony on an
// injected [Authenticator] (the browser/platform surface) and surfaces
// whatever the platform returns for the PRF extension. Cancellation is a
// normal return path — [ErrCancelled] — not an exceptional one.
package webauthn

import (
	"context"

	"github.com/MKhiriev/go-passkey-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/authenticator_mock.go -package=mock

// Authenticator is the platform WebAuthn surface the bridge drives. It is
// the engine's only wire-level dependency. Implementations must report
// failures as (wrapped) package sentinels where one applies; anything else
// is treated as unknown by the bridge.
type Authenticator interface {
	// MakeCredential runs the registration ceremony.
	MakeCredential(ctx context.Context, opts models.CredentialCreationOptions) (models.RegistrationResult, error)

	// GetAssertion runs the authentication ceremony.
	GetAssertion(ctx context.Context, opts models.CredentialRequestOptions) (models.AssertionResult, error)
}
