// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webauthn

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/models"
)

const challengeSize = 32

// defaultCeremonyTimeout bounds the user-interactive wait when the caller
// does not configure one. The platform ceremony enforces it; the engine adds
// no timeout of its own.
const defaultCeremonyTimeout = 2 * time.Minute

// Bridge drives registration and authentication ceremonies against the
// platform [Authenticator] and attaches the PRF extension input when a salt
// is provided.
type Bridge struct {
	authn   Authenticator
	rp      models.RelyingParty
	timeout time.Duration
	logger  *logger.Logger
}

// NewBridge constructs a [Bridge] for the given relying party. A zero
// timeout falls back to the default ceremony timeout.
func NewBridge(authn Authenticator, rp models.RelyingParty, timeout time.Duration, log *logger.Logger) *Bridge {
	if timeout <= 0 {
		timeout = defaultCeremonyTimeout
	}
	return &Bridge{
		authn:   authn,
		rp:      rp,
		timeout: timeout,
		logger:  log,
	}
}

// Register runs the registration ceremony for user with the vault's
// authenticator policy: cross-platform attachment, user verification
// required, discoverable credential required. When prfSalt is non-nil it is
// attached as the PRF extension eval input.
//
// PRFEnabled on the result tells whether the authenticator processed the
// extension at all; the PRF output itself is present only on authenticators
// that return results during registration — others return it only at the
// first authentication, and that is not an error here.
func (b *Bridge) Register(ctx context.Context, user models.UserEntity, prfSalt []byte) (models.RegistrationResult, error) {
	challenge, err := newChallenge()
	if err != nil {
		return models.RegistrationResult{}, err
	}

	opts := models.CredentialCreationOptions{
		RelyingParty: b.rp,
		User:         user,
		Challenge:    challenge,
		Selection: models.AuthenticatorSelection{
			AuthenticatorAttachment: "cross-platform",
			ResidentKey:             "required",
			UserVerification:        "required",
		},
		Timeout: b.timeout,
	}
	if prfSalt != nil {
		opts.Extensions.PRF = &models.PRFInputs{
			Eval: &models.PRFValues{First: prfSalt},
		}
	}

	result, err := b.authn.MakeCredential(ctx, opts)
	if err != nil {
		return models.RegistrationResult{}, b.classify(err, "registration")
	}

	b.logger.Debug().
		Str("credential_id", result.CredentialID).
		Bool("prf_enabled", result.Extensions.PRFEnabled()).
		Bool("prf_output_at_registration", result.Extensions.PRFOutput() != nil).
		Msg("registration ceremony completed")

	return result, nil
}

// Authenticate runs the sign-in ceremony. allowedIDs restricts the
// credentials the platform may use; empty means any discoverable credential
// for the relying party. PRF semantics match [Bridge.Register].
func (b *Bridge) Authenticate(ctx context.Context, allowedIDs []string, prfSalt []byte) (models.AssertionResult, error) {
	challenge, err := newChallenge()
	if err != nil {
		return models.AssertionResult{}, err
	}

	opts := models.CredentialRequestOptions{
		RelyingPartyID: b.rp.ID,
		Challenge:      challenge,
		AllowedIDs:     allowedIDs,
		Verification:   "required",
		Timeout:        b.timeout,
	}
	if prfSalt != nil {
		opts.Extensions.PRF = &models.PRFInputs{
			Eval: &models.PRFValues{First: prfSalt},
		}
	}

	result, err := b.authn.GetAssertion(ctx, opts)
	if err != nil {
		return models.AssertionResult{}, b.classify(err, "authentication")
	}

	b.logger.Debug().
		Str("credential_id", result.CredentialID).
		Bool("prf_enabled", result.Extensions.PRFEnabled()).
		Msg("authentication ceremony completed")

	return result, nil
}

// classify maps a platform failure onto the package sentinels. Context
// cancellation is user abandonment; everything unrecognised is reported (and
// logged) as-is so the session controller can fold it into its Unknown kind.
func (b *Bridge) classify(err error, ceremony string) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", ceremony, ErrCancelled)
	case errors.Is(err, ErrCancelled),
		errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrSecurity):
		return fmt.Errorf("%s: %w", ceremony, err)
	default:
		b.logger.Err(err).Str("ceremony", ceremony).Msg("unclassified authenticator failure")
		return fmt.Errorf("%s ceremony failed: %w", ceremony, err)
	}
}

func newChallenge() ([]byte, error) {
	challenge := make([]byte, challengeSize)
	if _, err := io.ReadFull(rand.Reader, challenge); err != nil {
		return nil, fmt.Errorf("generate challenge: %w", err)
	}
	return challenge, nil
}
