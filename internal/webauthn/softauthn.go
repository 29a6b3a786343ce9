// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webauthn

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-passkey-vault/models"
)

// SoftAuthenticator is an in-process software authenticator used by tests and
// the demo client. It keeps resident credentials in memory (optionally
// mirrored to a state file, see [OpenSoftAuthenticator]) and evaluates the
// PRF extension as HMAC-SHA256(credential secret, salt), which matches the
// shape (though of course not the hardware backing) of a real PRF-capable
// key.
type SoftAuthenticator struct {
	mu sync.Mutex

	// statePath, when non-empty, is the file resident credentials are
	// mirrored to after every registration.
	statePath string

	// creds is keyed by relying-party ID, then credential ID.
	creds map[string]map[string]*softCredential

	// prfSupported disables the PRF extension entirely when false,
	// simulating an authenticator without PRF.
	prfSupported bool

	// prfAtRegistration controls whether PRF results are returned during the
	// registration ceremony. Authenticators differ here; both behaviours
	// exist in the field.
	prfAtRegistration bool

	// cancelNext makes the next ceremony fail as user-abandoned.
	cancelNext bool
}

type softCredential struct {
	userHandle []byte
	userName   string
	secret     []byte
	publicKey  []byte
}

// softState is the on-disk form of the resident credential store. The secret
// inside is the PRF root: the file stands in for the authenticator's secure
// element and must stay private to the device (0600).
type softState struct {
	Credentials map[string]map[string]softStateCredential `json:"credentials"`
}

type softStateCredential struct {
	UserHandle []byte `json:"user_handle"`
	UserName   string `json:"user_name"`
	Secret     []byte `json:"secret"`
	PublicKey  []byte `json:"public_key"`
}

// SoftOption configures a [SoftAuthenticator].
type SoftOption func(*SoftAuthenticator)

// WithoutPRF builds an authenticator that does not process the PRF
// extension.
func WithoutPRF() SoftOption {
	return func(a *SoftAuthenticator) { a.prfSupported = false }
}

// WithPRFAtRegistration makes the authenticator return PRF results already
// during registration instead of only at the first authentication.
func WithPRFAtRegistration() SoftOption {
	return func(a *SoftAuthenticator) { a.prfAtRegistration = true }
}

// NewSoftAuthenticator constructs a PRF-capable software authenticator that,
// by default, returns PRF results only during authentication.
func NewSoftAuthenticator(opts ...SoftOption) *SoftAuthenticator {
	a := &SoftAuthenticator{
		creds:        make(map[string]map[string]*softCredential),
		prfSupported: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// OpenSoftAuthenticator constructs an authenticator whose resident
// credentials survive process restarts, loading any existing state from path
// and mirroring every new registration back to it. An empty path yields the
// same in-memory authenticator as [NewSoftAuthenticator].
func OpenSoftAuthenticator(path string, opts ...SoftOption) (*SoftAuthenticator, error) {
	a := NewSoftAuthenticator(opts...)
	a.statePath = path
	if err := a.load(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *SoftAuthenticator) load() error {
	if a.statePath == "" {
		return nil
	}

	data, err := os.ReadFile(a.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read authenticator state: %w", err)
	}

	var st softState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode authenticator state: %w", err)
	}

	for rpID, rpCreds := range st.Credentials {
		loaded := make(map[string]*softCredential, len(rpCreds))
		for id, cred := range rpCreds {
			loaded[id] = &softCredential{
				userHandle: cred.UserHandle,
				userName:   cred.UserName,
				secret:     cred.Secret,
				publicKey:  cred.PublicKey,
			}
		}
		a.creds[rpID] = loaded
	}

	return nil
}

// persist is called with the lock held.
func (a *SoftAuthenticator) persist() error {
	if a.statePath == "" {
		return nil
	}

	st := softState{Credentials: make(map[string]map[string]softStateCredential, len(a.creds))}
	for rpID, rpCreds := range a.creds {
		stored := make(map[string]softStateCredential, len(rpCreds))
		for id, cred := range rpCreds {
			stored[id] = softStateCredential{
				UserHandle: cred.userHandle,
				UserName:   cred.userName,
				Secret:     cred.secret,
				PublicKey:  cred.publicKey,
			}
		}
		st.Credentials[rpID] = stored
	}

	dir := filepath.Dir(a.statePath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create authenticator state dir: %w", err)
		}
	}

	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode authenticator state: %w", err)
	}

	if err := os.WriteFile(a.statePath, payload, 0o600); err != nil {
		return fmt.Errorf("write authenticator state: %w", err)
	}

	return nil
}

// CancelNextCeremony makes the next MakeCredential or GetAssertion call fail
// with [ErrCancelled], simulating the user dismissing the platform prompt.
func (a *SoftAuthenticator) CancelNextCeremony() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelNext = true
}

// MakeCredential implements [Authenticator]. Registering the same user on
// the same relying party twice fails with [ErrAlreadyExists], mirroring the
// platform's InvalidStateError for an already-bound authenticator.
func (a *SoftAuthenticator) MakeCredential(_ context.Context, opts models.CredentialCreationOptions) (models.RegistrationResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancelNext {
		a.cancelNext = false
		return models.RegistrationResult{}, ErrCancelled
	}
	if opts.RelyingParty.ID == "" {
		return models.RegistrationResult{}, fmt.Errorf("%w: empty relying party id", ErrSecurity)
	}

	rpCreds := a.creds[opts.RelyingParty.ID]
	for _, cred := range rpCreds {
		if string(cred.userHandle) == string(opts.User.ID) {
			return models.RegistrationResult{}, ErrAlreadyExists
		}
	}

	credID := make([]byte, 16)
	secret := make([]byte, 32)
	pub := make([]byte, 32)
	for _, buf := range [][]byte{credID, secret, pub} {
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			return models.RegistrationResult{}, fmt.Errorf("generate credential material: %w", err)
		}
	}

	cred := &softCredential{
		userHandle: opts.User.ID,
		userName:   opts.User.Name,
		secret:     secret,
		publicKey:  pub,
	}
	if rpCreds == nil {
		rpCreds = make(map[string]*softCredential)
		a.creds[opts.RelyingParty.ID] = rpCreds
	}
	id := base64.RawURLEncoding.EncodeToString(credID)
	rpCreds[id] = cred

	if err := a.persist(); err != nil {
		// A credential that does not survive a restart is worse than a failed
		// ceremony: the account would be registered with no way back in.
		delete(rpCreds, id)
		return models.RegistrationResult{}, err
	}

	result := models.RegistrationResult{
		CredentialID:      id,
		AttestationObject: []byte("soft-attestation:" + id),
		PublicKey:         pub,
	}

	if prf := opts.Extensions.PRF; prf != nil && a.prfSupported {
		out := &models.PRFOutputs{Enabled: true}
		if a.prfAtRegistration && prf.Eval != nil {
			out.Results = &models.PRFValues{First: evalPRF(secret, prf.Eval.First)}
		}
		result.Extensions.PRF = out
	}

	return result, nil
}

// GetAssertion implements [Authenticator]. With an empty allow-list any
// resident credential for the relying party is used (discoverable-credential
// flow); otherwise the first allowed credential present wins.
func (a *SoftAuthenticator) GetAssertion(_ context.Context, opts models.CredentialRequestOptions) (models.AssertionResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancelNext {
		a.cancelNext = false
		return models.AssertionResult{}, ErrCancelled
	}

	rpCreds := a.creds[opts.RelyingPartyID]
	id, cred := pickCredential(rpCreds, opts.AllowedIDs)
	if cred == nil {
		// No matching credential: the platform reports this the same way as
		// a user cancel, after the timeout runs out.
		return models.AssertionResult{}, ErrCancelled
	}

	result := models.AssertionResult{
		CredentialID:      id,
		AuthenticatorData: []byte("soft-authdata:" + opts.RelyingPartyID),
		Signature:         []byte("soft-signature:" + id),
	}

	if prf := opts.Extensions.PRF; prf != nil && a.prfSupported {
		out := &models.PRFOutputs{Enabled: true}
		if prf.Eval != nil {
			out.Results = &models.PRFValues{First: evalPRF(cred.secret, prf.Eval.First)}
		}
		result.Extensions.PRF = out
	}

	return result, nil
}

func pickCredential(rpCreds map[string]*softCredential, allowed []string) (string, *softCredential) {
	if len(allowed) > 0 {
		for _, id := range allowed {
			if cred, ok := rpCreds[id]; ok {
				return id, cred
			}
		}
		return "", nil
	}
	for id, cred := range rpCreds {
		return id, cred
	}
	return "", nil
}

func evalPRF(secret, salt []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(salt)
	return mac.Sum(nil)
}
