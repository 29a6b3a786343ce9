// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// WebAuthn ceremony option and result types. The PRF extension is modelled as
// explicit optional struct fields on the request/response types rather than a
// dynamic widening of the standard shapes: the platform surface speaks JSON,
// so the field names follow the browser extension dictionary
// ({"prf": {"eval": {"first": ...}}} / clientExtensionResults.prf).

// RelyingParty identifies the service the credential is scoped to.
type RelyingParty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserEntity is the user binding embedded in a registration ceremony.
type UserEntity struct {
	ID          []byte `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// AuthenticatorSelection carries the authenticator policy for registration.
type AuthenticatorSelection struct {
	// AuthenticatorAttachment restricts the authenticator class,
	// e.g. "cross-platform" for roaming hardware keys.
	AuthenticatorAttachment string `json:"authenticatorAttachment,omitempty"`

	// ResidentKey is "required" when a discoverable credential is mandatory.
	ResidentKey string `json:"residentKey,omitempty"`

	// UserVerification is "required" when the authenticator must verify the
	// user (PIN, biometric) during the ceremony.
	UserVerification string `json:"userVerification,omitempty"`
}

// PRFValues holds the salt inputs (or evaluation outputs) of the PRF
// extension.
type PRFValues struct {
	First  []byte `json:"first"`
	Second []byte `json:"second,omitempty"`
}

// PRFInputs is the PRF extension input dictionary.
type PRFInputs struct {
	Eval             *PRFValues           `json:"eval,omitempty"`
	EvalByCredential map[string]PRFValues `json:"evalByCredential,omitempty"`
}

// CeremonyExtensions aggregates the extension inputs attached to a ceremony.
type CeremonyExtensions struct {
	PRF *PRFInputs `json:"prf,omitempty"`
}

// PRFOutputs is what the platform reports back for the PRF extension:
// Enabled tells whether the authenticator processed the extension at all,
// Results carries the evaluation output when one was produced. Some
// authenticators process the extension at registration but only return
// results during a later authentication, so Enabled=true with nil Results is
// a normal combination.
type PRFOutputs struct {
	Enabled bool       `json:"enabled"`
	Results *PRFValues `json:"results,omitempty"`
}

// ExtensionResults aggregates clientExtensionResults.
type ExtensionResults struct {
	PRF *PRFOutputs `json:"prf,omitempty"`
}

// CredentialCreationOptions parameterise a registration ceremony.
type CredentialCreationOptions struct {
	RelyingParty RelyingParty           `json:"rp"`
	User         UserEntity             `json:"user"`
	Challenge    []byte                 `json:"challenge"`
	Selection    AuthenticatorSelection `json:"authenticatorSelection"`
	Timeout      time.Duration          `json:"-"`
	Extensions   CeremonyExtensions     `json:"extensions,omitempty"`
}

// CredentialRequestOptions parameterise an authentication ceremony.
type CredentialRequestOptions struct {
	RelyingPartyID string             `json:"rpId"`
	Challenge      []byte             `json:"challenge"`
	AllowedIDs     []string           `json:"allowCredentials,omitempty"`
	Verification   string             `json:"userVerification,omitempty"`
	Timeout        time.Duration      `json:"-"`
	Extensions     CeremonyExtensions `json:"extensions,omitempty"`
}

// RegistrationResult is what a completed registration ceremony yields.
type RegistrationResult struct {
	// CredentialID is the base64url credential identifier.
	CredentialID string `json:"id"`

	// AttestationObject is the opaque attestation response; the engine passes
	// it through to the server untouched.
	AttestationObject []byte `json:"attestationObject"`

	// PublicKey is the credential public key extracted by the platform.
	PublicKey []byte `json:"publicKey,omitempty"`

	Extensions ExtensionResults `json:"clientExtensionResults"`
}

// AssertionResult is what a completed authentication ceremony yields.
type AssertionResult struct {
	CredentialID string `json:"id"`

	// AuthenticatorData and Signature form the opaque assertion response.
	AuthenticatorData []byte `json:"authenticatorData"`
	Signature         []byte `json:"signature"`

	Extensions ExtensionResults `json:"clientExtensionResults"`
}

// PRFOutput returns the first PRF evaluation output, or nil when the platform
// returned none.
func (e ExtensionResults) PRFOutput() []byte {
	if e.PRF == nil || e.PRF.Results == nil {
		return nil
	}
	return e.PRF.Results.First
}

// PRFEnabled reports whether the authenticator processed the PRF extension.
func (e ExtensionResults) PRFEnabled() bool {
	return e.PRF != nil && e.PRF.Enabled
}
