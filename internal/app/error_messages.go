// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// passkey vault server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the authenticated user attempts to
	// access or modify a resource that belongs to a different user.
	MsgAccessDenied = "access denied"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgUserNotFound is returned when a login attempt names an account that
	// does not exist.
	MsgUserNotFound = "user not found"

	// MsgCredentialNotOwned is returned when a login or unlock attempt
	// presents a passkey credential that is not bound to the target account.
	MsgCredentialNotOwned = "credential does not belong to this account"

	// MsgCredentialAlreadyExists is returned when a credential registration
	// reuses an already registered credential ID.
	MsgCredentialAlreadyExists = "credential already exists"

	// MsgCredentialNotFound is returned when an operation targets a passkey
	// credential that is not registered for any account.
	MsgCredentialNotFound = "credential not found"

	// MsgKCVAlreadyExists is returned when a client tries to overwrite an
	// established key check value. KCVs are write-once.
	MsgKCVAlreadyExists = "key check value already set"

	// MsgRecordNotFound is returned when a read, update, or delete operation
	// targets a vault record that does not exist for the current user.
	MsgRecordNotFound = "record not found"
)
