package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrCredentialNotOwned  = errors.New("credential does not belong to this account")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoRecordID     = errors.New("no record ID provided")
	ErrValidationNoRecordFields = errors.New("record has neither fields nor blob")
	ErrValidationNoUserID       = errors.New("no user ID for vault record was given")
	ErrValidationNoPRFSalt      = errors.New("credential has no PRF salt")

	// Client-side sentinels: the outcome of talking to the server through the
	// adapter, after transport errors have been mapped.
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrAccessDenied     = errors.New("access to different user data denied")

	// ErrSessionLocked is returned by client vault operations that need the
	// master key while the encryption session is locked.
	ErrSessionLocked = errors.New("encryption session is locked")
)
