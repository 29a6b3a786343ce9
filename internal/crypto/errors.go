package crypto

import "errors"

var (
	// ErrDecryptionFailed covers wrong key, corrupted ciphertext, and
	// AAD mismatch without distinguishing them: exposing which check failed
	// would give an oracle to an attacker holding ciphertext.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrUnsupportedVersion is returned for an unknown KDF or encryption
	// scheme version. Derivation and decryption fail closed — there is no
	// fallback to a default parameter set.
	ErrUnsupportedVersion = errors.New("unsupported scheme version")

	ErrInvalidKeyLength = errors.New("invalid key length")
	ErrInvalidPRFOutput = errors.New("invalid PRF output length")
)
