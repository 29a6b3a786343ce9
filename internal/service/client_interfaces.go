package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-passkey-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mocks.go -package=mock

// PasskeyBridge is the slice of the authenticator bridge the client services
// drive: one ceremony per call, user interaction included.
type PasskeyBridge interface {
	Register(ctx context.Context, user models.UserEntity, prfSalt []byte) (models.RegistrationResult, error)
	Authenticate(ctx context.Context, allowedIDs []string, prfSalt []byte) (models.AssertionResult, error)
}

// ClientAuthService owns the account lifecycle on the client: registration
// (account + passkey + PRF parameters in one flow), passkey login, and
// logout with key material cleanup.
type ClientAuthService interface {
	// Register creates the account on the server, runs the passkey
	// registration ceremony with a fresh PRF salt, and pushes the resulting
	// credential. Returns the server-assigned user record.
	Register(ctx context.Context, login, name string) (models.User, error)

	// Login runs an authentication ceremony to prove possession of a
	// passkey, then authenticates against the server with the asserted
	// credential. Does not unlock encryption; that is a separate ceremony.
	Login(ctx context.Context, login string) (models.User, error)

	// Logout locks the encryption session and wipes every cached key on
	// this device, then drops the bearer token.
	Logout(ctx context.Context, userID int64) error
}

// DecryptedRecord is a vault record after client-side decryption. It exists
// only in memory on an unlocked device.
type DecryptedRecord struct {
	ID        string
	Fields    map[string]string
	Blob      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientVaultService is the encrypt-on-write, decrypt-on-read surface over
// the server's record store. Every operation that touches plaintext requires
// an unlocked encryption session.
type ClientVaultService interface {
	// Unlock drives one unlock attempt: fetch credentials, run the
	// authenticator ceremony, derive and check the key. When the account has
	// no key check value yet this attempt establishes it.
	Unlock(ctx context.Context, userID int64) error

	// Lock clears the unlocked key and the local key cache entry.
	Lock(userID int64) error

	// IsUnlocked reports whether the master key is available.
	IsUnlocked() bool

	// CreateRecord encrypts fields and blob under the session's master key
	// and uploads the resulting record.
	CreateRecord(ctx context.Context, fields map[string]string, blob []byte) (models.VaultRecord, error)

	// GetRecord fetches and decrypts one record.
	GetRecord(ctx context.Context, recordID string) (DecryptedRecord, error)

	// ListRecords fetches and decrypts all records. A record that fails to
	// decrypt is skipped and logged; one corrupt record must not hide the
	// rest of the vault.
	ListRecords(ctx context.Context) ([]DecryptedRecord, error)

	// UpdateRecord re-encrypts the new payload under the record's existing
	// AAD binding and uploads it.
	UpdateRecord(ctx context.Context, recordID string, fields map[string]string, blob []byte) (models.VaultRecord, error)

	// DeleteRecord removes a record server-side. No key needed.
	DeleteRecord(ctx context.Context, recordID string) error
}
