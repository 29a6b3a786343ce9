package store

import (
	"context"

	"github.com/MKhiriev/go-passkey-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// UserRepository persists passwordless user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// CredentialRepository persists passkey credentials together with their
// public PRF parameters and key check values.
type CredentialRepository interface {
	SaveCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	GetCredential(ctx context.Context, credentialID string) (models.Credential, error)
	GetUserCredentials(ctx context.Context, userID int64) ([]models.Credential, error)
	// SaveKCV stores the key check value for a credential. The KCV is written
	// once; a second attempt returns [ErrKCVAlreadyExists].
	SaveKCV(ctx context.Context, credentialID string, kcv models.KeyCheckValue) error
	// VerifyOwnership reports whether the credential belongs to the user.
	VerifyOwnership(ctx context.Context, credentialID string, userID int64) (bool, error)
}

// RecordRepository persists encrypted vault records. The stored payloads are
// opaque ciphertext bundles; the repository never inspects them.
type RecordRepository interface {
	SaveRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)
	GetRecord(ctx context.Context, userID int64, recordID string) (models.VaultRecord, error)
	GetRecords(ctx context.Context, userID int64) ([]models.VaultRecord, error)
	UpdateRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)
	DeleteRecord(ctx context.Context, userID int64, recordID string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
