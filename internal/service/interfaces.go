package service

import (
	"context"

	"github.com/MKhiriev/go-passkey-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, login, credentialID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService is the server-side surface over credentials, key check
// values, and encrypted records. Everything it handles is either public
// metadata (PRF parameters, KCVs) or opaque ciphertext; the server never
// sees plaintext or key material.
type VaultService interface {
	SaveCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	GetCredential(ctx context.Context, credentialID string) (models.Credential, error)
	GetUserCredentials(ctx context.Context, userID int64) ([]models.Credential, error)
	VerifyCredentialOwnership(ctx context.Context, credentialID string, userID int64) (bool, error)

	// SaveKCV stores the key check value for an owned credential. Write-once:
	// an established KCV is never overwritten.
	SaveKCV(ctx context.Context, userID int64, credentialID string, kcv models.KeyCheckValue) error

	SaveRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)
	GetRecord(ctx context.Context, userID int64, recordID string) (models.VaultRecord, error)
	GetRecords(ctx context.Context, userID int64) ([]models.VaultRecord, error)
	UpdateRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)
	DeleteRecord(ctx context.Context, userID int64, recordID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
