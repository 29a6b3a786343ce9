package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/store"
	"github.com/MKhiriev/go-passkey-vault/models"
)

// vaultService is the concrete implementation of VaultService. It owns the
// server-side half of the vault: passkey credentials with their public PRF
// parameters, write-once key check values, and encrypted records stored
// verbatim.
type vaultService struct {
	credentialRepository store.CredentialRepository
	recordRepository     store.RecordRepository

	logger *logger.Logger
}

// NewVaultService constructs a VaultService over the given repositories.
func NewVaultService(credentialRepository store.CredentialRepository, recordRepository store.RecordRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		credentialRepository: credentialRepository,
		recordRepository:     recordRepository,
		logger:               logger,
	}
}

// SaveCredential registers a passkey credential and its PRF parameters for a
// user. The PRF salt is mandatory: a credential without derivation
// parameters can never unlock the vault, so it is rejected up front.
//
// Returns the persisted credential or:
//   - ErrInvalidDataProvided if CredentialID or UserID is missing.
//   - ErrValidationNoPRFSalt if the PRF salt is empty.
//   - A wrapped storage error (e.g. store.ErrCredentialAlreadyExists).
func (v *vaultService) SaveCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if credential.CredentialID == "" || credential.UserID == 0 {
		log.Error().Any("credential", credential).Msg("invalid credential data provided")
		return models.Credential{}, ErrInvalidDataProvided
	}
	if len(credential.PRF.Salt) == 0 {
		log.Error().Str("credential_id", credential.CredentialID).Msg("credential has no PRF salt")
		return models.Credential{}, ErrValidationNoPRFSalt
	}

	saved, err := v.credentialRepository.SaveCredential(ctx, credential)
	if err != nil {
		log.Err(err).Str("credential_id", credential.CredentialID).Msg("credential save ended with error")
		return models.Credential{}, fmt.Errorf("credential save ended with error: %w", err)
	}

	return saved, nil
}

// GetCredential fetches one credential by its identifier.
func (v *vaultService) GetCredential(ctx context.Context, credentialID string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if credentialID == "" {
		return models.Credential{}, ErrInvalidDataProvided
	}

	credential, err := v.credentialRepository.GetCredential(ctx, credentialID)
	if err != nil {
		log.Err(err).Str("credential_id", credentialID).Msg("credential lookup failed")
		return models.Credential{}, fmt.Errorf("credential lookup failed: %w", err)
	}

	return credential, nil
}

// GetUserCredentials lists all credentials registered for a user. The list
// feeds the allow-list of the client's authentication ceremony.
func (v *vaultService) GetUserCredentials(ctx context.Context, userID int64) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return nil, ErrValidationNoUserID
	}

	credentials, err := v.credentialRepository.GetUserCredentials(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user credentials lookup failed")
		return nil, fmt.Errorf("user credentials lookup failed: %w", err)
	}

	return credentials, nil
}

// VerifyCredentialOwnership reports whether credentialID is bound to userID.
// An unregistered credential is simply not owned, not an error.
func (v *vaultService) VerifyCredentialOwnership(ctx context.Context, credentialID string, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	if credentialID == "" || userID == 0 {
		return false, ErrInvalidDataProvided
	}

	owned, err := v.credentialRepository.VerifyOwnership(ctx, credentialID, userID)
	if err != nil {
		log.Err(err).Str("credential_id", credentialID).Msg("credential ownership check failed")
		return false, fmt.Errorf("credential ownership check failed: %w", err)
	}

	return owned, nil
}

// SaveKCV stores the key check value established by the first successful
// unlock. Ownership is checked first so one account cannot attach a KCV to
// another account's credential; after that the write-once guarantee is
// enforced by the repository (store.ErrKCVAlreadyExists).
func (v *vaultService) SaveKCV(ctx context.Context, userID int64, credentialID string, kcv models.KeyCheckValue) error {
	log := logger.FromContext(ctx)

	if credentialID == "" || kcv.IsZero() {
		log.Error().Str("credential_id", credentialID).Msg("invalid key check value data provided")
		return ErrInvalidDataProvided
	}

	owned, err := v.credentialRepository.VerifyOwnership(ctx, credentialID, userID)
	if err != nil {
		log.Err(err).Str("credential_id", credentialID).Msg("credential ownership check failed")
		return fmt.Errorf("credential ownership check failed: %w", err)
	}
	if !owned {
		log.Error().
			Int64("user_id", userID).
			Str("credential_id", credentialID).
			Msg("credential is not bound to this account")
		return ErrCredentialNotOwned
	}

	if err := v.credentialRepository.SaveKCV(ctx, credentialID, kcv); err != nil {
		log.Err(err).Str("credential_id", credentialID).Msg("key check value save ended with error")
		return fmt.Errorf("key check value save ended with error: %w", err)
	}

	return nil
}

// SaveRecord persists a new encrypted record. The server never inspects the
// field bundles or the blob; validation covers structure only.
//
// Returns the persisted record or:
//   - ErrValidationNoRecordID if the client-assigned ID is missing.
//   - ErrValidationNoUserID if the owning user is missing.
//   - ErrValidationNoRecordFields if the record carries no payload at all.
//   - A wrapped storage error if the repository call fails.
func (v *vaultService) SaveRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	if err := validateRecord(record); err != nil {
		log.Error().Str("record_id", record.ID).Msg("invalid record data provided")
		return models.VaultRecord{}, err
	}

	saved, err := v.recordRepository.SaveRecord(ctx, record)
	if err != nil {
		log.Err(err).Str("record_id", record.ID).Msg("record save ended with error")
		return models.VaultRecord{}, fmt.Errorf("record save ended with error: %w", err)
	}

	return saved, nil
}

// GetRecord fetches one record scoped to its owner.
func (v *vaultService) GetRecord(ctx context.Context, userID int64, recordID string) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return models.VaultRecord{}, ErrValidationNoUserID
	}
	if recordID == "" {
		return models.VaultRecord{}, ErrValidationNoRecordID
	}

	record, err := v.recordRepository.GetRecord(ctx, userID, recordID)
	if err != nil {
		log.Err(err).Str("record_id", recordID).Msg("record lookup failed")
		return models.VaultRecord{}, fmt.Errorf("record lookup failed: %w", err)
	}

	return record, nil
}

// GetRecords lists all records owned by userID, oldest first.
func (v *vaultService) GetRecords(ctx context.Context, userID int64) ([]models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return nil, ErrValidationNoUserID
	}

	records, err := v.recordRepository.GetRecords(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("records lookup failed")
		return nil, fmt.Errorf("records lookup failed: %w", err)
	}

	return records, nil
}

// UpdateRecord replaces the encrypted payload of an existing record. The
// record ID never changes: it is part of the AAD binding of every field.
func (v *vaultService) UpdateRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	if err := validateRecord(record); err != nil {
		log.Error().Str("record_id", record.ID).Msg("invalid record data provided")
		return models.VaultRecord{}, err
	}

	updated, err := v.recordRepository.UpdateRecord(ctx, record)
	if err != nil {
		log.Err(err).Str("record_id", record.ID).Msg("record update ended with error")
		return models.VaultRecord{}, fmt.Errorf("record update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteRecord removes a record scoped to its owner.
func (v *vaultService) DeleteRecord(ctx context.Context, userID int64, recordID string) error {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return ErrValidationNoUserID
	}
	if recordID == "" {
		return ErrValidationNoRecordID
	}

	if err := v.recordRepository.DeleteRecord(ctx, userID, recordID); err != nil {
		log.Err(err).Str("record_id", recordID).Msg("record deletion ended with error")
		return fmt.Errorf("record deletion ended with error: %w", err)
	}

	return nil
}

func validateRecord(record models.VaultRecord) error {
	if record.ID == "" {
		return ErrValidationNoRecordID
	}
	if record.UserID == 0 {
		return ErrValidationNoUserID
	}
	if len(record.Fields) == 0 && len(record.Blob) == 0 {
		return ErrValidationNoRecordFields
	}
	return nil
}
