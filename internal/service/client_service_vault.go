package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-passkey-vault/internal/adapter"
	"github.com/MKhiriev/go-passkey-vault/internal/crypto"
	"github.com/MKhiriev/go-passkey-vault/internal/keycache"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/session"
	"github.com/MKhiriev/go-passkey-vault/internal/utils"
	"github.com/MKhiriev/go-passkey-vault/models"
)

// ErrNoCredentialsRegistered means the account has no passkey able to derive
// the master key; unlock cannot even start a ceremony.
var ErrNoCredentialsRegistered = errors.New("no passkey credentials registered for this account")

type clientVaultService struct {
	adapter adapter.ServerAdapter
	session *session.Controller
	salts   *keycache.SaltCache
	cipher  crypto.RecordCipher
	checker crypto.KeyChecker
	uuid    *utils.UUIDGenerator

	logger *logger.Logger
}

func NewClientVaultService(serverAdapter adapter.ServerAdapter, sessionCtrl *session.Controller, salts *keycache.SaltCache, logger *logger.Logger) ClientVaultService {
	return &clientVaultService{
		adapter: serverAdapter,
		session: sessionCtrl,
		salts:   salts,
		cipher:  crypto.NewRecordCipher(),
		checker: crypto.NewKeyChecker(),
		uuid:    utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// Unlock implements [ClientVaultService].
//
// The online path fetches the account's credentials and tries them in turn,
// each ceremony bound to that credential's own PRF parameters and KCV. The
// unlock verifies credential ownership server-side and checks the derived key
// against the stored KCV. When no KCV exists yet this
// is the establishing unlock: the derived key is trusted, and its KCV is
// generated and pushed so every later unlock can be checked.
//
// When the server is unreachable the locally mirrored PRF parameters allow a
// degraded unlock: no ownership check, no key check. A wrong key then
// surfaces as decryption failures instead of an unlock error.
func (v *clientVaultService) Unlock(ctx context.Context, userID int64) error {
	if v.session.CheckState(userID) == session.StateUnlocked {
		return nil
	}

	credentials, err := v.adapter.GetUserCredentials(ctx)
	if err != nil {
		return v.unlockOffline(ctx, userID, mapAdapterError(err))
	}
	if len(credentials) == 0 {
		return ErrNoCredentialsRegistered
	}

	verify := func(ctx context.Context, credentialID string) (bool, error) {
		return v.adapter.VerifyOwnership(ctx, credentialID)
	}

	// Each credential carries its own PRF salt and KCV, so every ceremony
	// runs with a single-entry allow list: the answering credential is always
	// the one whose parameters were attached. A cancelled ceremony can mean
	// the credential is simply absent from this device, so the next one is
	// tried before the cancellation is reported.
	var lastErr error
	for _, credential := range credentials {
		var kcv *models.KeyCheckValue
		if !credential.KCV.IsZero() {
			kcv = &credential.KCV
		}

		err := v.session.UnlockWithPasskey(ctx, userID, credential.PRF, []string{credential.CredentialID}, verify, kcv)
		if err == nil {
			if err := v.salts.Put(userID, credential.PRF); err != nil {
				v.logger.Err(err).Int64("user_id", userID).Msg("salt cache write failed")
			}
			if kcv == nil {
				v.establishKCV(ctx, userID, credential.CredentialID)
			}
			return nil
		}
		if !errors.Is(err, session.ErrCancelled) || ctx.Err() != nil {
			return err
		}
		lastErr = err
	}

	return lastErr
}

func (v *clientVaultService) unlockOffline(ctx context.Context, userID int64, cause error) error {
	entry, err := v.salts.Get(userID)
	if err != nil {
		return cause
	}

	v.logger.Warn().
		Int64("user_id", userID).
		AnErr("cause", cause).
		Msg("server unreachable, unlocking from cached PRF parameters without key check")

	params := models.PRFParameters{Salt: entry.Salt, Version: entry.Version}
	return v.session.UnlockWithPasskey(ctx, userID, params, nil, nil, nil)
}

// establishKCV generates and uploads the key check value after the first
// successful unlock. Failure is not fatal to the unlock itself: the session
// is already usable, only future wrong-key detection is delayed until a
// retry succeeds.
func (v *clientVaultService) establishKCV(ctx context.Context, userID int64, credentialID string) {
	key := v.session.MasterKey().Bytes()
	if key == nil {
		return
	}

	kcv, err := v.checker.GenerateKCV(key)
	if err != nil {
		v.logger.Err(err).Int64("user_id", userID).Msg("key check value generation failed")
		return
	}

	if err := v.adapter.SaveKCV(ctx, credentialID, kcv); err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			// Another device won the race; its KCV is just as valid.
			return
		}
		v.logger.Err(err).Int64("user_id", userID).Msg("key check value upload failed")
		return
	}

	v.logger.Info().Int64("user_id", userID).Str("credential_id", credentialID).Msg("key check value established")
}

// Lock implements [ClientVaultService].
func (v *clientVaultService) Lock(userID int64) error {
	return v.session.Lock(userID)
}

// IsUnlocked implements [ClientVaultService].
func (v *clientVaultService) IsUnlocked() bool {
	return v.session.IsUnlocked()
}

// CreateRecord implements [ClientVaultService]. The record ID is minted here
// and is immutable afterwards: it is part of the AAD every field is bound to.
func (v *clientVaultService) CreateRecord(ctx context.Context, fields map[string]string, blob []byte) (models.VaultRecord, error) {
	key := v.session.MasterKey().Bytes()
	if key == nil {
		return models.VaultRecord{}, ErrSessionLocked
	}
	if len(fields) == 0 && len(blob) == 0 {
		return models.VaultRecord{}, ErrValidationNoRecordFields
	}

	record := models.VaultRecord{ID: v.uuid.Generate()}
	aad := record.AAD()

	record.Fields = make(map[string]models.EncryptedData)
	if len(fields) > 0 {
		names := fieldNames(fields)
		encrypted, err := v.cipher.EncryptFields(fields, names, key, aad)
		if err != nil {
			return models.VaultRecord{}, fmt.Errorf("encrypt record fields: %w", err)
		}
		record.Fields = encrypted
	}

	if len(blob) > 0 {
		encryptedBlob, err := v.cipher.EncryptBlob(blob, key, aad)
		if err != nil {
			return models.VaultRecord{}, fmt.Errorf("encrypt record blob: %w", err)
		}
		record.Blob = encryptedBlob
	}

	saved, err := v.adapter.SaveRecord(ctx, record)
	if err != nil {
		return models.VaultRecord{}, mapAdapterError(err)
	}

	return saved, nil
}

// GetRecord implements [ClientVaultService].
func (v *clientVaultService) GetRecord(ctx context.Context, recordID string) (DecryptedRecord, error) {
	key := v.session.MasterKey().Bytes()
	if key == nil {
		return DecryptedRecord{}, ErrSessionLocked
	}

	record, err := v.adapter.GetRecord(ctx, recordID)
	if err != nil {
		return DecryptedRecord{}, mapAdapterError(err)
	}

	return v.decryptRecord(record, key)
}

// ListRecords implements [ClientVaultService]. Decryption failures are
// isolated per record: the vault stays readable around a corrupt entry.
func (v *clientVaultService) ListRecords(ctx context.Context) ([]DecryptedRecord, error) {
	key := v.session.MasterKey().Bytes()
	if key == nil {
		return nil, ErrSessionLocked
	}

	records, err := v.adapter.GetRecords(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	decrypted := make([]DecryptedRecord, 0, len(records))
	for _, record := range records {
		plain, err := v.decryptRecord(record, key)
		if err != nil {
			v.logger.Err(err).Str("record_id", record.ID).Msg("record decryption failed, skipping")
			continue
		}
		decrypted = append(decrypted, plain)
	}

	return decrypted, nil
}

// UpdateRecord implements [ClientVaultService]. The payload is re-encrypted
// under the existing record ID so the AAD binding is preserved.
func (v *clientVaultService) UpdateRecord(ctx context.Context, recordID string, fields map[string]string, blob []byte) (models.VaultRecord, error) {
	key := v.session.MasterKey().Bytes()
	if key == nil {
		return models.VaultRecord{}, ErrSessionLocked
	}
	if recordID == "" {
		return models.VaultRecord{}, ErrValidationNoRecordID
	}
	if len(fields) == 0 && len(blob) == 0 {
		return models.VaultRecord{}, ErrValidationNoRecordFields
	}

	record := models.VaultRecord{ID: recordID}
	aad := record.AAD()

	if len(fields) > 0 {
		encrypted, err := v.cipher.EncryptFields(fields, fieldNames(fields), key, aad)
		if err != nil {
			return models.VaultRecord{}, fmt.Errorf("encrypt record fields: %w", err)
		}
		record.Fields = encrypted
	}

	if len(blob) > 0 {
		encryptedBlob, err := v.cipher.EncryptBlob(blob, key, aad)
		if err != nil {
			return models.VaultRecord{}, fmt.Errorf("encrypt record blob: %w", err)
		}
		record.Blob = encryptedBlob
	}

	updated, err := v.adapter.UpdateRecord(ctx, record)
	if err != nil {
		return models.VaultRecord{}, mapAdapterError(err)
	}

	return updated, nil
}

// DeleteRecord implements [ClientVaultService].
func (v *clientVaultService) DeleteRecord(ctx context.Context, recordID string) error {
	if recordID == "" {
		return ErrValidationNoRecordID
	}

	if err := v.adapter.DeleteRecord(ctx, recordID); err != nil {
		return mapAdapterError(err)
	}

	return nil
}

func (v *clientVaultService) decryptRecord(record models.VaultRecord, key []byte) (DecryptedRecord, error) {
	aad := record.AAD()

	fields, err := v.cipher.DecryptFields(record.Fields, key, aad)
	if err != nil {
		return DecryptedRecord{}, fmt.Errorf("decrypt record %s: %w", record.ID, err)
	}

	var blob []byte
	if len(record.Blob) > 0 {
		blob, err = v.cipher.DecryptBlob(record.Blob, key, aad)
		if err != nil {
			return DecryptedRecord{}, fmt.Errorf("decrypt record %s blob: %w", record.ID, err)
		}
	}

	return DecryptedRecord{
		ID:        record.ID,
		Fields:    fields,
		Blob:      blob,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}, nil
}

func fieldNames(fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	return names
}
