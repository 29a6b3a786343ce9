package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/models"
	"github.com/jackc/pgerrcode"
)

// credentialRepository is the SQL-backed implementation of
// [CredentialRepository]. It stores passkey credentials in the "credentials"
// table: the credential public key, the public PRF parameters fixed at
// registration, and the key check value established on the first successful
// unlock. All of these are public values; no key material ever reaches
// this layer.
type credentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveCredential persists a newly registered passkey credential together
// with its PRF salt and version. The KCV columns stay NULL until the first
// successful unlock establishes the master key.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrCredentialAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *credentialRepository) SaveCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, saveCredential,
		credential.CredentialID,
		credential.UserID,
		credential.PublicKey,
		credential.PRF.Salt,
		credential.PRF.Version,
	)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.SaveCredential").
			Int64("user_id", credential.UserID).
			Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Credential{}, ErrCredentialAlreadyExists
		default:
			return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var saved models.Credential
	if err := row.Scan(
		&saved.CredentialID,
		&saved.UserID,
		&saved.PublicKey,
		&saved.PRF.Salt,
		&saved.PRF.Version,
		&saved.CreatedAt,
	); err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.SaveCredential").
			Msg("error: scanning error")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// GetCredential retrieves a single credential by its identifier, including
// the PRF parameters and the KCV if one has been established.
func (r *credentialRepository) GetCredential(ctx context.Context, credentialID string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, getCredential, credentialID)

	credential, err := scanCredential(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}
		log.Err(err).
			Str("func", "*credentialRepository.GetCredential").
			Str("credential_id", credentialID).
			Msg("failed to scan credential row")
		return models.Credential{}, err
	}

	return credential, nil
}

// GetUserCredentials returns every credential registered for the given user,
// ordered by creation time. The listing feeds the allow-list of subsequent
// authentication ceremonies.
func (r *credentialRepository) GetUserCredentials(ctx context.Context, userID int64) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCredentialsQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.GetUserCredentials").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.GetUserCredentials").
			Int64("user_id", userID).
			Msg("failed to execute credentials query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	credentials := make([]models.Credential, 0, 4)
	for rows.Next() {
		credential, scanErr := scanCredential(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*credentialRepository.GetUserCredentials").
				Int64("user_id", userID).
				Msg("failed to scan credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		credentials = append(credentials, credential)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*credentialRepository.GetUserCredentials").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return credentials, nil
}

// SaveKCV stores the key check value for a credential. The UPDATE carries an
// IS NULL guard, so an already established KCV is never overwritten: when no
// row is affected the method distinguishes a missing credential from a
// conflicting write by re-reading the credential.
func (r *credentialRepository) SaveKCV(ctx context.Context, credentialID string, kcv models.KeyCheckValue) error {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, saveKCV, kcv.IV, kcv.Ciphertext, kcv.Version, credentialID)
	if err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.SaveKCV").
			Str("credential_id", credentialID).
			Msg("failed to execute kcv update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	if _, err := r.GetCredential(ctx, credentialID); err != nil {
		return err
	}

	return ErrKCVAlreadyExists
}

// VerifyOwnership reports whether the given credential is registered to the
// given user. This is the credential-ownership predicate evaluated before a
// derived key is allowed anywhere near account data.
func (r *credentialRepository) VerifyOwnership(ctx context.Context, credentialID string, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var owned bool
	row := r.QueryRowContext(ctx, credentialOwnership, credentialID, userID)
	if err := row.Scan(&owned); err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.VerifyOwnership").
			Str("credential_id", credentialID).
			Int64("user_id", userID).
			Msg("failed to scan ownership row")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return owned, nil
}

// rowScanner is the subset of *sql.Row / *sql.Rows needed by scanCredential.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCredential reads one credential row. The KCV columns are nullable:
// a credential that has not completed its first unlock yet carries no
// check value.
func scanCredential(row rowScanner) (models.Credential, error) {
	var credential models.Credential
	var kcvIV, kcvCiphertext []byte
	var kcvVersion sql.NullInt64

	if err := row.Scan(
		&credential.CredentialID,
		&credential.UserID,
		&credential.PublicKey,
		&credential.PRF.Salt,
		&credential.PRF.Version,
		&kcvIV,
		&kcvCiphertext,
		&kcvVersion,
		&credential.CreatedAt,
	); err != nil {
		return models.Credential{}, err
	}

	if len(kcvCiphertext) > 0 {
		credential.KCV = models.KeyCheckValue{
			IV:         kcvIV,
			Ciphertext: kcvCiphertext,
			Version:    int(kcvVersion.Int64),
		}
	}

	return credential, nil
}
