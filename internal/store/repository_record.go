package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/models"
)

// recordRepository is the SQL-backed implementation of [RecordRepository].
// It executes all vault-record CRUD operations directly against the
// "records" table using the embedded [*DB] connection.
//
// The encrypted field map is serialised to JSON for storage: every value in
// it is already an opaque ciphertext bundle, so the column contents reveal
// nothing beyond field names and sizes.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, record_id, etc.).
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveRecord persists a new encrypted vault record and returns the stored
// row with server-assigned timestamps.
func (r *recordRepository) SaveRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	encodedFields, err := encodeFields(record.Fields)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.SaveRecord").
			Str("record_id", record.ID).
			Msg("failed to encode encrypted fields")
		return models.VaultRecord{}, err
	}

	row := r.QueryRowContext(ctx, saveRecord, record.ID, record.UserID, encodedFields, record.Blob)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "recordRepository.SaveRecord").
			Int64("user_id", record.UserID).
			Str("record_id", record.ID).
			Msg("failed to execute record insert")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	saved, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultRecord{}, ErrRecordNotSaved
		}
		log.Err(err).
			Str("func", "recordRepository.SaveRecord").
			Str("record_id", record.ID).
			Msg("failed to scan saved record")
		return models.VaultRecord{}, err
	}

	return saved, nil
}

// GetRecord retrieves a single vault record owned by the given user.
func (r *recordRepository) GetRecord(ctx context.Context, userID int64, recordID string) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordsQuery(userID, recordID)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetRecord").
			Int64("user_id", userID).
			Msg("failed to create query")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.QueryRowContext(ctx, query, args...)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultRecord{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "recordRepository.GetRecord").
			Int64("user_id", userID).
			Str("record_id", recordID).
			Msg("failed to scan record row")
		return models.VaultRecord{}, err
	}

	return record, nil
}

// GetRecords retrieves all vault records owned by the given user, ordered by
// creation time.
func (r *recordRepository) GetRecords(ctx context.Context, userID int64) ([]models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordsQuery(userID, "")
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetRecords").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetRecords").
			Int64("user_id", userID).
			Msg("failed to execute records query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.VaultRecord, 0, 50)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordRepository.GetRecords").
				Int64("user_id", userID).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recordRepository.GetRecords").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// UpdateRecord replaces the payload columns of an existing record. Only the
// columns present on the input (fields, blob) are updated; the record ID and
// owner never change.
func (r *recordRepository) UpdateRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	var encodedFields []byte
	if record.Fields != nil {
		var err error
		encodedFields, err = encodeFields(record.Fields)
		if err != nil {
			log.Err(err).
				Str("func", "recordRepository.UpdateRecord").
				Str("record_id", record.ID).
				Msg("failed to encode encrypted fields")
			return models.VaultRecord{}, err
		}
	}

	query, args, err := buildUpdateRecordQuery(record, encodedFields)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.UpdateRecord").
			Str("record_id", record.ID).
			Msg("failed to create query")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.QueryRowContext(ctx, query, args...)
	updated, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultRecord{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "recordRepository.UpdateRecord").
			Int64("user_id", record.UserID).
			Str("record_id", record.ID).
			Msg("failed to scan updated record")
		return models.VaultRecord{}, err
	}

	return updated, nil
}

// DeleteRecord removes a vault record owned by the given user.
// Deleting a record that does not exist returns [ErrRecordNotFound].
func (r *recordRepository) DeleteRecord(ctx context.Context, userID int64, recordID string) error {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, deleteRecord, userID, recordID)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Int64("user_id", userID).
			Str("record_id", recordID).
			Msg("failed to execute record delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// encodeFields serialises the encrypted field map into its JSON column form.
func encodeFields(fields map[string]models.EncryptedData) ([]byte, error) {
	if fields == nil {
		return nil, nil
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return encoded, nil
}

// scanRecord reads one record row, decoding the JSON field map back into its
// structured form.
func scanRecord(row rowScanner) (models.VaultRecord, error) {
	var record models.VaultRecord
	var encodedFields []byte

	if err := row.Scan(
		&record.ID,
		&record.UserID,
		&encodedFields,
		&record.Blob,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return models.VaultRecord{}, err
	}

	if len(encodedFields) > 0 {
		if err := json.Unmarshal(encodedFields, &record.Fields); err != nil {
			return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrDecodingColumn, err)
		}
	}

	return record, nil
}
