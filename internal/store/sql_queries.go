package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-passkey-vault/models"
)

const (
	createUser = `INSERT INTO users (login, name)
    VALUES ($1, $2)
    RETURNING user_id, login, name, created_at;`

	findUserByLogin = `SELECT user_id, login, name, created_at
    FROM users
    WHERE login = $1;`

	saveCredential = `INSERT INTO credentials (
			credential_id,
			user_id,
			public_key,
			prf_salt,
			prf_version
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING credential_id, user_id, public_key, prf_salt, prf_version, created_at;`

	getCredential = `SELECT
			credential_id,
			user_id,
			public_key,
			prf_salt,
			prf_version,
			kcv_iv,
			kcv_ciphertext,
			kcv_version,
			created_at
		FROM credentials
		WHERE credential_id = $1;`

	// The IS NULL guard makes the KCV write-once: a credential that already
	// carries a check value is never overwritten.
	saveKCV = `UPDATE credentials SET
			kcv_iv         = $1,
			kcv_ciphertext = $2,
			kcv_version    = $3
		WHERE credential_id = $4 AND kcv_ciphertext IS NULL;`

	credentialOwnership = `SELECT EXISTS (
			SELECT 1 FROM credentials
			WHERE credential_id = $1 AND user_id = $2
		);`

	saveRecord = `INSERT INTO records (
			id,
			user_id,
			fields,
			blob
		) VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, fields, blob, created_at, updated_at;`

	deleteRecord = `DELETE FROM records
		WHERE user_id = $1 AND id = $2;`
)

// queryBuilder is the shared squirrel builder configured for positional
// dollar placeholders, which both the pgx and sqlite3 drivers accept.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildGetCredentialsQuery builds the per-user credential listing query.
func buildGetCredentialsQuery(userID int64) (string, []any, error) {
	return queryBuilder.
		Select(
			"credential_id",
			"user_id",
			"public_key",
			"prf_salt",
			"prf_version",
			"kcv_iv",
			"kcv_ciphertext",
			"kcv_version",
			"created_at",
		).
		From(models.Credential{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		ToSql()
}

// buildGetRecordsQuery builds the record fetch query. When recordID is empty
// all of the user's records are selected, ordered by creation time.
func buildGetRecordsQuery(userID int64, recordID string) (string, []any, error) {
	b := queryBuilder.
		Select("id", "user_id", "fields", "blob", "created_at", "updated_at").
		From(models.VaultRecord{}.TableName()).
		Where(sq.Eq{"user_id": userID})

	if recordID != "" {
		b = b.Where(sq.Eq{"id": recordID})
	} else {
		b = b.OrderBy("created_at")
	}

	return b.ToSql()
}

// buildUpdateRecordQuery builds an UPDATE that replaces only the payload
// columns supplied on the record. The record ID never changes: it is part of
// the AAD binding of every encrypted field.
func buildUpdateRecordQuery(record models.VaultRecord, encodedFields []byte) (string, []any, error) {
	b := queryBuilder.
		Update(models.VaultRecord{}.TableName()).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if record.Fields != nil {
		b = b.Set("fields", encodedFields)
	}
	if record.Blob != nil {
		b = b.Set("blob", record.Blob)
	}

	return b.
		Where(sq.Eq{"id": record.ID, "user_id": record.UserID}).
		Suffix("RETURNING id, user_id, fields, blob, created_at, updated_at").
		ToSql()
}
