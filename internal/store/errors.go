package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCredentialAlreadyExists is returned when saving a passkey credential
	// whose credential_id is already registered.
	ErrCredentialAlreadyExists = errors.New("credential already exists")

	// ErrCredentialNotFound is returned when a query targets a credential
	// (identified by credential_id) that does not exist in the database.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrKCVAlreadyExists is returned when an attempt to store a key check
	// value targets a credential that already carries one. The KCV is written
	// once, after the first successful unlock, and never overwritten.
	ErrKCVAlreadyExists = errors.New("key check value already exists")

	// ErrRecordNotFound is returned when a query or update targets a vault
	// record (identified by id and user_id) that does not exist in the
	// database.
	ErrRecordNotFound = errors.New("vault record was not found")

	// ErrRecordNotSaved is returned when an INSERT of a vault record completes
	// without error but the number of affected rows is zero, indicating that
	// no data was actually persisted.
	ErrRecordNotSaved = errors.New("vault record was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingColumn is returned when serialising a structured model field
	// (e.g. the encrypted field map) into its database column representation
	// fails.
	ErrEncodingColumn = errors.New("failed to encode column value")

	// ErrDecodingColumn is returned when deserialising a database column into
	// its structured model field fails.
	ErrDecodingColumn = errors.New("failed to decode column value")
)
