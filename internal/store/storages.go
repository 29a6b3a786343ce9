package store

import "github.com/MKhiriev/go-passkey-vault/internal/logger"

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository       UserRepository
	CredentialRepository CredentialRepository
	RecordRepository     RecordRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		CredentialRepository: NewCredentialRepository(db, log),
		RecordRepository:     NewRecordRepository(db, log),
	}
}
