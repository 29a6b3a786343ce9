package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-passkey-vault/internal/config"
	"github.com/MKhiriev/go-passkey-vault/internal/handler"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/server"
	"github.com/MKhiriev/go-passkey-vault/internal/service"
	"github.com/MKhiriev/go-passkey-vault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("passkey-vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := connectDatabase(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(migrationDialect(cfg.Storage)); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(*storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func connectDatabase(ctx context.Context, cfg config.Storage, log *logger.Logger) (*store.DB, error) {
	if cfg.DB.Driver == "sqlite3" {
		return store.NewConnectSQLite(ctx, cfg.DB, log)
	}
	return store.NewConnectPostgres(ctx, cfg.DB, log)
}

func migrationDialect(cfg config.Storage) string {
	if cfg.DB.Driver == "sqlite3" {
		return "sqlite3"
	}
	return "postgres"
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
