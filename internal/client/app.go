// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-passkey-vault/internal/adapter"
	"github.com/MKhiriev/go-passkey-vault/internal/config"
	"github.com/MKhiriev/go-passkey-vault/internal/crypto"
	"github.com/MKhiriev/go-passkey-vault/internal/keycache"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/service"
	"github.com/MKhiriev/go-passkey-vault/internal/session"
	"github.com/MKhiriev/go-passkey-vault/internal/store"
	"github.com/MKhiriev/go-passkey-vault/internal/webauthn"
	"github.com/MKhiriev/go-passkey-vault/internal/workers"
	"github.com/MKhiriev/go-passkey-vault/models"
)

// App is the headless client runtime. The authenticator is the built-in
// software one: platform passkeys live behind a browser, which this process
// is not.
type App struct {
	services   *service.ClientServices
	salts      *keycache.SaltCache
	workersCfg config.ClientWorkers

	login string
	name  string

	logger *logger.Logger
}

// NewApp assembles the client runtime from the client configuration. The
// account login comes from PKVAULT_LOGIN (display name from PKVAULT_NAME)
// so the binary can run unattended.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	keys, err := keycache.NewKeyCache(cfg.Vault.KeyCachePath)
	if err != nil {
		return nil, fmt.Errorf("create key cache: %w", err)
	}

	salts, err := keycache.NewSaltCache(cfg.Vault.SaltCachePath)
	if err != nil {
		return nil, fmt.Errorf("create salt cache: %w", err)
	}

	// The authenticator state persists alongside the key and salt caches so
	// a restarted client can log back in with the passkey it registered.
	authn, err := webauthn.OpenSoftAuthenticator(cfg.Vault.AuthenticatorStatePath)
	if err != nil {
		return nil, fmt.Errorf("open authenticator state: %w", err)
	}

	rp := models.RelyingParty{
		ID:   cfg.Vault.RelyingPartyID,
		Name: cfg.Vault.RelyingPartyName,
	}
	bridge := webauthn.NewBridge(authn, rp, cfg.Vault.CeremonyTimeout, log)

	sessionCtrl := session.NewController(bridge, crypto.NewKeyDeriver(), crypto.NewKeyChecker(), keys, log)

	return &App{
		services:   service.NewClientServices(serverAdapter, bridge, sessionCtrl, keys, salts, log),
		salts:      salts,
		workersCfg: cfg.Workers,
		login:      getenv("PKVAULT_LOGIN", "demo"),
		name:       getenv("PKVAULT_NAME", "Demo User"),
		logger:     log,
	}, nil
}

// Run authenticates the account (registering it on first contact), unlocks
// the encryption session, starts the background workers, and blocks until an
// interrupt. On the way out it logs out so no key material survives the
// process.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	user, err := a.authenticate(ctx)
	if err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}
	a.logger.Info().Int64("user_id", user.UserID).Str("login", user.Login).Msg("authenticated")

	if err = a.services.VaultService.Unlock(ctx, user.UserID); err != nil {
		return fmt.Errorf("unlock vault: %w", err)
	}

	records, err := a.services.VaultService.ListRecords(ctx)
	if err != nil {
		a.logger.Err(err).Msg("listing records failed")
	} else {
		a.logger.Info().Int("records", len(records)).Msg("vault unlocked")
	}

	jobs := workers.NewWorkers(
		workers.NewAutoLockWorker(a.services.Session, user.UserID, a.workersCfg, a.logger),
		workers.NewSaltPruneWorker(a.salts, a.workersCfg, a.logger),
	)
	jobs.Run()
	defer jobs.Stop()

	<-ctx.Done()

	if err = a.services.AuthService.Logout(context.Background(), user.UserID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	a.logger.Info().Msg("client shut down")
	return nil
}

// authenticate logs the configured account in, registering it on first
// contact. Two outcomes mean first contact: the server has never seen the
// login, or the login ceremony found no resident credential on this device —
// the authenticator reports that the same way as a cancelled prompt.
func (a *App) authenticate(ctx context.Context) (models.User, error) {
	user, err := a.services.AuthService.Login(ctx, a.login)
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, store.ErrNoUserWasFound):
		a.logger.Info().Str("login", a.login).Msg("account not found on server, registering")
	case errors.Is(err, webauthn.ErrCancelled):
		a.logger.Info().Str("login", a.login).Msg("no passkey on this device, registering")
	default:
		return models.User{}, err
	}

	return a.services.AuthService.Register(ctx, a.login, a.name)
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
