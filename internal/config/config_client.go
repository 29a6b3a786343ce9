package config

import (
	"fmt"
	"time"
)

// ClientVault holds the encryption-engine settings used by the client runtime.
type ClientVault struct {
	// RelyingPartyID is the WebAuthn relying-party identifier.
	RelyingPartyID string
	// RelyingPartyName is the human-readable relying-party label.
	RelyingPartyName string
	// KeyCachePath is the file backing the local master-key cache.
	KeyCachePath string
	// SaltCachePath is the file backing the PRF salt cache.
	SaltCachePath string
	// AuthenticatorStatePath is the file backing the software authenticator's
	// resident credentials. Empty means credentials live only in process
	// memory.
	AuthenticatorStatePath string
	// CeremonyTimeout bounds the user-interactive authenticator ceremony.
	CeremonyTimeout time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the server base URL used by the client.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// AutoLockInterval defines how often the auto-lock worker checks the session.
	AutoLockInterval time.Duration
	// IdleTimeout is how long a session may sit unused before auto-lock.
	IdleTimeout time.Duration
	// SaltMaxAge is the staleness cutoff for PRF salt cache entries.
	SaltMaxAge time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Vault contains the encryption-engine settings.
	Vault ClientVault
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Vault: ClientVault{
			RelyingPartyID:         cfg.Vault.RelyingPartyID,
			RelyingPartyName:       cfg.Vault.RelyingPartyName,
			KeyCachePath:           cfg.Vault.KeyCachePath,
			SaltCachePath:          cfg.Vault.SaltCachePath,
			AuthenticatorStatePath: cfg.Vault.AuthenticatorStatePath,
			CeremonyTimeout:        cfg.Vault.CeremonyTimeout,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			AutoLockInterval: cfg.Workers.AutoLockInterval,
			IdleTimeout:      cfg.Workers.IdleTimeout,
			SaltMaxAge:       cfg.Workers.SaltMaxAge,
		},
	}

	return clientCfg, clientCfg.validate()
}
