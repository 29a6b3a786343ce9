package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Version        string   `json:"version"`
	} `json:"server,omitempty"`

	Vault struct {
		RelyingPartyID         string   `json:"rp_id"`
		RelyingPartyName       string   `json:"rp_name"`
		KeyCachePath           string   `json:"key_cache_path"`
		SaltCachePath          string   `json:"salt_cache_path"`
		AuthenticatorStatePath string   `json:"authenticator_state_path"`
		CeremonyTimeout        Duration `json:"ceremony_timeout"`
	} `json:"vault,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		AutoLockInterval Duration `json:"autolock_interval"`
		IdleTimeout      Duration `json:"idle_timeout"`
		SaltMaxAge       Duration `json:"salt_max_age"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			Version:        jsonCfg.Server.Version,
		},
		Vault: Vault{
			RelyingPartyID:         jsonCfg.Vault.RelyingPartyID,
			RelyingPartyName:       jsonCfg.Vault.RelyingPartyName,
			KeyCachePath:           jsonCfg.Vault.KeyCachePath,
			SaltCachePath:          jsonCfg.Vault.SaltCachePath,
			AuthenticatorStatePath: jsonCfg.Vault.AuthenticatorStatePath,
			CeremonyTimeout:        time.Duration(jsonCfg.Vault.CeremonyTimeout),
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			AutoLockInterval: time.Duration(jsonCfg.Workers.AutoLockInterval),
			IdleTimeout:      time.Duration(jsonCfg.Workers.IdleTimeout),
			SaltMaxAge:       time.Duration(jsonCfg.Workers.SaltMaxAge),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
