package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-driver database driver name (pgx, sqlite3)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rp-id relying party identifier
//	-rp-name relying party display name
//	-key-cache key cache file path
//	-salt-cache salt cache file path
//	-authenticator-state software authenticator state file path
//	-ceremony-timeout passkey ceremony timeout (e.g., "2m")
//	-base-url server base URL for the client adapter
//	-autolock-interval auto-lock worker check interval
//	-idle-timeout session idle timeout before auto-lock
//	-salt-max-age salt cache staleness cutoff
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var relyingPartyID string
	var relyingPartyName string
	var keyCachePath string
	var saltCachePath string
	var authenticatorStatePath string
	var ceremonyTimeout time.Duration
	var baseURL string
	var autoLockInterval time.Duration
	var idleTimeout time.Duration
	var saltMaxAge time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&relyingPartyID, "rp-id", "", "Relying party identifier")
	flag.StringVar(&relyingPartyName, "rp-name", "", "Relying party display name")
	flag.StringVar(&keyCachePath, "key-cache", "", "Key cache file path")
	flag.StringVar(&saltCachePath, "salt-cache", "", "Salt cache file path")
	flag.StringVar(&authenticatorStatePath, "authenticator-state", "", "Software authenticator state file path")
	flag.DurationVar(&ceremonyTimeout, "ceremony-timeout", 0, "Passkey ceremony timeout (e.g., 2m)")
	flag.StringVar(&baseURL, "base-url", "", "Server base URL for the client adapter")
	flag.DurationVar(&autoLockInterval, "autolock-interval", 0, "Auto-lock worker check interval")
	flag.DurationVar(&idleTimeout, "idle-timeout", 0, "Session idle timeout before auto-lock")
	flag.DurationVar(&saltMaxAge, "salt-max-age", 0, "Salt cache staleness cutoff")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Vault: Vault{
			RelyingPartyID:         relyingPartyID,
			RelyingPartyName:       relyingPartyName,
			KeyCachePath:           keyCachePath,
			SaltCachePath:          saltCachePath,
			AuthenticatorStatePath: authenticatorStatePath,
			CeremonyTimeout:        ceremonyTimeout,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			AutoLockInterval: autoLockInterval,
			IdleTimeout:      idleTimeout,
			SaltMaxAge:       saltMaxAge,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
