package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-passkey-vault/internal/adapter"
	"github.com/MKhiriev/go-passkey-vault/internal/crypto"
	"github.com/MKhiriev/go-passkey-vault/internal/keycache"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/session"
	"github.com/MKhiriev/go-passkey-vault/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	bridge  PasskeyBridge
	session *session.Controller
	keys    keycache.KeyCache
	salts   *keycache.SaltCache

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, bridge PasskeyBridge, sessionCtrl *session.Controller, keys keycache.KeyCache, salts *keycache.SaltCache, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter: serverAdapter,
		bridge:  bridge,
		session: sessionCtrl,
		keys:    keys,
		salts:   salts,
		logger:  logger,
	}
}

// Register implements [ClientAuthService]. The flow is account first, passkey
// second: the server assigns the user ID that the registration ceremony binds
// the credential to. The PRF salt is minted here, client-side, and becomes
// part of the credential's public parameters.
//
// A PRF output at registration time is not required — many platforms return
// it only at the first authentication — so the result's extension output is
// deliberately ignored.
func (a *clientAuthService) Register(ctx context.Context, login, name string) (models.User, error) {
	if login == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.adapter.RegisterUser(ctx, models.User{Login: login, Name: name})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	params, err := crypto.NewPRFParameters()
	if err != nil {
		return models.User{}, err
	}

	entity := models.UserEntity{
		ID:          []byte(strconv.FormatInt(user.UserID, 10)),
		Name:        user.Login,
		DisplayName: user.Name,
	}
	registration, err := a.bridge.Register(ctx, entity, params.Salt)
	if err != nil {
		return models.User{}, err
	}

	_, err = a.adapter.SaveCredential(ctx, models.Credential{
		CredentialID: registration.CredentialID,
		UserID:       user.UserID,
		PublicKey:    registration.PublicKey,
		PRF:          params,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	if err := a.salts.Put(user.UserID, params); err != nil {
		// The server copy is authoritative; a failed local mirror only costs
		// a round trip on the next unlock.
		a.logger.Err(err).Int64("user_id", user.UserID).Msg("salt cache write failed")
	}

	a.logger.Info().
		Int64("user_id", user.UserID).
		Str("credential_id", registration.CredentialID).
		Bool("prf_enabled", registration.Extensions.PRFEnabled()).
		Msg("account registered with passkey")

	return user, nil
}

// Login implements [ClientAuthService]. The ceremony runs without a PRF salt:
// this is identity only, key derivation happens later in Unlock. No allow
// list is passed either — before authenticating we do not know which
// credentials exist, so any discoverable credential for the relying party
// may answer.
func (a *clientAuthService) Login(ctx context.Context, login string) (models.User, error) {
	if login == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	assertion, err := a.bridge.Authenticate(ctx, nil, nil)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.adapter.Login(ctx, login, assertion.CredentialID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return user, nil
}

// Logout implements [ClientAuthService]. Key material goes first: the
// session is locked and the whole key cache is wiped before the token is
// dropped, so a failure partway through never leaves usable keys behind an
// expired login.
func (a *clientAuthService) Logout(ctx context.Context, userID int64) error {
	if err := a.session.Lock(userID); err != nil {
		a.logger.Err(err).Int64("user_id", userID).Msg("session lock on logout failed")
	}

	if err := a.keys.ClearAll(); err != nil {
		a.adapter.SetToken("")
		return fmt.Errorf("key cache wipe on logout: %w", err)
	}

	a.adapter.SetToken("")
	a.logger.Info().Int64("user_id", userID).Msg("logged out, key material cleared")
	return nil
}
