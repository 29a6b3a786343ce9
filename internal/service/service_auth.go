package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-passkey-vault/internal/config"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/store"
	"github.com/MKhiriev/go-passkey-vault/internal/utils"
	"github.com/MKhiriev/go-passkey-vault/models"
)

// authService is the concrete implementation of AuthService.
// Accounts are passwordless: login proves possession of a registered passkey
// credential, so the service verifies the credential-to-account binding
// instead of comparing password hashes. JWT lifecycle is unchanged.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// credentialRepository answers the credential-ownership predicate during
	// login.
	credentialRepository store.CredentialRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, credentialRepository store.CredentialRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		credentialRepository: credentialRepository,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		logger:               logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that Login is non-empty and delegates persistence to the
// UserRepository. No secret material is involved: the account becomes usable
// once its first passkey credential is registered.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Login is empty.
//   - A wrapped storage error if the repository call fails (e.g. login already
//     taken — see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" {
		log.Error().Any("user", user).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Any("user", user).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user with a passkey assertion.
//
// It looks up the account by login and checks that the presented credential
// is bound to that account. The caller has already verified the assertion
// signature during the WebAuthn ceremony; this is the server-side ownership
// gate.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if login or credentialID is empty.
//   - A wrapped storage error if the lookup fails (e.g. user not found — see
//     store.ErrNoUserWasFound).
//   - ErrCredentialNotOwned if the credential belongs to a different account
//     or is not registered at all.
func (a *authService) Login(ctx context.Context, login, credentialID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || credentialID == "" {
		log.Error().Str("login", login).Str("credential_id", credentialID).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if err != nil {
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	owned, err := a.credentialRepository.VerifyOwnership(ctx, credentialID, foundUser.UserID)
	if err != nil {
		log.Err(err).Str("credential_id", credentialID).Msg("credential ownership check failed")
		return models.User{}, fmt.Errorf("credential ownership check failed: %w", err)
	}
	if !owned {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("login", foundUser.Login).
			Str("credential_id", credentialID).
			Msg("credential is not bound to this account")
		return models.User{}, ErrCredentialNotOwned
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
