package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-passkey-vault/internal/config"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/utils"
	"github.com/MKhiriev/go-passkey-vault/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.BaseURL and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// RegisterUser implements [ServerAdapter]. It POSTs the account attributes to
// POST /api/user/register, stores the issued bearer token via SetToken, and
// returns the server-assigned user record.
func (h *httpServerAdapter) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	var session models.SessionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterUserRequest{Login: user.Login, Name: user.Name}).
		SetResult(&session).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.SetToken(session.Token)
	return models.User{UserID: session.UserID, Login: session.Login, Name: session.Name}, nil
}

// Login implements [ServerAdapter]. It POSTs the login and the asserted
// credential ID to POST /api/user/login. The server verifies the
// credential-to-account binding before answering with a token, which is
// stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, login, credentialID string) (models.User, error) {
	var session models.SessionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Login: login, CredentialID: credentialID}).
		SetResult(&session).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.SetToken(session.Token)
	return models.User{UserID: session.UserID, Login: session.Login, Name: session.Name}, nil
}

// SaveCredential implements [ServerAdapter]. It POSTs the credential and its
// PRF parameters to POST /api/credential. Requires a valid bearer token.
func (h *httpServerAdapter) SaveCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	var saved models.Credential

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SaveCredentialRequest{
			CredentialID: credential.CredentialID,
			PublicKey:    credential.PublicKey,
			PRF:          credential.PRF,
		}).
		SetResult(&saved).
		Post("/api/credential")
	if err != nil {
		return models.Credential{}, fmt.Errorf("save credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return saved, nil
}

// GetUserCredentials implements [ServerAdapter]. It GETs /api/credential and
// returns the authenticated user's credential list.
func (h *httpServerAdapter) GetUserCredentials(ctx context.Context) ([]models.Credential, error) {
	var list models.CredentialsResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&list).
		Get("/api/credential")
	if err != nil {
		return nil, fmt.Errorf("get credentials request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Credentials, nil
}

// VerifyOwnership implements [ServerAdapter]. It POSTs the credential ID to
// POST /api/credential/verify and returns the server's ownership verdict.
func (h *httpServerAdapter) VerifyOwnership(ctx context.Context, credentialID string) (bool, error) {
	var verdict models.VerifyCredentialResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.VerifyCredentialRequest{CredentialID: credentialID}).
		SetResult(&verdict).
		Post("/api/credential/verify")
	if err != nil {
		return false, fmt.Errorf("verify ownership request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return verdict.Owned, nil
}

// SaveKCV implements [ServerAdapter]. It POSTs the key check value to
// POST /api/kcv. The server enforces write-once and answers 409 on a second
// attempt, which surfaces as [ErrConflict].
func (h *httpServerAdapter) SaveKCV(ctx context.Context, credentialID string, kcv models.KeyCheckValue) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SaveKCVRequest{CredentialID: credentialID, KCV: kcv}).
		Post("/api/kcv")
	if err != nil {
		return fmt.Errorf("save kcv request: %w", err)
	}

	return mapHTTPError(resp)
}

// SaveRecord implements [ServerAdapter]. It POSTs the encrypted record to
// POST /api/records and returns it with server-assigned timestamps.
func (h *httpServerAdapter) SaveRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	var saved models.VaultRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&saved).
		Post("/api/records")
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("save record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultRecord{}, err
	}

	return saved, nil
}

// GetRecord implements [ServerAdapter]. It GETs /api/records/{id}.
func (h *httpServerAdapter) GetRecord(ctx context.Context, recordID string) (models.VaultRecord, error) {
	var record models.VaultRecord

	resp, err := h.authedRequest(ctx).
		SetResult(&record).
		Get("/api/records/" + url.PathEscape(recordID))
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("get record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultRecord{}, err
	}

	return record, nil
}

// GetRecords implements [ServerAdapter]. It GETs /api/records and returns the
// full encrypted record list.
func (h *httpServerAdapter) GetRecords(ctx context.Context) ([]models.VaultRecord, error) {
	var page models.RecordsResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&page).
		Get("/api/records")
	if err != nil {
		return nil, fmt.Errorf("get records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return page.Records, nil
}

// UpdateRecord implements [ServerAdapter]. It PUTs the new encrypted payload
// to PUT /api/records.
func (h *httpServerAdapter) UpdateRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	var updated models.VaultRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&updated).
		Put("/api/records")
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("update record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultRecord{}, err
	}

	return updated, nil
}

// DeleteRecord implements [ServerAdapter]. It DELETEs /api/records/{id}.
func (h *httpServerAdapter) DeleteRecord(ctx context.Context, recordID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/records/" + url.PathEscape(recordID))
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
