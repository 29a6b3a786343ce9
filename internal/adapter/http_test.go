// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-passkey-vault/internal/config"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter points an httpServerAdapter at a test server
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	log := logger.NewClientLogger("test")
	cfg := config.ClientAdapter{BaseURL: serverURL}

	a, err := NewHTTPServerAdapter(cfg, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNewHTTPServerAdapter_InvalidBaseURL(t *testing.T) {
	log := logger.NewClientLogger("test")

	_, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: "   "}, log)
	require.Error(t, err)
}

// ── RegisterUser ────────────────────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		var req models.RegisterUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Login)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.SessionResponse{
			UserID: 1, Login: req.Login, Name: req.Name, Token: "sometoken",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.RegisterUser(context.Background(), models.User{Login: "alice", Name: "Alice"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "alice", got.Login)
	assert.Equal(t, "sometoken", a.Token())
}

func TestRegisterUser_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RegisterUser(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterUser_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RegisterUser(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cred-1", req.CredentialID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.SessionResponse{
			UserID: 7, Login: req.Login, Token: "sometoken",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), "alice", "cred-1")

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "sometoken", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("credential does not belong to this account"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "alice", "cred-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Credentials ──────────────────────────────────────────────────────────────

func TestSaveCredential_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/credential", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))

		var req models.SaveCredentialRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.Credential{
			CredentialID: req.CredentialID, UserID: 1, PRF: req.PRF,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.SaveCredential(context.Background(), models.Credential{
		CredentialID: "cred-1",
		PRF:          models.PRFParameters{Salt: []byte("0123456789abcdef0123456789abcdef"), Version: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, "cred-1", got.CredentialID)
	assert.Equal(t, int64(1), got.UserID)
}

func TestSaveCredential_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("credential already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SaveCredential(context.Background(), models.Credential{CredentialID: "cred-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetUserCredentials_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/credential", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.CredentialsResponse{
			Credentials: []models.Credential{{CredentialID: "cred-1"}, {CredentialID: "cred-2"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.GetUserCredentials(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "cred-2", got[1].CredentialID)
}

func TestVerifyOwnership(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/credential/verify", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.VerifyCredentialResponse{Owned: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	owned, err := a.VerifyOwnership(context.Background(), "cred-1")

	require.NoError(t, err)
	assert.True(t, owned)
}

// ── KCV ─────────────────────────────────────────────────────────────────────

func TestSaveKCV_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/kcv", r.URL.Path)

		var req models.SaveKCVRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cred-1", req.CredentialID)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	err := a.SaveKCV(context.Background(), "cred-1", models.KeyCheckValue{
		IV: []byte("123456789012"), Ciphertext: []byte("ciphertext"), Version: 1,
	})
	require.NoError(t, err)
}

func TestSaveKCV_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("key check value already set"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.SaveKCV(context.Background(), "cred-1", models.KeyCheckValue{Version: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

// ── Records ─────────────────────────────────────────────────────────────────

func TestSaveRecord_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/records", r.URL.Path)

		var record models.VaultRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&record))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(record)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.SaveRecord(context.Background(), models.VaultRecord{
		ID:     "rec-1",
		Fields: map[string]models.EncryptedData{"password": {IV: []byte("123456789012"), Ciphertext: []byte("xx"), Version: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, "rec-1", got.ID)
}

func TestGetRecord_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/records/rec-1", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("record not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetRecord(context.Background(), "rec-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRecords_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/records", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.RecordsResponse{
			Records: []models.VaultRecord{{ID: "rec-1"}, {ID: "rec-2"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.GetRecords(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestUpdateRecord_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("access denied"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.UpdateRecord(context.Background(), models.VaultRecord{ID: "rec-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteRecord_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/records/rec-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	require.NoError(t, a.DeleteRecord(context.Background(), "rec-1"))
}
