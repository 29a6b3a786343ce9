package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-passkey-vault/internal/app"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/service"
	"github.com/MKhiriev/go-passkey-vault/internal/store"
	"github.com/MKhiriev/go-passkey-vault/internal/utils"
	"github.com/MKhiriev/go-passkey-vault/models"
)

// ─────────────────────────────────────────────
// Mock VaultService
// ─────────────────────────────────────────────

// mockVaultService implements service.VaultService for unit tests. Each
// method field can be overridden per test case; unset methods must not be
// reached.
type mockVaultService struct {
	saveCredentialFn func(ctx context.Context, credential models.Credential) (models.Credential, error)
	getCredentialsFn func(ctx context.Context, userID int64) ([]models.Credential, error)
	verifyFn         func(ctx context.Context, credentialID string, userID int64) (bool, error)
	saveKCVFn        func(ctx context.Context, userID int64, credentialID string, kcv models.KeyCheckValue) error
	saveRecordFn     func(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)
	getRecordFn      func(ctx context.Context, userID int64, recordID string) (models.VaultRecord, error)
	getRecordsFn     func(ctx context.Context, userID int64) ([]models.VaultRecord, error)
	updateRecordFn   func(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)
	deleteRecordFn   func(ctx context.Context, userID int64, recordID string) error
}

func (m *mockVaultService) SaveCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	return m.saveCredentialFn(ctx, credential)
}

func (m *mockVaultService) GetCredential(_ context.Context, _ string) (models.Credential, error) {
	return models.Credential{}, nil
}

func (m *mockVaultService) GetUserCredentials(ctx context.Context, userID int64) ([]models.Credential, error) {
	return m.getCredentialsFn(ctx, userID)
}

func (m *mockVaultService) VerifyCredentialOwnership(ctx context.Context, credentialID string, userID int64) (bool, error) {
	return m.verifyFn(ctx, credentialID, userID)
}

func (m *mockVaultService) SaveKCV(ctx context.Context, userID int64, credentialID string, kcv models.KeyCheckValue) error {
	return m.saveKCVFn(ctx, userID, credentialID, kcv)
}

func (m *mockVaultService) SaveRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	return m.saveRecordFn(ctx, record)
}

func (m *mockVaultService) GetRecord(ctx context.Context, userID int64, recordID string) (models.VaultRecord, error) {
	return m.getRecordFn(ctx, userID, recordID)
}

func (m *mockVaultService) GetRecords(ctx context.Context, userID int64) ([]models.VaultRecord, error) {
	return m.getRecordsFn(ctx, userID)
}

func (m *mockVaultService) UpdateRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	return m.updateRecordFn(ctx, record)
}

func (m *mockVaultService) DeleteRecord(ctx context.Context, userID int64, recordID string) error {
	return m.deleteRecordFn(ctx, userID, recordID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testUserID int64 = 42

// newHandlerWithVault builds a Handler with the given VaultService mock.
func newHandlerWithVault(t *testing.T, vault service.VaultService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{VaultService: vault}, logger.Nop())
}

// authedRequest builds a request carrying the test user ID in its context,
// as the auth middleware would after validating a token.
func authedRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, testUserID)
	return req.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request context, as the
// router would when dispatching a parameterised pattern.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// encryptedField is an opaque stand-in for a ciphered bundle; handlers must
// pass it through untouched.
func encryptedField(tag string) models.EncryptedData {
	return models.EncryptedData{
		IV:         []byte("nonce-" + tag),
		Ciphertext: []byte("ct-" + tag),
		Version:    1,
		KeyVersion: 1,
	}
}

func testRecordBody(t *testing.T, id string) (models.VaultRecord, string) {
	t.Helper()
	record := models.VaultRecord{
		ID: id,
		Fields: map[string]models.EncryptedData{
			"login": encryptedField("login"),
		},
	}
	return record, jsonBody(t, record)
}

// ─────────────────────────────────────────────
// saveRecord
// ─────────────────────────────────────────────

func TestSaveRecord_Success(t *testing.T) {
	record, body := testRecordBody(t, "rec-1")

	vault := &mockVaultService{
		saveRecordFn: func(_ context.Context, saved models.VaultRecord) (models.VaultRecord, error) {
			assert.Equal(t, record.ID, saved.ID)
			assert.Equal(t, testUserID, saved.UserID, "handler must stamp the authenticated user ID")
			assert.Equal(t, record.Fields["login"], saved.Fields["login"])
			return saved, nil
		},
	}

	h := newHandlerWithVault(t, vault)
	rec := httptest.NewRecorder()

	h.saveRecord(rec, authedRequest(t, http.MethodPost, "/api/records", body))

	require.Equal(t, http.StatusCreated, rec.Code)

	var saved models.VaultRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&saved))
	assert.Equal(t, record.ID, saved.ID)
}

func TestSaveRecord_NoUserIDInContext(t *testing.T) {
	h := newHandlerWithVault(t, &mockVaultService{})
	req := httptest.NewRequest(http.MethodPost, "/api/records", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	h.saveRecord(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgNoUserIDProvided)
}

func TestSaveRecord_InvalidJSON(t *testing.T) {
	h := newHandlerWithVault(t, &mockVaultService{})
	rec := httptest.NewRecorder()

	h.saveRecord(rec, authedRequest(t, http.MethodPost, "/api/records", "{broken"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestSaveRecord_ValidationError(t *testing.T) {
	vault := &mockVaultService{
		saveRecordFn: func(_ context.Context, _ models.VaultRecord) (models.VaultRecord, error) {
			return models.VaultRecord{}, service.ErrValidationNoRecordID
		},
	}

	h := newHandlerWithVault(t, vault)
	rec := httptest.NewRecorder()

	h.saveRecord(rec, authedRequest(t, http.MethodPost, "/api/records", "{}"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInvalidDataProvided)
}

// ─────────────────────────────────────────────
// getRecord
// ─────────────────────────────────────────────

func TestGetRecord_Success(t *testing.T) {
	stored, _ := testRecordBody(t, "rec-7")
	stored.UserID = testUserID

	vault := &mockVaultService{
		getRecordFn: func(_ context.Context, userID int64, recordID string) (models.VaultRecord, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, "rec-7", recordID)
			return stored, nil
		},
	}

	h := newHandlerWithVault(t, vault)
	req := withURLParam(authedRequest(t, http.MethodGet, "/api/records/rec-7", ""), "id", "rec-7")
	rec := httptest.NewRecorder()

	h.getRecord(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.VaultRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, stored.Fields["login"], got.Fields["login"])
}

func TestGetRecord_NotFound(t *testing.T) {
	vault := &mockVaultService{
		getRecordFn: func(_ context.Context, _ int64, _ string) (models.VaultRecord, error) {
			return models.VaultRecord{}, store.ErrRecordNotFound
		},
	}

	h := newHandlerWithVault(t, vault)
	req := withURLParam(authedRequest(t, http.MethodGet, "/api/records/missing", ""), "id", "missing")
	rec := httptest.NewRecorder()

	h.getRecord(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgRecordNotFound)
}

func TestGetRecord_MissingID(t *testing.T) {
	h := newHandlerWithVault(t, &mockVaultService{})
	rec := httptest.NewRecorder()

	h.getRecord(rec, authedRequest(t, http.MethodGet, "/api/records/", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// getRecords
// ─────────────────────────────────────────────

func TestGetRecords_Success(t *testing.T) {
	first, _ := testRecordBody(t, "rec-1")
	second, _ := testRecordBody(t, "rec-2")

	vault := &mockVaultService{
		getRecordsFn: func(_ context.Context, userID int64) ([]models.VaultRecord, error) {
			assert.Equal(t, testUserID, userID)
			return []models.VaultRecord{first, second}, nil
		},
	}

	h := newHandlerWithVault(t, vault)
	rec := httptest.NewRecorder()

	h.getRecords(rec, authedRequest(t, http.MethodGet, "/api/records", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var page models.RecordsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	require.Len(t, page.Records, 2)
	assert.Equal(t, "rec-1", page.Records[0].ID)
	assert.Equal(t, "rec-2", page.Records[1].ID)
}

func TestGetRecords_Empty(t *testing.T) {
	vault := &mockVaultService{
		getRecordsFn: func(_ context.Context, _ int64) ([]models.VaultRecord, error) {
			return nil, nil
		},
	}

	h := newHandlerWithVault(t, vault)
	rec := httptest.NewRecorder()

	h.getRecords(rec, authedRequest(t, http.MethodGet, "/api/records", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var page models.RecordsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Empty(t, page.Records)
}

// ─────────────────────────────────────────────
// updateRecord
// ─────────────────────────────────────────────

func TestUpdateRecord_Success(t *testing.T) {
	record, body := testRecordBody(t, "rec-9")

	vault := &mockVaultService{
		updateRecordFn: func(_ context.Context, updated models.VaultRecord) (models.VaultRecord, error) {
			assert.Equal(t, record.ID, updated.ID)
			assert.Equal(t, testUserID, updated.UserID)
			return updated, nil
		},
	}

	h := newHandlerWithVault(t, vault)
	rec := httptest.NewRecorder()

	h.updateRecord(rec, authedRequest(t, http.MethodPut, "/api/records", body))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateRecord_NotFound(t *testing.T) {
	_, body := testRecordBody(t, "rec-gone")

	vault := &mockVaultService{
		updateRecordFn: func(_ context.Context, _ models.VaultRecord) (models.VaultRecord, error) {
			return models.VaultRecord{}, store.ErrRecordNotFound
		},
	}

	h := newHandlerWithVault(t, vault)
	rec := httptest.NewRecorder()

	h.updateRecord(rec, authedRequest(t, http.MethodPut, "/api/records", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// deleteRecord
// ─────────────────────────────────────────────

func TestDeleteRecord_Success(t *testing.T) {
	vault := &mockVaultService{
		deleteRecordFn: func(_ context.Context, userID int64, recordID string) error {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, "rec-del", recordID)
			return nil
		},
	}

	h := newHandlerWithVault(t, vault)
	req := withURLParam(authedRequest(t, http.MethodDelete, "/api/records/rec-del", ""), "id", "rec-del")
	rec := httptest.NewRecorder()

	h.deleteRecord(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteRecord_NotFound(t *testing.T) {
	vault := &mockVaultService{
		deleteRecordFn: func(_ context.Context, _ int64, _ string) error {
			return store.ErrRecordNotFound
		},
	}

	h := newHandlerWithVault(t, vault)
	req := withURLParam(authedRequest(t, http.MethodDelete, "/api/records/ghost", ""), "id", "ghost")
	rec := httptest.NewRecorder()

	h.deleteRecord(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgRecordNotFound)
}
