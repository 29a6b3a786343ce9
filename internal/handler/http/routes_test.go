package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/service"
	"github.com/MKhiriev/go-passkey-vault/models"
	"github.com/stretchr/testify/assert"
)

// ---- Mock: AuthService ----

type mockAuthSvc struct{}

func (m *mockAuthSvc) RegisterUser(_ context.Context, u models.User) (models.User, error) {
	return u, nil
}
func (m *mockAuthSvc) Login(_ context.Context, login, _ string) (models.User, error) {
	return models.User{Login: login}, nil
}
func (m *mockAuthSvc) CreateToken(_ context.Context, _ models.User) (models.Token, error) {
	return models.Token{}, nil
}
func (m *mockAuthSvc) ParseToken(_ context.Context, _ string) (models.Token, error) {
	return models.Token{UserID: 1}, nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoSvc struct{}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	return "test-version"
}

// ---- Mock: VaultService ----

type mockVaultSvc struct{}

func (m *mockVaultSvc) SaveCredential(_ context.Context, c models.Credential) (models.Credential, error) {
	return c, nil
}
func (m *mockVaultSvc) GetCredential(_ context.Context, _ string) (models.Credential, error) {
	return models.Credential{}, nil
}
func (m *mockVaultSvc) GetUserCredentials(_ context.Context, _ int64) ([]models.Credential, error) {
	return nil, nil
}
func (m *mockVaultSvc) VerifyCredentialOwnership(_ context.Context, _ string, _ int64) (bool, error) {
	return true, nil
}
func (m *mockVaultSvc) SaveKCV(_ context.Context, _ int64, _ string, _ models.KeyCheckValue) error {
	return nil
}
func (m *mockVaultSvc) SaveRecord(_ context.Context, r models.VaultRecord) (models.VaultRecord, error) {
	return r, nil
}
func (m *mockVaultSvc) GetRecord(_ context.Context, _ int64, _ string) (models.VaultRecord, error) {
	return models.VaultRecord{}, nil
}
func (m *mockVaultSvc) GetRecords(_ context.Context, _ int64) ([]models.VaultRecord, error) {
	return nil, nil
}
func (m *mockVaultSvc) UpdateRecord(_ context.Context, r models.VaultRecord) (models.VaultRecord, error) {
	return r, nil
}
func (m *mockVaultSvc) DeleteRecord(_ context.Context, _ int64, _ string) error {
	return nil
}

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:    &mockAuthSvc{},
			AppInfoService: &mockAppInfoSvc{},
			VaultService:   &mockVaultSvc{},
		},
	}
	return h.Init()
}

func validAuthHeader() string { return "Bearer stub-token" }

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/user/register"},
		{http.MethodPost, "/api/user/login"},
		{http.MethodGet, "/api/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/credential"},
		{http.MethodGet, "/api/credential"},
		{http.MethodPost, "/api/credential/verify"},
		{http.MethodPost, "/api/kcv"},
		{http.MethodPost, "/api/records"},
		{http.MethodGet, "/api/records"},
		{http.MethodGet, "/api/records/some-id"},
		{http.MethodPut, "/api/records"},
		{http.MethodDelete, "/api/records/some-id"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" without token → 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"missing token should result in 401")
		})
	}
}

// ---- Protected routes: pass with valid token ----

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/credential"},
		{http.MethodGet, "/api/records"},
		{http.MethodDelete, "/api/records/some-id"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" with token → not 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", validAuthHeader())
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"valid token should not result in 401")
		})
	}
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method  string
		path    string
		addAuth bool // некоторые пути защищены auth — нужен токен чтобы дойти до 404
	}{
		{http.MethodGet, "/api/nonexistent", false},
		{http.MethodPost, "/api/credential/unknown/deep", true}, // /api/credential/* защищён auth
		{http.MethodGet, "/totally/wrong", false},
		{http.MethodPatch, "/api/user/register", false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.addAuth {
				req.Header.Set("Authorization", validAuthHeader())
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method on existing route returns 404 (CheckHTTPMethod) ----

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name    string
		method  string
		path    string
		addAuth bool // маршруты под h.auth требуют токен чтобы дойти до MethodNotAllowed
	}{
		{
			name:   "GET on /api/user/register (POST only)",
			method: http.MethodGet,
			path:   "/api/user/register",
		},
		{
			name:   "GET on /api/user/login (POST only)",
			method: http.MethodGet,
			path:   "/api/user/login",
		},
		{
			name:   "POST on /api/version (GET only)",
			method: http.MethodPost,
			path:   "/api/version",
		},
		{
			name:    "DELETE on /api/kcv (POST only)",
			method:  http.MethodDelete,
			path:    "/api/kcv",
			addAuth: true, // /api/kcv за auth middleware
		},
		{
			name:    "PATCH on /api/records (no PATCH handler)",
			method:  http.MethodPatch,
			path:    "/api/records",
			addAuth: true, // /api/records за auth middleware
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.addAuth {
				req.Header.Set("Authorization", validAuthHeader())
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code,
				"CheckHTTPMethod should replace 405 with 404")
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}
