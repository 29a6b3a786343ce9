package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// loggedRequest builds a request carrying a buffer-backed logger in its
// context, the same way withTraceID attaches one in production.
func loggedRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		status      int
		body        string
		wantEntries []string
	}{
		{
			name:   "GET records",
			method: http.MethodGet,
			path:   "/api/records",
			status: http.StatusOK,
			body:   "[]",
			wantEntries: []string{
				`"method":"GET"`, `"uri":"/api/records"`, `"status":200`,
				`"duration":`, `"size":2`,
			},
		},
		{
			name:        "POST credential",
			method:      http.MethodPost,
			path:        "/api/credential",
			status:      http.StatusCreated,
			body:        "{}",
			wantEntries: []string{`"method":"POST"`, `"status":201`},
		},
		{
			name:        "DELETE record no body",
			method:      http.MethodDelete,
			path:        "/api/records/rec-1",
			status:      http.StatusNoContent,
			wantEntries: []string{`"method":"DELETE"`, `"status":204`, `"size":0`},
		},
		{
			name:        "server error",
			method:      http.MethodGet,
			path:        "/api/records/missing",
			status:      http.StatusInternalServerError,
			body:        "internal server error",
			wantEntries: []string{`"status":500`},
		},
		{
			// query string попадает в uri целиком
			name:        "query parameters preserved",
			method:      http.MethodGet,
			path:        "/api/records?limit=10",
			status:      http.StatusOK,
			body:        "[]",
			wantEntries: []string{`"uri":"/api/records?limit=10"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, loggedRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.status, rr.Code)
			for _, want := range tt.wantEntries {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	rr := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rr, loggedRequest(http.MethodGet, "/api/records", &buf))

	assert.Contains(t, buf.String(), `"size":1024`)
	// статус без явного WriteHeader — 200
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithLogging_DurationObserved(t *testing.T) {
	delay := 50 * time.Millisecond
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		w.WriteHeader(http.StatusOK)
	})

	start := time.Now()
	rr := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rr, loggedRequest(http.MethodGet, "/api/version", &buf))

	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.Contains(t, buf.String(), `"duration":`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler panic")
	})

	// восстановление паник — забота Recoverer, не логирования
	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), loggedRequest(http.MethodGet, "/api/records", &buf))
	})
}

func TestWithLogging_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := withLogging(next)

	const n = 50
	done := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		go func() {
			var buf bytes.Buffer
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, loggedRequest(http.MethodGet, "/api/records", &buf))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, buf.String(), `"status":200`)
			done <- struct{}{}
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}
}

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		withLogging(next).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
