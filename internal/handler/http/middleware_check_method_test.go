// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildMethodCheckRouter registers a few routes shaped like the vault API
// without going through Handler.Init, so no services or logger are needed.
func buildMethodCheckRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/records", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("records"))
	})
	router.Post("/api/records", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Put("/api/records", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/api/credential", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/kcv", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildMethodCheckRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		// зарегистрированный метод проходит до обработчика
		{"GET records passes through", http.MethodGet, "/api/records", http.StatusOK},
		{"POST records passes through", http.MethodPost, "/api/records", http.StatusCreated},
		{"PUT records passes through", http.MethodPut, "/api/records", http.StatusOK},
		{"POST kcv passes through", http.MethodPost, "/api/kcv", http.StatusCreated},
		// незарегистрированный метод скрывает маршрут
		{"DELETE records hidden", http.MethodDelete, "/api/records", http.StatusNotFound},
		{"PATCH records hidden", http.MethodPatch, "/api/records", http.StatusNotFound},
		{"POST credential hidden", http.MethodPost, "/api/credential", http.StatusNotFound},
		{"GET kcv hidden", http.MethodGet, "/api/kcv", http.StatusNotFound},
		// несуществующий путь: chi отвечает 404 сам
		{"unknown route", http.MethodGet, "/api/nonexistent", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	router := buildMethodCheckRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "records", rr.Body.String())
}

func TestCheckHTTPMethod_Never405(t *testing.T) {
	router := buildMethodCheckRouter()

	for _, method := range []string{
		http.MethodDelete, http.MethodPatch, http.MethodOptions, http.MethodHead,
	} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/records", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNotFound, rr.Code,
				"wrong method on existing route should look like a missing route")
		})
	}
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildMethodCheckRouter()
	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func(i int) {
			method := http.MethodGet
			if i%2 == 1 {
				method = http.MethodDelete
			}
			req := httptest.NewRequest(method, "/api/records", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			done <- rr.Code
		}(i)
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.Contains(t, []int{http.StatusOK, http.StatusNotFound}, code)
	}
}
