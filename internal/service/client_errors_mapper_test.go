// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-passkey-vault/internal/adapter"
	"github.com/MKhiriev/go-passkey-vault/internal/app"
	"github.com/MKhiriev/go-passkey-vault/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	wrap := func(sentinel error, body string) error {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"bad request invalid data", wrap(adapter.ErrBadRequest, app.MsgInvalidDataProvided), ErrInvalidDataProvided},
		{"bad request no user id", wrap(adapter.ErrBadRequest, app.MsgNoUserIDProvided), ErrValidationNoUserID},
		{"unauthorized credential not owned", wrap(adapter.ErrUnauthorized, app.MsgCredentialNotOwned), ErrCredentialNotOwned},
		{"unauthorized token expired", wrap(adapter.ErrUnauthorized, app.MsgTokenIsExpired), ErrTokenIsExpired},
		{"unauthorized token invalid", wrap(adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid), ErrTokenIsExpiredOrInvalid},
		{"forbidden", wrap(adapter.ErrForbidden, app.MsgAccessDenied), ErrAccessDenied},
		{"not found user", wrap(adapter.ErrNotFound, app.MsgUserNotFound), store.ErrNoUserWasFound},
		{"not found credential", wrap(adapter.ErrNotFound, app.MsgCredentialNotFound), store.ErrCredentialNotFound},
		{"not found record", wrap(adapter.ErrNotFound, app.MsgRecordNotFound), store.ErrRecordNotFound},
		{"conflict login", wrap(adapter.ErrConflict, app.MsgLoginAlreadyExists), store.ErrLoginAlreadyExists},
		{"conflict credential", wrap(adapter.ErrConflict, app.MsgCredentialAlreadyExists), store.ErrCredentialAlreadyExists},
		{"conflict kcv", wrap(adapter.ErrConflict, app.MsgKCVAlreadyExists), store.ErrKCVAlreadyExists},
		{"bad gateway registration", wrap(adapter.ErrBadGateway, app.MsgRegistrationFailed), ErrRegisterOnServer},
		{"bad gateway login", wrap(adapter.ErrBadGateway, app.MsgLoginFailed), ErrLoginOnServer},
		{"internal server error", wrap(adapter.ErrInternalServerError, app.MsgInternalServerError), ErrTokenCreationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapAdapterError(tt.in))
		})
	}
}

func TestMapAdapterError_UnknownPassesThrough(t *testing.T) {
	unknown := errors.New("connection refused")
	assert.Equal(t, unknown, mapAdapterError(unknown))
}
