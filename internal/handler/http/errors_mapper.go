package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-passkey-vault/internal/app"
	"github.com/MKhiriev/go-passkey-vault/internal/service"
	"github.com/MKhiriev/go-passkey-vault/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrValidationNoRecordID:     http.StatusBadRequest,
	service.ErrValidationNoRecordFields: http.StatusBadRequest,
	service.ErrValidationNoUserID:       http.StatusBadRequest,
	service.ErrValidationNoPRFSalt:      http.StatusBadRequest,
	service.ErrVersionIsNotSpecified:    http.StatusBadRequest,

	service.ErrCredentialNotOwned:      http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrAccessDenied: http.StatusForbidden,

	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrCredentialNotFound: http.StatusNotFound,
	store.ErrRecordNotFound:     http.StatusNotFound,

	store.ErrLoginAlreadyExists:      http.StatusConflict,
	store.ErrCredentialAlreadyExists: http.StatusConflict,
	store.ErrKCVAlreadyExists:        http.StatusConflict,

	store.ErrRecordNotSaved:   http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap carries the response bodies the client maps back to
// business errors, so entries here must stay aligned with the app.Msg*
// constants the adapter-side mapper matches on.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:      app.MsgInvalidDataProvided,
	service.ErrValidationNoRecordID:     app.MsgInvalidDataProvided,
	service.ErrValidationNoRecordFields: app.MsgInvalidDataProvided,
	service.ErrValidationNoPRFSalt:      app.MsgInvalidDataProvided,
	service.ErrVersionIsNotSpecified:    app.MsgInvalidDataProvided,
	service.ErrValidationNoUserID:       app.MsgNoUserIDProvided,

	service.ErrCredentialNotOwned:      app.MsgCredentialNotOwned,
	service.ErrTokenIsExpired:          app.MsgTokenIsExpired,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,

	service.ErrAccessDenied: app.MsgAccessDenied,

	store.ErrNoUserWasFound:     app.MsgUserNotFound,
	store.ErrCredentialNotFound: app.MsgCredentialNotFound,
	store.ErrRecordNotFound:     app.MsgRecordNotFound,

	store.ErrLoginAlreadyExists:      app.MsgLoginAlreadyExists,
	store.ErrCredentialAlreadyExists: app.MsgCredentialAlreadyExists,
	store.ErrKCVAlreadyExists:        app.MsgKCVAlreadyExists,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}
