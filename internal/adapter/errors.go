package adapter

import "errors"

// Sentinel transport errors, one per HTTP status class the server actually
// uses. mapHTTPError wraps the response body around these so callers can
// match with errors.Is and still read the server's message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
